package containerrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// Repository implements ports.ContainerRepository using GORM.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
	logger  *slog.Logger
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewRepository returns a repository over db, which may be a transaction.
// tracker may be nil. logger is handed to the containers it loads.
func NewRepository(db *gorm.DB, tracker aggregateTracker, logger *slog.Logger) *Repository {
	return &Repository{
		db:      db,
		tracker: tracker,
		logger:  logger,
	}
}

// Add inserts a container that is not stored yet.
func (r *Repository) Add(ctx context.Context, c container.Container) error {
	if err := validate(c); err != nil {
		return err
	}

	key := c.SerialNumber().String()

	var count int64
	if err := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("serial_number = ?", key).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidErrorWithCause("container", fmt.Errorf("%s is already stored", key))
	}

	dto := FromDomain(c, 0)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(key, c)
	return nil
}

// Update stores the load and the owner of c. The position aboard is managed
// by the ship repository and is only reset when c goes ashore.
func (r *Repository) Update(ctx context.Context, c container.Container) error {
	if err := validate(c); err != nil {
		return err
	}

	key := c.SerialNumber().String()
	dto := FromDomain(c, 0)

	values := map[string]any{
		"current_load": dto.CurrentLoad,
	}
	if dto.ShipID != nil {
		values["ship_id"] = *dto.ShipID
	} else {
		values["ship_id"] = nil
		values["position"] = 0
	}

	result := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("serial_number = ?", key).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("container", key)
	}

	r.track(key, c)
	return nil
}

// Get retrieves a container by serial number.
func (r *Repository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial_number = ?", serial.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", serial.String())
		}
		return nil, err
	}

	return ToDomain(dto, r.logger)
}

// GetAll retrieves every container in insertion order.
func (r *Repository) GetAll(ctx context.Context) ([]container.Container, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).Order("rowid").Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.logger)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}

func (r *Repository) track(key string, c container.Container) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(key, c)
	}
}

func validate(c container.Container) error {
	if c == nil {
		return errs.NewValueIsRequiredError("container")
	}
	return c.Validate()
}
