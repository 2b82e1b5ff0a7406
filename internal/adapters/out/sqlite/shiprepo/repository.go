package shiprepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargo/internal/adapters/out/sqlite/containerrepo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository implements ports.ShipRepository using GORM.
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

// Add inserts a ship that is not stored yet, together with its containers.
func (r *Repository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	exists, err := r.exists(db, dto.ID)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewValueIsInvalidErrorWithCause("ship", fmt.Errorf("%s is already stored", dto.ID))
	}

	if err = db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if err = saveContainers(db, dto); err != nil {
		return err
	}

	r.track(dto.ID, aggregate)
	return nil
}

// Update stores the carried containers in their current order. Containers
// the ship no longer carries are moved ashore.
func (r *Repository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	exists, err := r.exists(db, dto.ID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("ship", dto.ID)
	}

	if err = saveContainers(db, dto); err != nil {
		return err
	}

	r.track(dto.ID, aggregate)
	return nil
}

// Get retrieves a ship and its containers in loading order.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).Preload("Containers", byPosition).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.logger)
}

// GetAll retrieves every ship in insertion order.
func (r *Repository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).Preload("Containers", byPosition).Order("rowid").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.Ship, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto, r.logger)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}

	return ships, nil
}

func (r *Repository) exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&ShipDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) track(id string, aggregate *ship.Ship) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(id, aggregate)
	}
}

// saveContainers upserts the carried containers and detaches every other
// container that still points at the ship.
func saveContainers(db *gorm.DB, dto ShipDTO) error {
	serials := make([]string, 0, len(dto.Containers))
	for _, c := range dto.Containers {
		serials = append(serials, c.SerialNumber)
	}

	if len(dto.Containers) > 0 {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Containers).Error; err != nil {
			return err
		}
	}

	detach := db.Model(&containerrepo.ContainerDTO{}).Where("ship_id = ?", dto.ID)
	if len(serials) > 0 {
		detach = detach.Where("serial_number NOT IN ?", serials)
	}

	return detach.Updates(map[string]any{"ship_id": nil, "position": 0}).Error
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
