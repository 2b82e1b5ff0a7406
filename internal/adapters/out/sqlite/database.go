package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/adapters/out/sqlite/containerrepo"
	"cargo/internal/adapters/out/sqlite/shiprepo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a private in-memory SQLite database holding the ships and
// containers tables. It lives until Close.
type Database struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	keeper *sql.Conn
	logger *slog.Logger
}

// Open creates an empty database and migrates the schema. SQL statements are
// traced to log when level is debug or lower.
func Open(ctx context.Context, log *slog.Logger, level slog.Level) (*Database, error) {
	if log == nil {
		log = slog.Default()
	}

	// Every connection to the same shared-cache name sees the same data.
	dsn := fmt.Sprintf("file:cargo-%s?mode=memory&cache=shared", kernel.NewUUID())

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger:                                   NewGormLogger(log, level),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection for the keeper and one for work, so transactions run one
	// at a time and Begin waits for the previous one to finish.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	// The in-memory database is dropped with its last connection. database/sql
	// discards the work connection when a transaction context is cancelled.
	keeper, err := sqlDB.Conn(ctx)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.WithContext(ctx).AutoMigrate(&shiprepo.ShipDTO{}, &containerrepo.ContainerDTO{}); err != nil {
		_ = errors.Join(keeper.Close(), sqlDB.Close())
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Database{
		db:     db,
		sqlDB:  sqlDB,
		keeper: keeper,
		logger: log,
	}, nil
}

// Close releases the database and everything stored in it.
func (d *Database) Close() error {
	return errors.Join(d.keeper.Close(), d.sqlDB.Close())
}

// ShipRepository returns a repository outside any transaction. Query handlers
// read through it.
func (d *Database) ShipRepository() ports.ShipRepository {
	return shiprepo.NewRepository(d.db, nil, d.containerLogger())
}

// ContainerRepository returns a repository outside any transaction.
func (d *Database) ContainerRepository() ports.ContainerRepository {
	return containerrepo.NewRepository(d.db, nil, d.containerLogger())
}

func (d *Database) containerLogger() *slog.Logger {
	return d.logger.With("component", "container")
}

// NewGormLogger routes GORM messages to log as debug records. Above the
// debug level GORM stays silent.
func NewGormLogger(log *slog.Logger, level slog.Level) logger.Interface {
	gormLevel := logger.Silent
	if level <= slog.LevelDebug {
		gormLevel = logger.Info
	}

	return logger.New(
		slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
