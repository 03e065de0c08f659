package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hub-schedules/internal/config"
	"github.com/BruksfildServices01/hub-schedules/internal/models"
)

// Open connects to Postgres and tunes the pool. It does not migrate.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ScheduleSettings{},
		&models.BusinessHours{},
		&models.SpecialDay{},
		&models.ScheduleOverride{},
		&models.AuditLog{},
	)
}

// NewDB opens and migrates, exiting the process on failure.
func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}
