package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hub-schedules/internal/models"
)

func TestMigrateCreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrations are idempotent")

	for _, m := range []any{
		&models.ScheduleSettings{},
		&models.BusinessHours{},
		&models.SpecialDay{},
		&models.ScheduleOverride{},
		&models.AuditLog{},
	} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&models.BusinessHours{}, "idx_business_hours_hub_day"))
}
