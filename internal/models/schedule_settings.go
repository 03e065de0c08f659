package models

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// ScheduleSettings is the per-hub singleton configuration.
type ScheduleSettings struct {
	Base
	HubID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"hub_id"`
	Timezone         string    `gorm:"size:50;not null" json:"timezone"`
	WeekStartsOn     int       `gorm:"not null" json:"week_starts_on"`
	SlotDuration     int       `gorm:"not null" json:"slot_duration"`
	AutoCloseEnabled bool      `gorm:"not null" json:"auto_close_enabled"`
}

func (ScheduleSettings) TableName() string { return "schedules_settings" }

func (m ScheduleSettings) ToDomain() schedule.Settings {
	return schedule.Settings{
		ID:               m.ID,
		HubID:            m.HubID,
		Timezone:         m.Timezone,
		WeekStartsOn:     m.WeekStartsOn,
		SlotDuration:     m.SlotDuration,
		AutoCloseEnabled: m.AutoCloseEnabled,
	}
}

func (m *ScheduleSettings) Assign(s schedule.Settings) {
	m.HubID = s.HubID
	m.Timezone = s.Timezone
	m.WeekStartsOn = s.WeekStartsOn
	m.SlotDuration = s.SlotDuration
	m.AutoCloseEnabled = s.AutoCloseEnabled
}
