package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// SpecialDay is a holiday or a day with special hours. RecurMonth/RecurDay
// mirror Date so yearly entries can be matched without date functions.
// Only one live row may exist per (hub, date); deleted rows do not count.
type SpecialDay struct {
	Base
	HubID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_special_day_hub_date_live,where:deleted_at IS NULL" json:"hub_id"`
	Date  time.Time `gorm:"type:date;not null;uniqueIndex:idx_special_day_hub_date_live,where:deleted_at IS NULL" json:"date"`
	Name  string    `gorm:"size:200;not null" json:"name"`

	IsClosed  bool            `gorm:"not null" json:"is_closed"`
	OpenTime  *schedule.Clock `gorm:"type:varchar(8)" json:"open_time"`
	CloseTime *schedule.Clock `gorm:"type:varchar(8)" json:"close_time"`

	RecurringYearly bool   `gorm:"not null" json:"recurring_yearly"`
	RecurMonth      int    `gorm:"not null;index:idx_special_day_recur" json:"-"`
	RecurDay        int    `gorm:"not null;index:idx_special_day_recur" json:"-"`
	Notes           string `gorm:"type:text;not null;default:''" json:"notes"`
}

func (SpecialDay) TableName() string { return "schedules_special_day" }

func (m *SpecialDay) BeforeSave(tx *gorm.DB) error {
	m.Date = schedule.DateOf(m.Date)
	m.RecurMonth = int(m.Date.Month())
	m.RecurDay = m.Date.Day()
	return nil
}

func (m SpecialDay) ToDomain() schedule.SpecialDay {
	return schedule.SpecialDay{
		ID:              m.ID,
		HubID:           m.HubID,
		Date:            schedule.DateOf(m.Date),
		Name:            m.Name,
		Closed:          m.IsClosed,
		OpenTime:        m.OpenTime,
		CloseTime:       m.CloseTime,
		RecurringYearly: m.RecurringYearly,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

func (m *SpecialDay) Assign(s schedule.SpecialDay) {
	m.HubID = s.HubID
	m.Date = schedule.DateOf(s.Date)
	m.Name = s.Name
	m.IsClosed = s.Closed
	m.OpenTime = s.OpenTime
	m.CloseTime = s.CloseTime
	m.RecurringYearly = s.RecurringYearly
	m.Notes = s.Notes
}
