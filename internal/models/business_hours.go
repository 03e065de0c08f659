package models

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// BusinessHours is one weekday of regular opening hours for a hub.
type BusinessHours struct {
	Base
	HubID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_hours_hub_day" json:"hub_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_business_hours_hub_day" json:"day_of_week"`

	OpenTime   schedule.Clock  `gorm:"type:varchar(8);not null" json:"open_time"`
	CloseTime  schedule.Clock  `gorm:"type:varchar(8);not null" json:"close_time"`
	IsClosed   bool            `gorm:"not null" json:"is_closed"`
	BreakStart *schedule.Clock `gorm:"type:varchar(8)" json:"break_start"`
	BreakEnd   *schedule.Clock `gorm:"type:varchar(8)" json:"break_end"`
}

func (BusinessHours) TableName() string { return "schedules_business_hours" }

func (m BusinessHours) ToDomain() schedule.WeeklyEntry {
	return schedule.WeeklyEntry{
		ID:      m.ID,
		HubID:   m.HubID,
		Weekday: schedule.Weekday(m.DayOfWeek),
		Closed:  m.IsClosed,
		Interval: schedule.Interval{
			Open:       m.OpenTime,
			Close:      m.CloseTime,
			BreakStart: m.BreakStart,
			BreakEnd:   m.BreakEnd,
		},
	}
}

// Assign copies the mutable fields of e, leaving identity and timestamps alone.
func (m *BusinessHours) Assign(e schedule.WeeklyEntry) {
	m.HubID = e.HubID
	m.DayOfWeek = int(e.Weekday)
	m.IsClosed = e.Closed
	m.OpenTime = e.Interval.Open
	m.CloseTime = e.Interval.Close
	m.BreakStart = e.Interval.BreakStart
	m.BreakEnd = e.Interval.BreakEnd
}
