package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// ScheduleOverride changes the schedule over an inclusive date range.
// Ranges may overlap; there is no uniqueness constraint.
type ScheduleOverride struct {
	Base
	HubID     uuid.UUID `gorm:"type:uuid;not null;index:idx_override_hub_range" json:"hub_id"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_override_hub_range" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_override_hub_range" json:"end_date"`
	Reason    string    `gorm:"size:200;not null" json:"reason"`

	IsClosed  bool            `gorm:"not null" json:"is_closed"`
	OpenTime  *schedule.Clock `gorm:"type:varchar(8)" json:"open_time"`
	CloseTime *schedule.Clock `gorm:"type:varchar(8)" json:"close_time"`
}

func (ScheduleOverride) TableName() string { return "schedules_override" }

func (m ScheduleOverride) ToDomain() schedule.Override {
	return schedule.Override{
		ID:        m.ID,
		HubID:     m.HubID,
		StartDate: schedule.DateOf(m.StartDate),
		EndDate:   schedule.DateOf(m.EndDate),
		Reason:    m.Reason,
		Closed:    m.IsClosed,
		OpenTime:  m.OpenTime,
		CloseTime: m.CloseTime,
		CreatedAt: m.CreatedAt,
	}
}

func (m *ScheduleOverride) Assign(o schedule.Override) {
	m.HubID = o.HubID
	m.StartDate = schedule.DateOf(o.StartDate)
	m.EndDate = schedule.DateOf(o.EndDate)
	m.Reason = o.Reason
	m.IsClosed = o.Closed
	m.OpenTime = o.OpenTime
	m.CloseTime = o.CloseTime
}
