package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hub-schedules/internal/models"
)

// Writer persists one audit event.
type Writer interface {
	Log(ctx context.Context, ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		HubID:    ev.HubID,
		Subject:  ev.Subject,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&log).Error
}

// Filter narrows an audit listing. Zero values mean no constraint.
type Filter struct {
	HubID  uuid.UUID
	Action string
	Entity string
	From   *time.Time
	To     *time.Time // inclusive day
	Page   int
	Limit  int
}

func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
}

// Query returns one page of a hub's audit rows, newest first, plus the total.
func (l *Logger) Query(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("hub_id = ?", f.HubID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error
	return logs, total, err
}
