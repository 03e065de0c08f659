package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hub-schedules/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestDispatcherWritesEvents(t *testing.T) {
	db := newTestDB(t)
	l := New(db)
	d := NewDispatcher(l, zerolog.Nop())

	hub := uuid.New()
	id := uuid.New()
	d.Dispatch(Event{HubID: hub, Subject: "user-1", Action: "special_day.create", Entity: "special_day", EntityID: &id, Metadata: map[string]string{"name": "Christmas"}})
	d.Dispatch(Event{HubID: hub, Subject: "user-1", Action: "override.delete", Entity: "override"})
	d.Dispatch(Event{HubID: uuid.New(), Action: "settings.update"})
	d.Close()

	logs, total, err := l.Query(context.Background(), Filter{HubID: hub})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.EqualValues(t, 2, total)

	var create models.AuditLog
	for _, lg := range logs {
		if lg.Action == "special_day.create" {
			create = lg
		}
	}
	require.NotNil(t, create.EntityID)
	assert.Equal(t, id, *create.EntityID)
	assert.JSONEq(t, `{"name":"Christmas"}`, create.Metadata)
}

type failingWriter struct{ calls int }

func (f *failingWriter) Log(context.Context, Event) error {
	f.calls++
	return fmt.Errorf("boom")
}

func TestDispatcherSurvivesWriteErrors(t *testing.T) {
	w := &failingWriter{}
	d := NewDispatcher(w, zerolog.Nop())
	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()
	assert.Equal(t, 2, w.calls)

	var nilDispatcher *Dispatcher
	nilDispatcher.Dispatch(Event{Action: "ignored"})
	nilDispatcher.Close()
}

func TestQueryFiltersAndPages(t *testing.T) {
	db := newTestDB(t)
	l := New(db)
	ctx := context.Background()
	hub := uuid.New()

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Log(ctx, Event{HubID: hub, Action: "override.create", Entity: "override"}))
	}
	require.NoError(t, l.Log(ctx, Event{HubID: hub, Action: "settings.update", Entity: "settings"}))

	logs, total, err := l.Query(ctx, Filter{HubID: hub, Entity: "override", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, logs, 2)

	logs, total, err = l.Query(ctx, Filter{HubID: hub, Action: "settings.update"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, "settings", logs[0].Entity)

	tomorrow := time.Now().Add(24 * time.Hour)
	_, total, err = l.Query(ctx, Filter{HubID: hub, From: &tomorrow})
	require.NoError(t, err)
	assert.Zero(t, total)
}
