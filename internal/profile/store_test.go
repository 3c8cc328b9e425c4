package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orderly-eats/gateway/internal/database"
	"github.com/orderly-eats/gateway/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewStore(db)
}

func TestLoadMissingReturnsTemplate(t *testing.T) {
	store := newTestStore(t)

	p := store.Load(context.Background())
	assert.Equal(t, models.TemplateProfile(), p)
	assert.False(t, p.Complete())
}

func TestSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := models.TemplateProfile()
	p.Name = "A"
	p.Email = "a@b.com"
	p.Age = 30
	p.Gender = "Male"
	p.Language = "English"
	p.State = "Karnataka"
	p.City = "Bangalore"

	require.NoError(t, store.Save(ctx, p))

	got := store.Load(ctx)
	assert.Equal(t, p, got)
	assert.True(t, got.Complete())
}

func TestSaveOverwritesSingleRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := models.TemplateProfile()
	first.Name = "First"
	require.NoError(t, store.Save(ctx, first))

	second := models.TemplateProfile()
	second.Name = "Second"
	require.NoError(t, store.Save(ctx, second))

	assert.Equal(t, "Second", store.Load(ctx).Name)

	var count int64
	require.NoError(t, store.db.Model(&models.Document{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMalformedDocumentServesTemplate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := models.Document{Key: DocumentKey, Value: "{not json", UpdatedAt: time.Now()}
	require.NoError(t, store.db.Create(&doc).Error)

	assert.Equal(t, models.TemplateProfile(), store.Load(ctx))
}

func TestResetRestoresTemplate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := models.TemplateProfile()
	p.Name = "Someone"
	p.OrdersPlaced = 7
	require.NoError(t, store.Save(ctx, p))

	reset, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateProfile(), reset)
	assert.Equal(t, models.TemplateProfile(), store.Load(ctx))
}

func TestRecordOrderCounters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := models.TemplateProfile()
	p.Name = "A"
	p.OrdersPlaced = 2
	p.TotalSpent = 500
	p.RestaurantsTried = 2
	require.NoError(t, store.Save(ctx, p))

	updated, err := store.RecordOrder(ctx, 240)
	require.NoError(t, err)

	assert.Equal(t, 3, updated.OrdersPlaced)
	assert.Equal(t, 740, updated.TotalSpent)
	assert.Equal(t, 3, updated.RestaurantsTried)
	assert.Equal(t, 4.5, updated.AvgRating)
	assert.Equal(t, updated, store.Load(ctx))
}

func TestRecordOrderReadsFresh(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stale := models.TemplateProfile()
	stale.TotalSpent = 100
	require.NoError(t, store.Save(ctx, stale))

	// A concurrent writer bumps the document after our caller last read it.
	current := stale
	current.TotalSpent = 1000
	require.NoError(t, store.Save(ctx, current))

	updated, err := store.RecordOrder(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, 1050, updated.TotalSpent)
}

func TestSubscribeReceivesSaveSignal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ch, cancel := store.Subscribe()
	defer cancel()

	require.NoError(t, store.Save(ctx, models.TemplateProfile()))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after Save")
	}
}

func TestNotifyCoalescesForSlowSubscribers(t *testing.T) {
	store := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	store.Notify()
	store.Notify()
	store.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatal("signals should coalesce into a single pending notification")
	default:
	}
}

func TestCancelledSubscriberStopsReceiving(t *testing.T) {
	store := newTestStore(t)

	ch, cancel := store.Subscribe()
	cancel()

	store.Notify()

	select {
	case <-ch:
		t.Fatal("cancelled subscription must not receive signals")
	default:
	}
}

func TestNotifyAfter(t *testing.T) {
	store := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	store.NotifyAfter(10 * time.Millisecond)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a delayed change signal")
	}
}
