package holiday_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"go-payops/internal/compensation"
	"go-payops/internal/holiday"
	"go-payops/internal/shared/civil"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sampleHolidays() []holiday.Holiday {
	return []holiday.Holiday{
		{
			Date:          civil.DateFor(2024, time.June, 12),
			Name:          "Independence Day",
			Type:          compensation.HolidayTypeRegular,
			PayMultiplier: compensation.PayMultiplier(compensation.HolidayTypeRegular),
			Source:        holiday.SourceGenerated,
		},
	}
}

func TestCache_HitWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	cache := holiday.NewCache(holiday.NewMemoryStore(), clock, time.Hour)

	cache.Put(context.Background(), 2024, sampleHolidays())

	clock.Advance(59 * time.Minute)
	got, ok := cache.Get(context.Background(), 2024)
	assert.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, "Independence Day", got[0].Name)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	cache := holiday.NewCache(holiday.NewMemoryStore(), clock, time.Hour)

	cache.Put(context.Background(), 2024, sampleHolidays())

	clock.Advance(time.Hour + time.Second)
	_, ok := cache.Get(context.Background(), 2024)
	assert.False(t, ok)
}

func TestCache_MissForUnknownYear(t *testing.T) {
	cache := holiday.NewCache(holiday.NewMemoryStore(), nil, time.Hour)

	_, ok := cache.Get(context.Background(), 1999)
	assert.False(t, ok)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := holiday.NewRedisStore(rdb, time.Hour)

	entry := holiday.CacheEntry{
		Holidays: sampleHolidays(),
		CachedAt: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(entry)
	assert.NoError(t, err)

	mock.ExpectSet("holidays:2024", payload, time.Hour).SetVal("OK")
	assert.NoError(t, store.Put(context.Background(), 2024, entry))

	mock.ExpectGet("holidays:2024").SetVal(string(payload))
	got, err := store.Get(context.Background(), 2024)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got.Holidays, 1)
	assert.True(t, entry.CachedAt.Equal(got.CachedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_MissIsNotAnError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := holiday.NewRedisStore(rdb, time.Hour)

	mock.ExpectGet("holidays:2030").RedisNil()

	got, err := store.Get(context.Background(), 2030)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
