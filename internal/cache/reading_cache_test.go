package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/zekeriya15/BookShelf-API/internal/models"
)

func newTestCache(t *testing.T) *ReadingCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewReadingCache(NewRedisCache(mr.Addr(), "", 0))
}

func TestReadingCacheRoundTrip(t *testing.T) {
	rc := newTestCache(t)

	reading := &models.Reading{
		ID:           42,
		OwnerEmail:   "a@x.com",
		Title:        "Dune",
		Author:       "Herbert",
		Genre:        "SciFi",
		Pages:        412,
		CurrentPage:  10,
		DateModified: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, rc.SetReading(reading))

	got, ok := rc.GetReading(42)
	require.True(t, ok)
	require.Equal(t, reading.ID, got.ID)
	require.Equal(t, reading.OwnerEmail, got.OwnerEmail)
	require.Equal(t, reading.Title, got.Title)
	require.Equal(t, reading.Pages, got.Pages)
	require.True(t, reading.DateModified.Equal(got.DateModified))
}

func TestReadingCacheMiss(t *testing.T) {
	rc := newTestCache(t)

	_, ok := rc.GetReading(999)
	require.False(t, ok)
}

func TestReadingCacheInvalidate(t *testing.T) {
	rc := newTestCache(t)

	require.NoError(t, rc.SetReading(&models.Reading{ID: 5, Title: "Dune"}))
	require.NoError(t, rc.InvalidateReading(5))

	_, ok := rc.GetReading(5)
	require.False(t, ok)
}

func TestRedisCacheClose(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedisCache(mr.Addr(), "", 0)

	require.NoError(t, c.Ping())
	require.NoError(t, c.Close())
	require.Error(t, c.Ping())
}

func TestReadingCacheNilSafe(t *testing.T) {
	var rc *ReadingCache

	require.NoError(t, rc.SetReading(&models.Reading{ID: 1}))
	require.NoError(t, rc.InvalidateReading(1))
	_, ok := rc.GetReading(1)
	require.False(t, ok)

	// Constructed with no Redis backend behaves the same.
	rc = NewReadingCache(nil)
	require.NoError(t, rc.SetReading(&models.Reading{ID: 1}))
	_, ok = rc.GetReading(1)
	require.False(t, ok)
}
