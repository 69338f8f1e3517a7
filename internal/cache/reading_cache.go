package cache

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zekeriya15/BookShelf-API/internal/models"
)

const ReadingTTL = 5 * time.Minute

// ReadingCache caches single readings by id. All methods are nil-safe so the
// service runs unchanged when Redis is unavailable. Ownership checks happen
// after the fetch, so a cached row never widens visibility.
type ReadingCache struct {
	redis *RedisCache
}

// NewReadingCache creates a new reading cache
func NewReadingCache(redis *RedisCache) *ReadingCache {
	return &ReadingCache{redis: redis}
}

func readingKey(id uint) string {
	return fmt.Sprintf("reading:%d", id)
}

// GetReading retrieves a cached reading by id
func (rc *ReadingCache) GetReading(id uint) (*models.Reading, bool) {
	if rc == nil || rc.redis == nil {
		return nil, false
	}
	data, err := rc.redis.Get(readingKey(id))
	if err != nil || data == nil {
		return nil, false
	}

	var reading models.Reading
	if err := msgpack.Unmarshal(data, &reading); err != nil {
		return nil, false
	}

	return &reading, true
}

// SetReading caches a reading
func (rc *ReadingCache) SetReading(reading *models.Reading) error {
	if rc == nil || rc.redis == nil || reading == nil {
		return nil
	}
	data, err := msgpack.Marshal(reading)
	if err != nil {
		return err
	}

	return rc.redis.Set(readingKey(reading.ID), data, ReadingTTL)
}

// InvalidateReading drops a cached reading after any mutation or delete
func (rc *ReadingCache) InvalidateReading(id uint) error {
	if rc == nil || rc.redis == nil {
		return nil
	}
	return rc.redis.Delete(readingKey(id))
}
