package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// MentorDataSource fetches mentor records from the backing store
type MentorDataSource interface {
	GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error)
}

const (
	mentorKeyPrefix  = "mentor:id:"
	cacheName        = "mentor_by_id"
	cacheCheckPeriod = 30 * time.Second
)

// MentorCache is a read-through cache of mentor records keyed by id
type MentorCache struct {
	cache      *gocache.Cache
	dataSource MentorDataSource
	ttl        time.Duration
	disabled   bool
}

// NewMentorCache creates the cache. A non-positive ttl or disabled=true
// turns every lookup into a direct data source call.
func NewMentorCache(dataSource MentorDataSource, ttlSeconds int, disabled bool) *MentorCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &MentorCache{
		cache:      gocache.New(ttl, cacheCheckPeriod),
		dataSource: dataSource,
		ttl:        ttl,
		disabled:   disabled || ttl <= 0,
	}
}

// GetMentorByID returns the cached record or loads it. Lookup errors,
// including not-found, are never cached.
func (mc *MentorCache) GetMentorByID(ctx context.Context, id int) (*models.MentorRecord, error) {
	if mc.disabled {
		return mc.dataSource.GetMentorByID(ctx, id)
	}

	key := mentorKeyPrefix + strconv.Itoa(id)
	if data, found := mc.cache.Get(key); found {
		if mentor, ok := data.(*models.MentorRecord); ok {
			metrics.CacheHits.WithLabelValues(cacheName).Inc()
			return mentor, nil
		}
		logger.Error("Invalid cache data type", zap.Int("mentor_id", id))
		mc.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(cacheName).Inc()
	mentor, err := mc.dataSource.GetMentorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mc.cache.Set(key, mentor, mc.ttl)
	metrics.CacheSize.WithLabelValues(cacheName).Set(float64(mc.cache.ItemCount()))
	logger.Debug("Mentor cached", zap.Int("mentor_id", id), zap.Duration("ttl", mc.ttl))
	return mentor, nil
}

// Invalidate drops one mentor from the cache
func (mc *MentorCache) Invalidate(id int) {
	mc.cache.Delete(mentorKeyPrefix + strconv.Itoa(id))
	metrics.CacheSize.WithLabelValues(cacheName).Set(float64(mc.cache.ItemCount()))
}

// Flush empties the cache
func (mc *MentorCache) Flush() {
	mc.cache.Flush()
	metrics.CacheSize.WithLabelValues(cacheName).Set(0)
	logger.Info("Mentor cache flushed")
}

// Size returns the number of cached mentors
func (mc *MentorCache) Size() int {
	return mc.cache.ItemCount()
}
