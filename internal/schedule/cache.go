package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// maxCacheTTL caps the cache well below one reporting day; combined with the
// date-scoped key this guarantees a cached slate can never leak across days.
const maxCacheTTL = time.Hour

// CachedProvider is a Redis read-through cache in front of a schedule
// provider, so repeated pipeline runs within a short window do not hammer the
// upstream. The cache is best-effort: any Redis failure falls through to the
// underlying provider.
type CachedProvider struct {
	inner contracts.ScheduleProvider
	redis *redis.Client
	ttl   time.Duration
	loc   *time.Location
}

// NewCachedProvider wraps a provider with a Redis cache. ttl values above one
// hour are clamped.
func NewCachedProvider(inner contracts.ScheduleProvider, client *redis.Client, ttl time.Duration, loc *time.Location) *CachedProvider {
	if ttl <= 0 || ttl > maxCacheTTL {
		ttl = 5 * time.Minute
	}
	if loc == nil {
		loc = time.UTC
	}
	return &CachedProvider{
		inner: inner,
		redis: client,
		ttl:   ttl,
		loc:   loc,
	}
}

// TodaysGames serves from cache when possible, otherwise fetches and stores.
func (c *CachedProvider) TodaysGames(ctx context.Context, sport models.Sport) ([]models.ScheduleEntry, error) {
	key := c.cacheKey(sport)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var entries []models.ScheduleEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		// Corrupt entry; refetch and overwrite
	}

	entries, err := c.inner.TodaysGames(ctx, sport)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			fmt.Printf("schedule cache write failed for %s: %v\n", sport, err)
		}
	}

	return entries, nil
}

// cacheKey scopes entries to the reporting day so yesterday's slate is
// unreachable after midnight regardless of TTL.
func (c *CachedProvider) cacheKey(sport models.Sport) string {
	day := time.Now().In(c.loc).Format("2006-01-02")
	return fmt.Sprintf("schedule:%s:%s", sport, day)
}
