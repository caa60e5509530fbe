package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// seenTTL bounds cache growth; an entry older than this is re-announced on
// the next hunt rather than silently remembered forever.
const seenTTL = 30 * 24 * time.Hour

// SeenCache deduplicates new-find announcements across hunt cycles. A
// (identifier, platform) pair is announced only the first time it turns up
// within the TTL window.
type SeenCache struct {
	rdb *redis.Client
}

// NewSeenCache wraps a connected client.
func NewSeenCache(rdb *redis.Client) *SeenCache {
	return &SeenCache{rdb: rdb}
}

func seenKey(identifier, platform string) string {
	return fmt.Sprintf("gotcha:seen:%s:%s", identifier, platform)
}

// MarkFound records a hit and reports whether it is new. SetNX makes the
// check-and-set atomic across concurrent monitor cycles.
func (c *SeenCache) MarkFound(ctx context.Context, identifier, platform string) (bool, error) {
	isNew, err := c.rdb.SetNX(ctx, seenKey(identifier, platform), time.Now().UTC().Format(time.RFC3339), seenTTL).Result()
	if err != nil {
		return false, fmt.Errorf("setnx %s/%s: %w", identifier, platform, err)
	}
	return isNew, nil
}
