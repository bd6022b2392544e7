package crawler

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// VisitedStore remembers which item URLs were already collected.
type VisitedStore interface {
	Seen(url string) bool
	Mark(url string) error
}

const visitedKey = "aaprj:visited_urls"

// RedisVisited keeps the visited set in redis so it survives restarts and
// is shared between crawler runs.
type RedisVisited struct {
	Client *redis.Client
}

func (v *RedisVisited) Seen(url string) bool {
	seen, err := v.Client.SIsMember(context.Background(), visitedKey, url).Result()
	return err == nil && seen
}

func (v *RedisVisited) Mark(url string) error {
	return v.Client.SAdd(context.Background(), visitedKey, url).Err()
}

// MemoryVisited is the in-process fallback when no redis is configured.
type MemoryVisited struct {
	seen map[string]bool
}

func NewMemoryVisited() *MemoryVisited {
	return &MemoryVisited{seen: make(map[string]bool)}
}

func (v *MemoryVisited) Seen(url string) bool { return v.seen[url] }

func (v *MemoryVisited) Mark(url string) error {
	v.seen[url] = true
	return nil
}
