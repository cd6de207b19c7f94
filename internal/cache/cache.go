package cache

import (
	"fmt"
	"time"

	"gitcards/pkg/logger"

	"github.com/maypok86/otter/v2"
)

// * CardCache keeps rendered SVG bytes in memory so repeated embeds of the
// * same card do not re-run the fetch pipeline. Entries expire by write TTL;
// * rendering is recomputed fresh on miss. Nothing is persisted.
type CardCache struct {
	cache *otter.Cache[string, []byte]
	ttl   time.Duration
}

func NewCardCache(ttl time.Duration) *CardCache {
	c := otter.Must(&otter.Options[string, []byte]{
		MaximumSize:      10_000,
		InitialCapacity:  256,
		ExpiryCalculator: otter.ExpiryWriting[string, []byte](ttl),
	})

	return &CardCache{
		cache: c,
		ttl:   ttl,
	}
}

func key(username, cardType, theme string) string {
	return fmt.Sprintf("%s|%s|%s", username, cardType, theme)
}

func (c *CardCache) Get(username, cardType, theme string) ([]byte, bool) {
	svg, found := c.cache.GetIfPresent(key(username, cardType, theme))
	if !found {
		logger.Debug("Card cache miss for %s/%s (%s)", username, cardType, theme)
		return nil, false
	}
	return svg, true
}

func (c *CardCache) Set(username, cardType, theme string, svg []byte) {
	c.cache.Set(key(username, cardType, theme), svg)
}

// * Invalidate drops every cached card variant for one account
func (c *CardCache) Invalidate(username string) {
	prefix := username + "|"
	c.cache.All()(func(k string, _ []byte) bool {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			c.cache.Invalidate(k)
		}
		return true
	})
}

func (c *CardCache) Len() int {
	return c.cache.EstimatedSize()
}
