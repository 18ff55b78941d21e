package tripplanner

import (
	"bytes"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// responseCache memoizes serialized plan responses keyed by the request
// parameters. Entries expire on their TTL and the whole cache is flushed
// when the network is reloaded.
type responseCache struct {
	c *gocache.Cache
}

func newResponseCache(ttl, cleanupInterval time.Duration) *responseCache {
	return &responseCache{c: gocache.New(ttl, cleanupInterval)}
}

func (rc *responseCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (rc *responseCache) get(key string) ([]byte, bool) {
	v, ok := rc.c.Get(key)
	if !ok {
		return nil, false
	}
	buf, ok := v.([]byte)
	return buf, ok
}

func (rc *responseCache) set(key string, buf []byte) {
	rc.c.Set(key, buf, gocache.DefaultExpiration)
}

func (rc *responseCache) flush() {
	rc.c.Flush()
}
