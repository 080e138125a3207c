package stats

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/pkg"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// Cache keeps computed stats per (user, window, day) for a short time.
// Every entry key includes the user's current generation; Invalidate bumps the
// generation, which leaves the old entries unreachable until they expire.
type Cache struct {
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
	nowNano func() int64
}

func NewCache(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *Cache {
	return &Cache{
		cache:   freecache.NewCache(sizeMB * megabyte),
		ttl:     ttl,
		metrics: metricsManager,
		nowNano: func() int64 { return time.Now().UnixNano() },
	}
}

// Get returns the cached stats along with the user's generation it looked under.
// The generation is handed back to Set, so a result computed before an
// Invalidate never lands under the newer generation.
func (c *Cache) Get(userID uuid.UUID, windowDays int, today pkg.Date) (*Response, uint64, bool) {
	gen := c.generation(userID)
	entryBytes, err := c.cache.Get(entryKey(userID, gen, windowDays, today))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("stats cache get for user %s: %s", userID, err)
		}
		c.count("miss")
		return nil, gen, false
	}

	resp := &Response{}
	if err := json.Unmarshal(entryBytes, resp); err != nil {
		log.Errorf("failed to unmarshal cached stats for user %s: %s", userID, err)
		c.count("miss")
		return nil, gen, false
	}

	c.count("hit")
	return resp, gen, true
}

func (c *Cache) Set(userID uuid.UUID, gen uint64, windowDays int, today pkg.Date, resp *Response) {
	if current := c.generation(userID); current != gen {
		log.Tracef("stats for user %s computed under generation %d, now %d: not cached", userID, gen, current)
		return
	}

	entryBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal stats for cache, user %s: %s", userID, err)
		return
	}
	err = c.cache.Set(entryKey(userID, gen, windowDays, today), entryBytes, int(c.ttl.Seconds()))
	switch {
	case errors.Is(err, freecache.ErrLargeEntry):
		// entries are limited to 1/1024 of the cache size
		log.Debugf("stats for user %s too large to cache: %d bytes", userID, len(entryBytes))
	case err != nil:
		log.Errorf("stats cache set for user %s: %s", userID, err)
	}
}

// Invalidate drops all cached stats of the user.
func (c *Cache) Invalidate(userID uuid.UUID) {
	c.setGeneration(userID, c.generation(userID)+1)
	log.Tracef("stats cache invalidated for user %s", userID)
}


// generation returns the user's generation, starting a fresh one if it was
// never set or got evicted, so entries written before eviction stay unreachable.
func (c *Cache) generation(userID uuid.UUID) uint64 {
	genBytes, err := c.cache.Get(generationKey(userID))
	if err == nil && len(genBytes) == 8 {
		return binary.BigEndian.Uint64(genBytes)
	}
	gen := uint64(c.nowNano())
	c.setGeneration(userID, gen)
	return gen
}

func (c *Cache) setGeneration(userID uuid.UUID, gen uint64) {
	genBytes := binary.BigEndian.AppendUint64(nil, gen)
	// generations outlive entries so that an entry never sees its generation reset
	if err := c.cache.Set(generationKey(userID), genBytes, 0); err != nil {
		log.Errorf("stats cache set generation for user %s: %s", userID, err)
	}
}

func (c *Cache) count(result string) {
	if c.metrics != nil {
		c.metrics.CounterStatsCache.WithLabelValues(result).Inc()
	}
}

func entryKey(userID uuid.UUID, gen uint64, windowDays int, today pkg.Date) []byte {
	return fmt.Appendf(nil, "stats||%s||%d||%d||%s", userID, gen, windowDays, today)
}

func generationKey(userID uuid.UUID) []byte {
	return []byte("stats-gen||" + userID.String())
}
