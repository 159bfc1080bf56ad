// Package cache is the process-local read-through cache that fronts user,
// image and token lookups. Entries are grouped in namespaces that are
// invalidated as a whole by write paths.
package cache

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// Namespace groups entries sharing an invalidation scope.
type Namespace string

const (
	UserByID             Namespace = "user-by-id"
	UserByUsername       Namespace = "user-by-username"
	UserExistsByUsername Namespace = "user-exists-by-username"
	UserExistsByEmail    Namespace = "user-exists-by-email"
	ImageListByOwner     Namespace = "image-list-by-owner"
	ImageByID            Namespace = "image-by-id"
	ImageByExternalID    Namespace = "image-by-external-id"
	TokenValidity        Namespace = "token-validity"
	TokenSubject         Namespace = "token-subject"
)

// UserNamespaces are evicted on every user mutation.
var UserNamespaces = []Namespace{UserByID, UserByUsername, UserExistsByUsername, UserExistsByEmail}

// ImageNamespaces are evicted on every image mutation.
var ImageNamespaces = []Namespace{ImageListByOwner, ImageByID, ImageByExternalID}

// AllNamespaces lists every namespace the service registers.
var AllNamespaces = append(append(append([]Namespace{}, UserNamespaces...), ImageNamespaces...), TokenValidity, TokenSubject)

// Config bounds every namespace.
type Config struct {
	Enabled    bool
	MaxEntries uint64
	WriteTTL   time.Duration
	AccessTTL  time.Duration
}

// DefaultConfig holds 10,000 entries per namespace, expiring 30 minutes
// after write or 10 minutes after the last access.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		MaxEntries: 10000,
		WriteTTL:   30 * time.Minute,
		AccessTTL:  10 * time.Minute,
	}
}

// Stats is a snapshot of one namespace's counters.
type Stats struct {
	Name               string  `json:"name"`
	Size               int     `json:"size"`
	HitCount           uint64  `json:"hitCount"`
	MissCount          uint64  `json:"missCount"`
	HitRate            float64 `json:"hitRate"`
	LoadCount          uint64  `json:"loadCount"`
	LoadFailureCount   uint64  `json:"loadFailureCount"`
	EvictionCount      uint64  `json:"evictionCount"`
	AverageLoadPenalty float64 `json:"averageLoadPenalty"`
}

type entry struct {
	value   any
	written time.Time
}

type store struct {
	items *ttlcache.Cache[string, entry]
	gen   atomic.Uint64
	// mu orders stores against invalidations so a load that lost the race
	// with an invalidation never lands.
	mu sync.Mutex

	hits, misses, loads, loadFailures atomic.Uint64
	// deleted counts explicit removals, which ttlcache books as evictions too.
	deleted   atomic.Uint64
	loadNanos atomic.Int64
}

// drop runs an explicit removal and books what it took out as deleted.
// Callers hold s.mu.
func (s *store) drop(remove func()) {
	before := s.items.Metrics().Evictions
	remove()
	s.deleted.Add(s.items.Metrics().Evictions - before)
}

func (s *store) evictions() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Metrics().Evictions - s.deleted.Load()
}

// Cache is a set of bounded, dual-expiry namespaces.
type Cache struct {
	cfg    Config
	now    func() time.Time
	group  singleflight.Group
	mu     sync.RWMutex
	stores map[Namespace]*store
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source used for write expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a cache with the given namespaces pre-registered.
func New(cfg Config, namespaces []Namespace, opts ...Option) *Cache {
	c := &Cache{
		cfg:    cfg,
		now:    time.Now,
		stores: make(map[Namespace]*store, len(namespaces)),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, ns := range namespaces {
		c.stores[ns] = c.newStore()
	}
	return c
}

func (c *Cache) newStore() *store {
	s := &store{}
	s.items = ttlcache.New[string, entry](
		ttlcache.WithTTL[string, entry](c.cfg.AccessTTL),
		ttlcache.WithCapacity[string, entry](c.cfg.MaxEntries),
	)
	go s.items.Start()
	return s
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Add(1)
	s.drop(s.items.DeleteAll)
}

// Enabled reports whether lookups are cached at all.
func (c *Cache) Enabled() bool {
	return c.cfg.Enabled
}

func (c *Cache) store(ns Namespace) *store {
	c.mu.RLock()
	s, ok := c.stores[ns]
	c.mu.RUnlock()
	if ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok = c.stores[ns]; ok {
		return s
	}
	s = c.newStore()
	c.stores[ns] = s
	return s
}

func (c *Cache) lookup(s *store, key string) (any, bool) {
	item := s.items.Get(key)
	if item == nil {
		s.misses.Add(1)
		return nil, false
	}
	e := item.Value()
	if c.cfg.WriteTTL > 0 && c.now().Sub(e.written) >= c.cfg.WriteTTL {
		// Counted as an eviction, not a deletion.
		s.mu.Lock()
		if cur := s.items.Get(key, ttlcache.WithDisableTouchOnHit[string, entry]()); cur != nil && cur.Value().written.Equal(e.written) {
			s.items.Delete(key)
		}
		s.mu.Unlock()
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.value, true
}

// GetOrLoad returns the cached value of key in ns, calling load on a miss.
// Concurrent misses on the same key share one load. Errors are not cached.
func GetOrLoad[T any](ctx context.Context, c *Cache, ns Namespace, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if !c.cfg.Enabled {
		return load(ctx)
	}

	s := c.store(ns)
	if v, ok := c.lookup(s, key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	gen := s.gen.Load()
	flightKey := string(ns) + "|" + strconv.FormatUint(gen, 10) + "|" + key
	res, err, _ := c.group.Do(flightKey, func() (any, error) {
		start := time.Now()
		v, err := load(ctx)
		s.loadNanos.Add(int64(time.Since(start)))
		if err != nil {
			s.loadFailures.Add(1)
			return nil, err
		}
		s.loads.Add(1)
		// An invalidation during the load makes the value stale.
		s.mu.Lock()
		if s.gen.Load() == gen {
			s.items.Set(key, entry{value: v, written: c.now()}, ttlcache.DefaultTTL)
		}
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := res.(T)
	return t, nil
}

// Invalidate drops every entry of ns.
func (c *Cache) Invalidate(namespaces ...Namespace) {
	if !c.cfg.Enabled {
		return
	}
	for _, ns := range namespaces {
		c.store(ns).reset()
		logger.Log.Debugw("cache namespace invalidated", "namespace", ns)
	}
}

// InvalidateKey drops a single entry.
func (c *Cache) InvalidateKey(ns Namespace, key string) {
	if !c.cfg.Enabled {
		return
	}
	s := c.store(ns)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Add(1)
	s.drop(func() { s.items.Delete(key) })
}

// Names lists registered namespaces in name order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.stores))
	for ns := range c.stores {
		names = append(names, string(ns))
	}
	sort.Strings(names)
	return names
}

// Has reports whether ns is registered.
func (c *Cache) Has(ns Namespace) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.stores[ns]
	return ok
}

// StatsFor returns the counters of ns, or false when ns is unknown.
func (c *Cache) StatsFor(ns Namespace) (Stats, bool) {
	c.mu.RLock()
	s, ok := c.stores[ns]
	c.mu.RUnlock()
	if !ok {
		return Stats{}, false
	}

	hits, misses := s.hits.Load(), s.misses.Load()
	loads, failures := s.loads.Load(), s.loadFailures.Load()
	st := Stats{
		Name:             string(ns),
		Size:             s.items.Len(),
		HitCount:         hits,
		MissCount:        misses,
		HitRate:          1,
		LoadCount:        loads,
		LoadFailureCount: failures,
		EvictionCount:    s.evictions(),
	}
	if total := hits + misses; total > 0 {
		st.HitRate = float64(hits) / float64(total)
	}
	if n := loads + failures; n > 0 {
		st.AverageLoadPenalty = float64(s.loadNanos.Load()) / float64(n)
	}
	return st, true
}

// Stats returns the counters of every namespace.
func (c *Cache) Stats() map[string]Stats {
	out := make(map[string]Stats)
	for _, name := range c.Names() {
		if st, ok := c.StatsFor(Namespace(name)); ok {
			out[name] = st
		}
	}
	return out
}

// Clear drops every entry of ns. It returns false when ns is unknown.
func (c *Cache) Clear(ns Namespace) bool {
	if !c.Has(ns) {
		return false
	}
	c.store(ns).reset()
	return true
}

// ClearAll drops every entry of every namespace.
func (c *Cache) ClearAll() {
	for _, name := range c.Names() {
		c.Clear(Namespace(name))
	}
}

// Close stops the background expiry loops.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.stores {
		s.items.Stop()
	}
}
