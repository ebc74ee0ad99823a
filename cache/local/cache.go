package local

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("cache: key not found")
	// ErrWrongType is returned when a key holds a different kind of value.
	ErrWrongType = errors.New("cache: wrong kind of value")
)

// Config holds LocalCache settings.
type Config struct {
	GCInterval time.Duration
}

type kind uint8

const (
	kindString kind = iota
	kindHash
	kindSet
	kindZSet
	kindList
)

// item is one key. Exactly one of the value fields is used, chosen by kind.
type item struct {
	kind     kind
	str      string
	hash     map[string]string
	set      map[string]struct{}
	zset     map[string]float64
	list     []string
	expireAt time.Time // zero: never
}

func (it *item) expired(now time.Time) bool {
	return !it.expireAt.IsZero() && now.After(it.expireAt)
}

// LocalCache is an in-process stand-in for Redis. Every key kind shares one
// keyspace, so Del and Expire apply to lists and sets as well as strings.
type LocalCache struct {
	mu         sync.Mutex
	items      map[string]*item
	gcInterval time.Duration
	stopGC     chan struct{}
	closeOnce  sync.Once
}

// NewCache creates a LocalCache and starts the background GC goroutine.
func NewCache(cfg Config) (*LocalCache, error) {
	interval := cfg.GCInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	c := &LocalCache{
		items:      make(map[string]*item),
		gcInterval: interval,
		stopGC:     make(chan struct{}),
	}
	go c.runGC()
	return c, nil
}

// Close stops the background GC goroutine. It is safe to call twice.
func (c *LocalCache) Close() error {
	c.closeOnce.Do(func() { close(c.stopGC) })
	return nil
}

func (c *LocalCache) runGC() {
	ticker := time.NewTicker(c.gcInterval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			for k, it := range c.items {
				if it.expired(now) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopGC:
			return
		}
	}
}

// lookup returns the live item at key. With create set, a missing key is
// made as an empty value of kind k. Callers hold c.mu.
func (c *LocalCache) lookup(key string, k kind, create bool) (*item, error) {
	it, ok := c.items[key]
	if ok && it.expired(time.Now()) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		if !create {
			return nil, ErrNotFound
		}
		it = &item{kind: k}
		switch k {
		case kindHash:
			it.hash = make(map[string]string)
		case kindSet:
			it.set = make(map[string]struct{})
		case kindZSet:
			it.zset = make(map[string]float64)
		}
		c.items[key] = it
		return it, nil
	}
	if it.kind != k {
		return nil, ErrWrongType
	}
	return it, nil
}

// span converts Redis-style inclusive indexes, which may be negative, into a
// half-open range over n elements.
func span(start, stop int64, n int) (int, int) {
	size := int64(n)
	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	if start < 0 {
		start = 0
	}
	if stop >= size {
		stop = size - 1
	}
	if start > stop || start >= size {
		return 0, 0
	}
	return int(start), int(stop) + 1
}

// ---- KV ----

func (c *LocalCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindString, false)
	if err != nil {
		return "", err
	}
	return it.str, nil
}

func (c *LocalCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value, ttl)
	return nil
}

func (c *LocalCache) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.lookup(key, kindString, false); !errors.Is(err, ErrNotFound) {
		return false, nil
	}
	c.store(key, value, ttl)
	return true, nil
}

func (c *LocalCache) store(key, value string, ttl time.Duration) {
	it := &item{kind: kindString, str: value}
	if ttl > 0 {
		it.expireAt = time.Now().Add(ttl)
	}
	c.items[key] = it
}

func (c *LocalCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func (c *LocalCache) Expire(_ context.Context, key string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	if !ok || it.expired(time.Now()) {
		delete(c.items, key)
		return ErrNotFound
	}
	it.expireAt = time.Now().Add(ttl)
	return nil
}

// ---- Hash ----

func (c *LocalCache) HIncrBy(_ context.Context, key, field string, incr int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindHash, true)
	if err != nil {
		return 0, err
	}
	var n int64
	if v, ok := it.hash[field]; ok {
		if n, err = strconv.ParseInt(v, 10, 64); err != nil {
			return 0, ErrWrongType
		}
	}
	n += incr
	it.hash[field] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *LocalCache) HGetAll(_ context.Context, key string) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make(map[string]string)
	it, err := c.lookup(key, kindHash, false)
	if errors.Is(err, ErrNotFound) {
		return result, nil
	} else if err != nil {
		return nil, err
	}
	for k, v := range it.hash {
		result[k] = v
	}
	return result, nil
}

// ---- Set ----

func (c *LocalCache) SAdd(_ context.Context, key string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindSet, true)
	if err != nil {
		return err
	}
	for _, m := range members {
		it.set[m] = struct{}{}
	}
	return nil
}

func (c *LocalCache) SRem(_ context.Context, key string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindSet, false)
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	for _, m := range members {
		delete(it.set, m)
	}
	if len(it.set) == 0 {
		delete(c.items, key)
	}
	return nil
}

func (c *LocalCache) SMembers(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindSet, false)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(it.set))
	for m := range it.set {
		result = append(result, m)
	}
	return result, nil
}

// ---- ZSet ----

func (c *LocalCache) ZAdd(_ context.Context, key string, score float64, member string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindZSet, true)
	if err != nil {
		return err
	}
	it.zset[member] = score
	return nil
}

func (c *LocalCache) ZRem(_ context.Context, key string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindZSet, false)
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	for _, m := range members {
		delete(it.zset, m)
	}
	if len(it.zset) == 0 {
		delete(c.items, key)
	}
	return nil
}

// ZRevRange orders by score, highest first, breaking ties by member in
// reverse byte order as Redis does.
func (c *LocalCache) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindZSet, false)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	members := make([]string, 0, len(it.zset))
	for m := range it.zset {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool {
		sa, sb := it.zset[members[a]], it.zset[members[b]]
		if sa != sb {
			return sa > sb
		}
		return members[a] > members[b]
	})
	lo, hi := span(start, stop, len(members))
	return members[lo:hi], nil
}

func (c *LocalCache) ZScore(_ context.Context, key, member string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindZSet, false)
	if err != nil {
		return 0, err
	}
	score, ok := it.zset[member]
	if !ok {
		return 0, ErrNotFound
	}
	return score, nil
}

// ---- List ----

func (c *LocalCache) LPush(_ context.Context, key string, values ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindList, true)
	if err != nil {
		return err
	}
	// each value goes to the head in turn, so the last one ends up first
	head := make([]string, len(values), len(values)+len(it.list))
	for i, v := range values {
		head[len(values)-1-i] = v
	}
	it.list = append(head, it.list...)
	return nil
}

func (c *LocalCache) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindList, false)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	lo, hi := span(start, stop, len(it.list))
	result := make([]string, hi-lo)
	copy(result, it.list[lo:hi])
	return result, nil
}

func (c *LocalCache) LTrim(_ context.Context, key string, start, stop int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.lookup(key, kindList, false)
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	lo, hi := span(start, stop, len(it.list))
	it.list = append([]string(nil), it.list[lo:hi]...)
	if len(it.list) == 0 {
		delete(c.items, key)
	}
	return nil
}
