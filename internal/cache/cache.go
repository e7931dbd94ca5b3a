// Package cache реализует шардированный индекс записей фикстур с поддержкой LRU и TTL.
package cache

import (
	"container/list"
	"errors"
	"hash/fnv"
	"sync"
	"time"
)

// entry представляет собой элемент кэша, который хранит запись и метаданные.
type entry[T any] struct {
	key       string
	value     T
	createdAt time.Time
	elem      *list.Element
}

// shard представляет собой отдельный сегмент кэша со своей блокировкой.
type shard[T any] struct {
	mu    sync.RWMutex
	items map[string]*entry[T]
	lru   *list.List
}

// RecordCache хранит записи по идентификатору, который вычисляет keyFn.
type RecordCache[T any] struct {
	shards         []*shard[T]
	mask           uint32
	perShardCap    int
	ttl            time.Duration
	cleanupEvery   time.Duration
	keyFn          func(T) string
	now            func() time.Time
	stopCh         chan struct{}
	stopOnce       sync.Once
	cleanupStarted sync.Once
}

// Options задает размеры и время жизни записей. MaxItems 0 и TTL 0 означают отсутствие ограничений.
type Options struct {
	ShardCount      int
	MaxItems        int
	TTL             time.Duration
	CleanupInterval time.Duration
}

// New создает новый RecordCache.
func New[T any](opts Options, keyFn func(T) string) (*RecordCache[T], error) {
	if keyFn == nil {
		return nil, errors.New("keyFn must not be nil")
	}
	if opts.ShardCount <= 0 {
		return nil, errors.New("shardCount must be > 0")
	}
	if opts.MaxItems < 0 {
		return nil, errors.New("maxItems must be >= 0")
	}
	if opts.TTL < 0 {
		return nil, errors.New("ttl must be >= 0")
	}
	if opts.CleanupInterval < 0 {
		return nil, errors.New("cleanupInterval must be >= 0")
	}
	if opts.MaxItems > 0 && opts.MaxItems < opts.ShardCount {
		return nil, errors.New("maxItems must be >= shardCount (or 0 for unlimited)")
	}

	// round shards to power of two
	sc := 1
	for sc < opts.ShardCount {
		sc <<= 1
	}

	c := &RecordCache[T]{
		shards:       make([]*shard[T], sc),
		mask:         uint32(sc - 1),
		ttl:          opts.TTL,
		cleanupEvery: opts.CleanupInterval,
		keyFn:        keyFn,
		now:          time.Now,
		stopCh:       make(chan struct{}),
	}
	for i := 0; i < sc; i++ {
		c.shards[i] = &shard[T]{
			items: make(map[string]*entry[T]),
			lru:   list.New(),
		}
	}
	if opts.MaxItems > 0 {
		per := opts.MaxItems / sc
		if per == 0 {
			per = 1
		}
		c.perShardCap = per
	}
	if c.ttl > 0 && c.cleanupEvery <= 0 {
		c.cleanupEvery = time.Minute
	}
	if c.ttl > 0 {
		c.startCleaner()
	}
	return c, nil
}

// startCleaner запускает фоновую очистку устаревших записей.
func (c *RecordCache[T]) startCleaner() {
	c.cleanupStarted.Do(func() {
		ticker := time.NewTicker(c.cleanupEvery)
		go func() {
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					c.evictExpired()
				case <-c.stopCh:
					return
				}
			}
		}()
	})
}

// Close останавливает фоновую очистку. Повторный вызов безопасен.
func (c *RecordCache[T]) Close() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// shardFor вычисляет шард для ключа с помощью FNV-1a.
func (c *RecordCache[T]) shardFor(key string) *shard[T] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return c.shards[h.Sum32()&c.mask]
}

// Set добавляет или обновляет запись.
func (c *RecordCache[T]) Set(v T) {
	key := c.keyFn(v)
	s := c.shardFor(key)
	now := c.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[key]; ok {
		ent.value = v
		ent.createdAt = now
		s.lru.MoveToBack(ent.elem)
		return
	}
	ent := &entry[T]{key: key, value: v, createdAt: now}
	ent.elem = s.lru.PushBack(ent)
	s.items[key] = ent
	if c.perShardCap > 0 && s.lru.Len() > c.perShardCap {
		c.evictLRULocked(s, 1)
	}
}

// Get возвращает запись по идентификатору, если она есть и не устарела.
func (c *RecordCache[T]) Get(id string) (T, bool) {
	var zero T
	s := c.shardFor(id)
	now := c.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.items[id]
	if !ok {
		return zero, false
	}
	if c.ttl > 0 && now.Sub(ent.createdAt) > c.ttl {
		c.removeEntryLocked(s, ent)
		return zero, false
	}
	s.lru.MoveToBack(ent.elem)
	return ent.value, true
}

// Len возвращает количество записей во всех шардах.
func (c *RecordCache[T]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

// LoadFromSlice добавляет или обновляет все записи из списка.
func (c *RecordCache[T]) LoadFromSlice(records []T) {
	for _, r := range records {
		c.Set(r)
	}
}

// evictExpired удаляет устаревшие записи из всех шардов.
func (c *RecordCache[T]) evictExpired() {
	if c.ttl <= 0 {
		return
	}
	now := c.now()
	for _, s := range c.shards {
		s.mu.Lock()
		for e := s.lru.Front(); e != nil; {
			next := e.Next()
			ent := e.Value.(*entry[T])
			if now.Sub(ent.createdAt) > c.ttl {
				c.removeEntryLocked(s, ent)
			}
			e = next
		}
		s.mu.Unlock()
	}
}

// evictLRULocked удаляет n наименее недавно использованных записей шарда.
func (c *RecordCache[T]) evictLRULocked(s *shard[T], n int) {
	for i := 0; i < n; i++ {
		front := s.lru.Front()
		if front == nil {
			return
		}
		c.removeEntryLocked(s, front.Value.(*entry[T]))
	}
}

// removeEntryLocked удаляет запись из карты и LRU-списка.
func (c *RecordCache[T]) removeEntryLocked(s *shard[T], ent *entry[T]) {
	delete(s.items, ent.key)
	s.lru.Remove(ent.elem)
}
