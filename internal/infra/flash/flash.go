// Package flash keeps one-shot user notices between a write and the page
// rendered after it, keyed by a per-browser session id.
package flash

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

type Level string

const (
	Success Level = "success"
	Danger  Level = "danger"
)

// ContextKey is the gin context key holding the request's *Bag.
const ContextKey = "flash"

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

type Store interface {
	Push(ctx context.Context, sid string, m Message) error
	// Pop returns and clears every pending message for sid.
	Pop(ctx context.Context, sid string) ([]Message, error)
}

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl, prefix: "flash:"}
}

func (s *redisStore) Push(ctx context.Context, sid string, m Message) error {
	raw, err := sonic.Marshal(m)
	if err != nil {
		return err
	}
	key := s.prefix + sid
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, raw)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

func (s *redisStore) Pop(ctx context.Context, sid string) ([]Message, error) {
	key := s.prefix + sid
	var lr *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		lr = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(lr.Val()))
	for _, raw := range lr.Val() {
		var m Message
		if err := sonic.UnmarshalString(raw, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type memoryEntry struct {
	msgs    []Message
	expires time.Time
}

// memoryStore drops a session's notices ttl after its last push, like the
// redis key expiry. Expired sessions are swept at most once per ttl.
type memoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
	entries   map[string]*memoryEntry
}

// NewMemoryStore is used when no redis is configured and in tests.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &memoryStore{ttl: ttl, now: now, entries: make(map[string]*memoryEntry)}
}

func (s *memoryStore) Push(_ context.Context, sid string, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !now.Before(s.nextSweep) {
		s.sweep(now)
	}

	e, ok := s.entries[sid]
	if !ok || !now.Before(e.expires) {
		e = &memoryEntry{}
		s.entries[sid] = e
	}
	e.msgs = append(e.msgs, m)
	e.expires = now.Add(s.ttl)
	return nil
}

func (s *memoryStore) Pop(_ context.Context, sid string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sid]
	if !ok {
		return nil, nil
	}
	delete(s.entries, sid)
	if !s.now().Before(e.expires) {
		return nil, nil
	}
	return e.msgs, nil
}

// sweep must be called with mu held.
func (s *memoryStore) sweep(now time.Time) {
	for sid, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, sid)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}

func (s *memoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Bag binds a store to one browser session.
type Bag struct {
	store Store
	sid   string
}

func NewBag(store Store, sid string) *Bag {
	return &Bag{store: store, sid: sid}
}

func (b *Bag) Add(ctx context.Context, level Level, text string) error {
	return b.store.Push(ctx, b.sid, Message{Level: level, Text: text})
}

func (b *Bag) Take(ctx context.Context) ([]Message, error) {
	return b.store.Pop(ctx, b.sid)
}
