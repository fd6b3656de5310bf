package flash

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PushPop(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	require.NoError(t, s.Push(ctx, "a", Message{Level: Success, Text: "Venue The Musical Hop was successfully listed!"}))
	require.NoError(t, s.Push(ctx, "a", Message{Level: Danger, Text: "second"}))
	require.NoError(t, s.Push(ctx, "b", Message{Level: Success, Text: "other session"}))

	got, err := s.Pop(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Level: Success, Text: "Venue The Musical Hop was successfully listed!"},
		{Level: Danger, Text: "second"},
	}, got)

	got, err = s.Pop(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Pop(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBag_AddTake(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	bag := NewBag(store, "sid-1")

	require.NoError(t, bag.Add(ctx, Danger, "An error occurred."))

	other := NewBag(store, "sid-2")
	got, err := other.Take(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = bag.Take(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Danger, got[0].Level)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Push(ctx, "shared", Message{Level: Success, Text: "x"})
		}()
	}
	wg.Wait()

	got, err := s.Pop(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	s := newMemoryStore(time.Minute, func() time.Time { return now })

	// Sessions that never come back for their notice.
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Push(ctx, fmt.Sprintf("fl_%d", i), Message{Level: Danger, Text: "No data with Venue id = x could be found!"}))
	}
	assert.Equal(t, 1000, s.size())

	now = now.Add(30 * time.Second)
	require.NoError(t, s.Push(ctx, "fresh", Message{Level: Success, Text: "kept"}))
	assert.Equal(t, 1001, s.size())

	got, err := s.Pop(ctx, "fl_1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	now = now.Add(time.Minute)
	require.NoError(t, s.Push(ctx, "late", Message{Level: Success, Text: "new"}))
	assert.Equal(t, 1, s.size())

	got, err = s.Pop(ctx, "fresh")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_PopAfterExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	s := newMemoryStore(time.Minute, func() time.Time { return now })

	require.NoError(t, s.Push(ctx, "a", Message{Level: Success, Text: "saved"}))
	now = now.Add(time.Minute)

	got, err := s.Pop(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, s.size())
}

func TestRedisStore_PushPopExpire(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStore(rdb, time.Minute)
	require.NoError(t, s.Push(ctx, "sid", Message{Level: Success, Text: "Artist Guns N Petals was successfully listed!"}))
	require.NoError(t, s.Push(ctx, "sid", Message{Level: Danger, Text: "second"}))
	assert.Equal(t, time.Minute, mr.TTL("flash:sid"))

	got, err := s.Pop(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Level: Success, Text: "Artist Guns N Petals was successfully listed!"},
		{Level: Danger, Text: "second"},
	}, got)
	assert.False(t, mr.Exists("flash:sid"))

	require.NoError(t, s.Push(ctx, "gone", Message{Level: Success, Text: "x"}))
	mr.FastForward(2 * time.Minute)
	got, err = s.Pop(ctx, "gone")
	require.NoError(t, err)
	assert.Empty(t, got)
}
