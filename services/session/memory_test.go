package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flag struct {
	On bool `json:"on"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	var got flag
	found, err := s.Get(ctx, "sid", KeyNewsletterDismissed, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "sid", KeyNewsletterDismissed, flag{On: true}))
	found, err = s.Get(ctx, "sid", KeyNewsletterDismissed, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got.On)

	// Other sessions do not see it.
	var other flag
	found, err = s.Get(ctx, "other", KeyNewsletterDismissed, &other)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Delete(ctx, "sid", KeyNewsletterDismissed))
	found, err = s.Get(ctx, "sid", KeyNewsletterDismissed, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreClearEndsSession(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyShop, map[string]string{"active": "Vata"}))
	require.NoError(t, s.Set(ctx, "sid", KeyJournal, map[string]string{"active": "Yoga"}))
	require.NoError(t, s.Clear(ctx, "sid"))

	var v map[string]string
	for _, key := range []string{KeyShop, KeyJournal} {
		found, err := s.Get(ctx, "sid", key, &v)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyShop, flag{On: true}))

	now = now.Add(9 * time.Minute)
	var got flag
	found, err := s.Get(ctx, "sid", KeyShop, &got)
	require.NoError(t, err)
	assert.True(t, found)

	// A write slides the expiry.
	require.NoError(t, s.Set(ctx, "sid", KeyJournal, flag{On: true}))
	now = now.Add(9 * time.Minute)
	found, err = s.Get(ctx, "sid", KeyShop, &got)
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	found, err = s.Get(ctx, "sid", KeyShop, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreSweep(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", KeyShop, flag{}))
	require.NoError(t, s.Set(ctx, "b", KeyShop, flag{}))
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Set(ctx, "c", KeyShop, flag{}))

	assert.Equal(t, 2, s.Sweep())
}

func TestMemoryStoreRequiresSessionID(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	assert.ErrorIs(t, s.Set(ctx, "", KeyShop, flag{}), ErrNoSession)
	_, err := s.Get(ctx, "", KeyShop, &flag{})
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, s.Clear(ctx, ""), ErrNoSession)
}

func TestLockerSerializesPerSession(t *testing.T) {
	l := NewLocker()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("sid")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, l.Len())
}
