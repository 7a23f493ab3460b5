package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	assert.Equal(t, s.Set(ctx, "a", "1", time.Minute), nil)
	v, ok, err := s.Get(ctx, "a")
	assert.Equal(t, err, nil)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "1")

	_, ok, _ = s.Get(ctx, "missing")
	assert.Equal(t, ok, false)

	assert.Equal(t, s.Delete(ctx, "a"), nil)
	_, ok, _ = s.Get(ctx, "a")
	assert.Equal(t, ok, false)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	s.Set(ctx, "short", "x", time.Millisecond)
	s.Set(ctx, "forever", "y", 0)
	time.Sleep(5 * time.Millisecond)

	_, ok, _ := s.Get(ctx, "short")
	assert.Equal(t, ok, false)
	_, ok, _ = s.Get(ctx, "forever")
	assert.Equal(t, ok, true)

	s.removeExpired(time.Now())
	assert.Equal(t, s.Len(), 1)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, s.Close(), nil)
	assert.Equal(t, s.Close(), nil)
}

func TestNewStore_Fallbacks(t *testing.T) {
	ctx := context.Background()

	s := NewStore(ctx, config.RedisConfig{}, nil)
	assert.Equal(t, s.Name(), "memory")
	s.Close()

	s = NewStore(ctx, config.RedisConfig{URL: "not a url"}, nil)
	assert.Equal(t, s.Name(), "memory")
	s.Close()
}
