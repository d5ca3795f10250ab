package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_Take(t *testing.T) {
	b := newTokenBucket(3, 1)
	for i := 0; i < 3; i++ {
		ok, remaining, _ := b.take()
		require.True(t, ok, "take %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}
	ok, remaining, resetAt := b.take()
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
	assert.True(t, resetAt.After(time.Now()))
}

func TestTokenBucket_Refills(t *testing.T) {
	b := newTokenBucket(1, 20) // one token every 50ms
	ok, _, _ := b.take()
	require.True(t, ok)
	ok, _, _ = b.take()
	require.False(t, ok)

	time.Sleep(80 * time.Millisecond)
	ok, _, _ = b.take()
	assert.True(t, ok)
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 5, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		ok, info := l.Allow("10.0.0.1", "/styleguides", "GET")
		require.True(t, ok)
		assert.Equal(t, 5, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}
	ok, info := l.Allow("10.0.0.1", "/styleguides", "GET")
	assert.False(t, ok)
	assert.Positive(t, info.RetryAfter)

	ok, _ = l.Allow("10.0.0.2", "/styleguides", "GET")
	assert.True(t, ok, "other clients have their own bucket")
}

func TestLimiter_Lists(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})
	defer l.Stop()

	for i := 0; i < 20; i++ {
		ok, info := l.Allow("10.0.0.1", "/styleguides", "POST")
		require.True(t, ok)
		assert.Zero(t, info.Limit)
	}
	ok, _ := l.Allow("10.0.0.9", "/health", "GET")
	assert.False(t, ok)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()
	for i := 0; i < 50; i++ {
		ok, _ := l.Allow("10.0.0.1", "/styleguides", "POST")
		require.True(t, ok)
	}
}

func TestLimiter_GenerateEndpoint(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(20),
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		ok, info := l.Allow("10.0.0.1", "/styleguides", "POST")
		require.True(t, ok)
		assert.Equal(t, 20, info.Limit)
	}
	ok, _ := l.Allow("10.0.0.1", "/styleguides", "POST")
	assert.False(t, ok, "burst of 3 is spent")

	ok, info := l.Allow("10.0.0.1", "/styleguides", "GET")
	assert.True(t, ok)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer l.Stop()
	for i := 0; i < 10; i++ {
		ok, _ := l.Allow("10.0.0.1", "/health", "GET")
		require.True(t, ok)
		ok, _ = l.Allow("10.0.0.1", "/metrics", "GET")
		require.True(t, ok)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 50, DefaultWindow: time.Hour})
	defer l.Stop()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("10.0.0.1", "/styleguides", "GET"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(50), allowed.Load())
}

func TestLimiter_EvictIdle(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	l.Allow("10.0.0.1", "/a", "GET")
	l.Allow("10.0.0.2", "/a", "GET")
	assert.Equal(t, 0, l.evictIdle(time.Now().Add(-time.Minute)))
	assert.Equal(t, 2, l.evictIdle(time.Now().Add(time.Second)))
	assert.Empty(t, l.buckets)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)

	ok, info := l.Allow("10.0.0.1", "/x", "GET")
	assert.True(t, ok)
	assert.Equal(t, DefaultLimit, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs(20)
	tests := []struct {
		name   string
		path   string
		method string
		want   string
	}{
		{"exact generate", "/styleguides", "POST", "/styleguides"},
		{"exact stream", "/styleguides/stream", "POST", "/styleguides/stream"},
		{"prefix delete", "/styleguides/0b9c", "DELETE", "/styleguides/"},
		{"read falls through", "/styleguides/0b9c", "GET", ""},
		{"health", "/health", "GET", "/health"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Path)
		})
	}
	assert.Zero(t, MatchEndpoint("/health", "GET", nil).Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,")
	t.Setenv("RATE_LIMIT_GENERATE_PER_HOUR", "7")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, DefaultWindow, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)
	assert.Equal(t, 7, cfg.EndpointConfigs[0].Limit)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
