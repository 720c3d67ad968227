package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/thoron/pkg/config"
)

// newTestConfig returns a config pointing at the given Redis URL.
func newTestConfig(url string) *config.Config {
	return &config.Config{RedisURL: url}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), newTestConfig("not-a-valid-url")); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), newTestConfig("redis://localhost:19999")); err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
		wantPool int
		wantIdle int
	}{
		{"default pool", 0, defaultPoolSize, 2},
		{"configured pool", 25, 25, 2},
		{"tiny pool caps idle conns", 1, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newTestConfig("redis://localhost:6379/3")
			cfg.RedisPoolSize = tc.poolSize

			opts, err := clientOptions(cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.PoolSize != tc.wantPool {
				t.Errorf("PoolSize = %d, want %d", opts.PoolSize, tc.wantPool)
			}
			if opts.MinIdleConns != tc.wantIdle {
				t.Errorf("MinIdleConns = %d, want %d", opts.MinIdleConns, tc.wantIdle)
			}
			if opts.DB != 3 {
				t.Errorf("DB = %d, want 3", opts.DB)
			}
		})
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(context.Background(), newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rc.Client() == nil {
		t.Fatal("expected non-nil underlying client")
	}
	if err := rc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestJSONCache_Key(t *testing.T) {
	c := NewJSONCache[struct{}](nil, "tracking", time.Minute)
	if got := c.Key(42); got != "tracking:42" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestIsMiss(t *testing.T) {
	if !IsMiss(redis.Nil) {
		t.Fatal("redis.Nil must be a miss")
	}
	if IsMiss(errors.New("connection refused")) {
		t.Fatal("transport errors are not misses")
	}
}

type cachedDetail struct {
	ID     int64
	Events []string
}

func TestJSONCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(context.Background(), newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewJSONCache[cachedDetail](rc, "thoron-test-"+t.Name(), time.Minute)
	t.Cleanup(func() { _ = c.Flush(context.Background()) })

	if _, err := c.Get(ctx, 1); !IsMiss(err) {
		t.Fatalf("expected miss, got %v", err)
	}

	want := &cachedDetail{ID: 1, Events: []string{"Picked Up", "In Transit"}}
	if err := c.Set(ctx, 1, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := c.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != 1 || len(got.Events) != 2 {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := c.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, 1); !IsMiss(err) {
		t.Fatalf("expected miss after delete, got %v", err)
	}

	_ = c.Set(ctx, 2, want)
	_ = c.Set(ctx, 3, want)
	if err := c.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if _, err := c.Get(ctx, 3); !IsMiss(err) {
		t.Fatalf("expected miss after flush, got %v", err)
	}
}
