// Package cache implements dashboard memoization on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

const keyPrefix = "ledger:dashboard"

// redisDashboardCache stores composed dashboards as JSON. Snapshot versions
// restart at 1 with every process, so keys carry a per-instance namespace.
type redisDashboardCache struct {
	client   *redis.Client
	ttl      time.Duration
	instance string
}

// NewRedisDashboardCache creates a dashboard cache backed by client.
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) adapter.DashboardCache {
	return &redisDashboardCache{
		client:   client,
		ttl:      ttl,
		instance: uuid.NewString(),
	}
}

func (c *redisDashboardCache) key(version uint64, view entity.ViewConfig) string {
	return fmt.Sprintf("%s:%s:%d:%s:%s:%s:%d:%d",
		keyPrefix, c.instance, version,
		view.Month, view.Category, view.Order, view.Page, view.PageSize,
	)
}

// Get returns the cached dashboard for version and view.
func (c *redisDashboardCache) Get(ctx context.Context, version uint64, view entity.ViewConfig) (*entity.Dashboard, bool) {
	raw, err := c.client.Get(ctx, c.key(version, view)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Debug("Dashboard cache read failed", "error", err)
		}
		return nil, false
	}

	var dashboard entity.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		slog.Debug("Dashboard cache entry unreadable", "error", err)
		return nil, false
	}
	return &dashboard, true
}

// Set stores the dashboard with the configured TTL.
func (c *redisDashboardCache) Set(ctx context.Context, version uint64, view entity.ViewConfig, dashboard *entity.Dashboard) {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		slog.Debug("Failed to encode dashboard for cache", "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(version, view), raw, c.ttl).Err(); err != nil {
		slog.Debug("Dashboard cache write failed", "error", err)
	}
}

// noopDashboardCache never hits.
type noopDashboardCache struct{}

// NewNoopDashboardCache returns a cache that stores nothing.
func NewNoopDashboardCache() adapter.DashboardCache {
	return noopDashboardCache{}
}

func (noopDashboardCache) Get(context.Context, uint64, entity.ViewConfig) (*entity.Dashboard, bool) {
	return nil, false
}

func (noopDashboardCache) Set(context.Context, uint64, entity.ViewConfig, *entity.Dashboard) {}

// NewRedisClient parses url and verifies the server answers.
func NewRedisClient(ctx context.Context, url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
