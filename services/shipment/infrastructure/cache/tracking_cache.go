// Package cache adapts the Redis JSON cache to the tracking read model.
package cache

import (
	"context"
	"time"

	pkgcache "github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/services/shipment/domain/models"
	"github.com/ghuser/thoron/services/shipment/domain/repositories"
)

// TrackingDetailTTL bounds staleness if an invalidation is ever missed.
const TrackingDetailTTL = 10 * time.Minute

// TrackingCache implements repositories.TrackingCache on Redis.
type TrackingCache struct {
	store *pkgcache.JSONCache[models.TrackingDetail]
}

var _ repositories.TrackingCache = (*TrackingCache)(nil)

// NewTrackingCache returns a TrackingCache backed by rc.
func NewTrackingCache(rc *pkgcache.RedisClient) *TrackingCache {
	return &TrackingCache{
		store: pkgcache.NewJSONCache[models.TrackingDetail](rc, pkgcache.TrackingPrefix, TrackingDetailTTL),
	}
}

// Get returns nil, nil on a miss.
func (c *TrackingCache) Get(ctx context.Context, shipmentID int64) (*models.TrackingDetail, error) {
	d, err := c.store.Get(ctx, shipmentID)
	if pkgcache.IsMiss(err) {
		return nil, nil
	}
	return d, err
}

func (c *TrackingCache) Set(ctx context.Context, detail *models.TrackingDetail) error {
	return c.store.Set(ctx, detail.ID, detail)
}

func (c *TrackingCache) Invalidate(ctx context.Context, shipmentID int64) error {
	return c.store.Delete(ctx, shipmentID)
}

func (c *TrackingCache) InvalidateAll(ctx context.Context) error {
	return c.store.Flush(ctx)
}
