package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached API payload and its freshness metadata.
type CacheEntry struct {
	CacheKey string
	// Scope groups entries that are invalidated together, e.g. "campaign_list".
	Scope        string
	CampaignID   string
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Fresh reports whether the entry may still be served at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(e.ExpiresAt)
}

// Store is the contract for web cache persistence.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	DeleteScope(ctx context.Context, scope string) error
	DeleteCampaignEntries(ctx context.Context, campaignID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
