package gateway

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/goccy/go-json"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
	webstorage "github.com/louisbranch/crowdfund/internal/services/web/storage"
)

// Cache scopes group entries invalidated together.
const (
	ScopeCampaignList = "campaign_list"
	ScopeCampaign     = "campaign"
	ScopeDonations    = "donations"
)

// DefaultCacheTTL bounds how stale a cached read may be.
const DefaultCacheTTL = 30 * time.Second

// CacheStore is the persistence the read-through cache needs.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error
	DeleteScope(ctx context.Context, scope string) error
	DeleteCampaignEntries(ctx context.Context, campaignID string) error
}

// CacheOptions tunes the read-through cache.
type CacheOptions struct {
	TTL     time.Duration
	Now     func() time.Time
	Metrics *metrics.Metrics
}

// CachedGateway serves campaign reads from a local cache and falls through
// to the wrapped gateway on a miss. Cache failures never fail a request.
type CachedGateway struct {
	next    campaignapp.CampaignGateway
	store   CacheStore
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Metrics
}

// NewCachedGateway wraps next with a read-through cache. A nil store
// returns next unchanged.
func NewCachedGateway(next campaignapp.CampaignGateway, store CacheStore, opts CacheOptions) campaignapp.CampaignGateway {
	if next == nil || store == nil {
		return next
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &CachedGateway{next: next, store: store, ttl: ttl, now: now, metrics: opts.Metrics}
}

// ListCampaigns serves a filtered listing.
func (c *CachedGateway) ListCampaigns(ctx context.Context, filter campaignapp.CampaignFilter) ([]campaignapp.Campaign, error) {
	key := ScopeCampaignList + ":" + filter.Category + "|" + string(filter.Status)
	return readThrough(ctx, c, ScopeCampaignList, key, "", func(ctx context.Context) ([]campaignapp.Campaign, error) {
		return c.next.ListCampaigns(ctx, filter)
	})
}

// GetCampaign serves one campaign.
func (c *CachedGateway) GetCampaign(ctx context.Context, campaignID string) (campaignapp.Campaign, error) {
	campaignID = strings.TrimSpace(campaignID)
	return readThrough(ctx, c, ScopeCampaign, ScopeCampaign+":"+campaignID, campaignID, func(ctx context.Context) (campaignapp.Campaign, error) {
		return c.next.GetCampaign(ctx, campaignID)
	})
}

// ListDonations serves one campaign's donations.
func (c *CachedGateway) ListDonations(ctx context.Context, campaignID string) ([]campaignapp.Donation, error) {
	campaignID = strings.TrimSpace(campaignID)
	return readThrough(ctx, c, ScopeDonations, ScopeDonations+":"+campaignID, campaignID, func(ctx context.Context) ([]campaignapp.Donation, error) {
		return c.next.ListDonations(ctx, campaignID)
	})
}

// CreateCampaign passes through and drops cached listings on success.
func (c *CachedGateway) CreateCampaign(ctx context.Context, input campaignapp.CreateCampaignInput) (campaignapp.Campaign, error) {
	created, err := c.next.CreateCampaign(ctx, input)
	if err != nil {
		return created, err
	}
	c.invalidateScope(ctx, ScopeCampaignList)
	return created, nil
}

// MakeDonation passes through and drops the campaign's cached reads and
// every listing, since raised totals changed.
func (c *CachedGateway) MakeDonation(ctx context.Context, campaignID string, input campaignapp.DonationInput) (campaignapp.Donation, error) {
	donation, err := c.next.MakeDonation(ctx, campaignID, input)
	if err != nil {
		return donation, err
	}
	if err := c.store.DeleteCampaignEntries(ctx, strings.TrimSpace(campaignID)); err != nil {
		log.Printf("web cache invalidate failed campaign_id=%s err=%v", campaignID, err)
	}
	c.invalidateScope(ctx, ScopeCampaignList)
	return donation, nil
}

func (c *CachedGateway) invalidateScope(ctx context.Context, scope string) {
	if err := c.store.DeleteScope(ctx, scope); err != nil {
		log.Printf("web cache invalidate failed scope=%s err=%v", scope, err)
	}
}

func readThrough[T any](ctx context.Context, c *CachedGateway, scope, key, campaignID string, load func(context.Context) (T, error)) (T, error) {
	now := c.now()
	entry, found, err := c.store.GetCacheEntry(ctx, key)
	switch {
	case err != nil:
		c.metrics.CountCacheLookup(scope, "error")
		log.Printf("web cache read failed key=%s err=%v", key, err)
	case found && entry.Fresh(now):
		var cached T
		decodeErr := json.Unmarshal(entry.PayloadBytes, &cached)
		if decodeErr == nil {
			c.metrics.CountCacheLookup(scope, "hit")
			return cached, nil
		}
		c.metrics.CountCacheLookup(scope, "error")
		log.Printf("web cache decode failed key=%s err=%v", key, decodeErr)
	default:
		c.metrics.CountCacheLookup(scope, "miss")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("web cache encode failed key=%s err=%v", key, err)
		return value, nil
	}
	if err := c.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        scope,
		CampaignID:   campaignID,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(c.ttl),
	}); err != nil {
		log.Printf("web cache write failed key=%s err=%v", key, err)
	}
	return value, nil
}

var _ campaignapp.CampaignGateway = (*CachedGateway)(nil)
