// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                     = "/"
	Health                   = "/up"
	Metrics                  = "/metrics"
	Campaigns                = "/campaigns"
	CampaignsPrefix          = "/campaigns/"
	CampaignsNew             = "/campaigns/new"
	CampaignPattern          = CampaignsPrefix + "{campaignID}"
	CampaignDonationsPattern = CampaignsPrefix + "{campaignID}/donations"

	CategoryQueryKey = "category"
	StatusQueryKey   = "status"
)

// Campaign returns the campaign details route.
func Campaign(campaignID string) string {
	return CampaignsPrefix + escapeSegment(campaignID)
}

// CampaignDonations returns the donation submission route for a campaign.
func CampaignDonations(campaignID string) string {
	return Campaign(campaignID) + "/donations"
}

// CampaignsFiltered returns the listing route with optional filters applied.
func CampaignsFiltered(category string, status string) string {
	query := url.Values{}
	if category = strings.TrimSpace(category); category != "" {
		query.Set(CategoryQueryKey, category)
	}
	if status = strings.TrimSpace(status); status != "" {
		query.Set(StatusQueryKey, status)
	}
	if len(query) == 0 {
		return Campaigns
	}
	return Campaigns + "?" + query.Encode()
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
