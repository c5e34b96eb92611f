package campaigns

import (
	"net/http"
	"time"

	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, submitLimit int) {
	if mux == nil {
		return
	}
	limited := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, httpx.RateLimitByIP(submitLimit, time.Minute))
	}

	mux.HandleFunc(http.MethodGet+" "+routepath.Campaigns, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignsPrefix+"{$}", h.handleIndex)

	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignsNew, h.handleNewCampaign)
	mux.Handle(http.MethodPost+" "+routepath.CampaignsNew, limited(h.handleCreateCampaign))

	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignPattern, h.withCampaignID(h.handleDetail))
	mux.Handle(http.MethodPost+" "+routepath.CampaignDonationsPattern, limited(h.withCampaignID(h.handleDonate)))
}
