package campaigns

import (
	"net/http"
	"strings"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
)

type handlers struct {
	modulehandler.Base
	service campaignapp.Service
	metrics *metrics.Metrics
}

func newHandlers(service campaignapp.Service, base modulehandler.Base, m *metrics.Metrics) handlers {
	return handlers{Base: base, service: service, metrics: m}
}

// withCampaignID extracts the campaign path value and rejects blank ids.
func (h handlers) withCampaignID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := strings.TrimSpace(r.PathValue("campaignID"))
		if campaignID == "" {
			h.WriteNotFound(w, r)
			return
		}
		fn(w, r, campaignID)
	}
}
