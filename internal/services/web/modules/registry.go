package modules

import (
	"github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns"
	"github.com/louisbranch/crowdfund/internal/services/web/modules/public"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
)

// Default returns the web modules in mount order.
func Default(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.Policy)
	return []Module{
		public.New(base),
		campaigns.New(campaigns.Config{
			Gateway:         deps.Gateway,
			Base:            base,
			Metrics:         deps.Metrics,
			FormTTL:         deps.FormTTL,
			Now:             deps.Now,
			SubmitRateLimit: deps.SubmitRateLimit,
		}),
	}
}
