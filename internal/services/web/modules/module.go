// Package modules defines web module registry helpers.
package modules

import (
	"time"

	module "github.com/louisbranch/crowdfund/internal/services/web/module"
	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what composition hands to the module registry. The
// gateway is built by composition so modules never construct API clients.
type Dependencies struct {
	Gateway campaignapp.CampaignGateway
	Metrics *metrics.Metrics
	Policy  requestmeta.SchemePolicy

	FormTTL         time.Duration
	Now             func() time.Time
	SubmitRateLimit int
}
