// Package campaigns serves the campaign listing, details, creation and
// donation pages.
package campaigns

import (
	"net/http"
	"time"

	"github.com/louisbranch/crowdfund/internal/services/web/module"
	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
)

// Config carries the campaigns module dependencies.
type Config struct {
	Gateway campaignapp.CampaignGateway
	Base    modulehandler.Base
	Metrics *metrics.Metrics
	// FormTTL bounds how long an idle campaign form keeps its submission state.
	FormTTL time.Duration
	Now     func() time.Time
	// SubmitRateLimit caps form posts per client IP per minute; zero disables it.
	SubmitRateLimit int
}

// Module provides campaign routes.
type Module struct {
	cfg Config
}

// New returns a campaigns module. A nil gateway mounts in degraded mode.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "campaigns" }

// Healthy reports whether the campaigns module has an operational gateway.
func (m Module) Healthy() bool {
	return campaignapp.IsGatewayHealthy(m.cfg.Gateway)
}

// Mount wires campaign route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := campaignapp.NewService(m.cfg.Gateway, campaignapp.Options{FormTTL: m.cfg.FormTTL, Now: m.cfg.Now})
	h := newHandlers(svc, m.cfg.Base, m.cfg.Metrics)
	registerRoutes(mux, h, m.cfg.SubmitRateLimit)
	return module.Mount{Prefix: routepath.CampaignsPrefix, Handler: mux}, nil
}
