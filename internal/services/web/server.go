package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/crowdfund/internal/platform/timeouts"
	webapp "github.com/louisbranch/crowdfund/internal/services/web/app"
	"github.com/louisbranch/crowdfund/internal/services/web/integration/cache"
	"github.com/louisbranch/crowdfund/internal/services/web/modules"
	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/gateway"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/observability"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	websqlite "github.com/louisbranch/crowdfund/internal/services/web/storage/sqlite"
)

// DefaultCachePurgeInterval is how often expired cache rows are removed.
const DefaultCachePurgeInterval = 5 * time.Minute

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	APITimeout time.Duration
	// CacheDBPath enables the SQLite read-through cache when set.
	CacheDBPath        string
	CacheTTL           time.Duration
	CachePurgeInterval time.Duration
	FormTTL            time.Duration

	TrustForwardedProto bool
	SubmitRateLimit     int

	// Gateway replaces the HTTP API client, mainly for tests.
	Gateway campaignapp.CampaignGateway
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	store         *websqlite.Store
	purgeInterval time.Duration
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(deps modules.Dependencies) (http.Handler, error) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	registered := modules.Default(deps)
	rootMux, err := webapp.Compose(webapp.ComposeInput{
		Modules: registered,
		Routes: map[string]http.Handler{
			routepath.Health:  webapp.HealthHandler(registered),
			routepath.Metrics: deps.Metrics.Handler(),
		},
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
		deps.Metrics.Middleware(),
		requestmeta.RequireSameOrigin(deps.Policy),
	), nil
}

// NewServer validates config, opens the optional cache and constructs a
// web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}

	campaignGateway := cfg.Gateway
	if campaignGateway == nil {
		httpGateway, err := gateway.NewHTTPGateway(gateway.Config{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.APITimeout,
			Metrics: m,
		})
		if err != nil {
			return nil, fmt.Errorf("init campaign gateway: %w", err)
		}
		campaignGateway = httpGateway
	}

	store, err := cache.OpenStore(ctx, cfg.CacheDBPath)
	if err != nil {
		return nil, err
	}
	if store != nil {
		campaignGateway = gateway.NewCachedGateway(campaignGateway, store, gateway.CacheOptions{
			TTL:     cfg.CacheTTL,
			Metrics: m,
		})
	}

	handler, err := NewHandler(modules.Dependencies{
		Gateway:         campaignGateway,
		Metrics:         m,
		Policy:          requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		FormTTL:         cfg.FormTTL,
		Now:             cfg.Now,
		SubmitRateLimit: cfg.SubmitRateLimit,
	})
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	purgeInterval := cfg.CachePurgeInterval
	if purgeInterval <= 0 {
		purgeInterval = DefaultCachePurgeInterval
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
		store:         store,
		purgeInterval: purgeInterval,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	if s.store != nil {
		purgeCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go cache.RunPurger(purgeCtx, s.store, s.purgeInterval)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close web cache store: %v", err)
		}
		s.store = nil
	}
}
