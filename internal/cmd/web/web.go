// Package web parses web command flags and launches the crowdfunding front end.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/crowdfund/internal/platform/cmd"
	"github.com/louisbranch/crowdfund/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"CROWDFUND_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	APIBaseURL          string        `env:"CROWDFUND_WEB_API_BASE_URL" envDefault:"http://localhost:8080"`
	APITimeout          time.Duration `env:"CROWDFUND_WEB_API_TIMEOUT" envDefault:"5s"`
	CacheDBPath         string        `env:"CROWDFUND_WEB_CACHE_DB_PATH"`
	CacheTTL            time.Duration `env:"CROWDFUND_WEB_CACHE_TTL" envDefault:"30s"`
	CachePurgeInterval  time.Duration `env:"CROWDFUND_WEB_CACHE_PURGE_INTERVAL" envDefault:"5m"`
	FormTTL             time.Duration `env:"CROWDFUND_WEB_FORM_TTL" envDefault:"1h"`
	TrustForwardedProto bool          `env:"CROWDFUND_WEB_TRUST_FORWARDED_PROTO"`
	SubmitRateLimit     int           `env:"CROWDFUND_WEB_SUBMIT_RATE_LIMIT" envDefault:"30"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Campaign REST API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for a single campaign API call")
	fs.StringVar(&cfg.CacheDBPath, "cache-db-path", cfg.CacheDBPath, "SQLite cache path (empty disables caching)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long cached API reads stay fresh")
	fs.DurationVar(&cfg.CachePurgeInterval, "cache-purge-interval", cfg.CachePurgeInterval, "How often expired cache rows are removed")
	fs.DurationVar(&cfg.FormTTL, "form-ttl", cfg.FormTTL, "How long an idle campaign form is kept")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when checking request origin")
	fs.IntVar(&cfg.SubmitRateLimit, "submit-rate-limit", cfg.SubmitRateLimit, "Form submissions allowed per client IP per minute (0 disables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIBaseURL:          cfg.APIBaseURL,
			APITimeout:          cfg.APITimeout,
			CacheDBPath:         cfg.CacheDBPath,
			CacheTTL:            cfg.CacheTTL,
			CachePurgeInterval:  cfg.CachePurgeInterval,
			FormTTL:             cfg.FormTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
			SubmitRateLimit:     cfg.SubmitRateLimit,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
