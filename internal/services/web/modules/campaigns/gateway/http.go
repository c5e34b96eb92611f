// Package gateway adapts the remote campaign REST API to the campaigns app.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/crowdfund/internal/platform/timeouts"
	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
)

const (
	tracerName      = "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/gateway"
	breakerName     = "campaign-api"
	maxResponseBody = 4 << 20
)

// Config configures the campaign API client.
type Config struct {
	// BaseURL is the API origin, e.g. http://localhost:8080. Paths under
	// /api/campaigns are appended to it.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
	Tracer     trace.Tracer
	Breaker    BreakerConfig
}

// BreakerConfig tunes the circuit breaker guarding API calls.
type BreakerConfig struct {
	// MinRequests is the number of calls seen before the failure ratio counts.
	MinRequests  uint32
	FailureRatio float64
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	Interval    time.Duration
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.MinRequests == 0 {
		c.MinRequests = 5
	}
	if c.FailureRatio <= 0 || c.FailureRatio > 1 {
		c.FailureRatio = 0.6
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	return c
}

// HTTPGateway calls the campaign REST API.
type HTTPGateway struct {
	baseURL *url.URL
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[apiResponse]
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

type apiResponse struct {
	status int
	body   []byte
}

// NewHTTPGateway builds the production campaign gateway.
func NewHTTPGateway(cfg Config) (*HTTPGateway, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("campaign api base url is required")
	}
	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse campaign api base url: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("campaign api base url must be http or https: %q", raw)
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = timeouts.APIRequest
		}
		client = &http.Client{Timeout: timeout}
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	breaker := cfg.Breaker.withDefaults()
	return &HTTPGateway{
		baseURL: baseURL,
		client:  client,
		tracer:  tracer,
		metrics: cfg.Metrics,
		breaker: gobreaker.NewCircuitBreaker[apiResponse](gobreaker.Settings{
			Name:        breakerName,
			MaxRequests: 1,
			Interval:    breaker.Interval,
			Timeout:     breaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < breaker.MinRequests {
					return false
				}
				return float64(counts.TotalFailures)/float64(counts.Requests) >= breaker.FailureRatio
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("circuit breaker state changed name=%s from=%s to=%s", name, from, to)
			},
			IsSuccessful: countsAsSuccess,
		}),
	}, nil
}

// countsAsSuccess keeps client-side rejections and caller cancellations
// from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *campaignapp.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status < http.StatusInternalServerError
	}
	return errors.Is(err, context.Canceled)
}

// ListCampaigns loads campaigns, optionally filtered by category and status.
func (g *HTTPGateway) ListCampaigns(ctx context.Context, filter campaignapp.CampaignFilter) ([]campaignapp.Campaign, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	var wire []campaignWire
	if err := g.do(ctx, "list_campaigns", http.MethodGet, g.endpoint(query, "api", "campaigns"), nil, &wire); err != nil {
		return nil, err
	}
	items := make([]campaignapp.Campaign, 0, len(wire))
	for _, item := range wire {
		items = append(items, item.domain())
	}
	return items, nil
}

// GetCampaign loads one campaign by id.
func (g *HTTPGateway) GetCampaign(ctx context.Context, campaignID string) (campaignapp.Campaign, error) {
	var wire campaignWire
	if err := g.do(ctx, "get_campaign", http.MethodGet, g.endpoint(nil, "api", "campaigns", campaignID), nil, &wire); err != nil {
		return campaignapp.Campaign{}, err
	}
	return wire.domain(), nil
}

// ListDonations loads the donations recorded against a campaign.
func (g *HTTPGateway) ListDonations(ctx context.Context, campaignID string) ([]campaignapp.Donation, error) {
	var wire []donationWire
	if err := g.do(ctx, "list_donations", http.MethodGet, g.endpoint(nil, "api", "campaigns", campaignID, "donations"), nil, &wire); err != nil {
		return nil, err
	}
	items := make([]campaignapp.Donation, 0, len(wire))
	for _, item := range wire {
		items = append(items, item.domain())
	}
	return items, nil
}

// CreateCampaign submits a validated campaign.
func (g *HTTPGateway) CreateCampaign(ctx context.Context, input campaignapp.CreateCampaignInput) (campaignapp.Campaign, error) {
	var wire campaignWire
	body := createCampaignRequest{
		Title:       input.Title,
		Description: input.Description,
		GoalAmount:  input.GoalAmount,
		Deadline:    input.Deadline,
		Category:    input.Category,
		CreatorName: input.CreatorName,
	}
	if err := g.do(ctx, "create_campaign", http.MethodPost, g.endpoint(nil, "api", "campaigns"), body, &wire); err != nil {
		return campaignapp.Campaign{}, err
	}
	created := wire.domain()
	if created.ID == "" {
		return campaignapp.Campaign{}, apperrors.Wrap(apperrors.KindUnavailable, "", errors.New("campaign api create response has no id"))
	}
	return created, nil
}

// MakeDonation records a validated donation against a campaign.
func (g *HTTPGateway) MakeDonation(ctx context.Context, campaignID string, input campaignapp.DonationInput) (campaignapp.Donation, error) {
	var wire donationWire
	body := donationRequest{Amount: input.Amount, DonorName: input.DonorName, Message: input.Message}
	if err := g.do(ctx, "make_donation", http.MethodPost, g.endpoint(nil, "api", "campaigns", campaignID, "donations"), body, &wire); err != nil {
		return campaignapp.Donation{}, err
	}
	return wire.domain(), nil
}

func (g *HTTPGateway) endpoint(query url.Values, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(strings.TrimSpace(segment)))
	}
	u := g.baseURL.JoinPath(escaped...)
	u.RawQuery = query.Encode()
	u.Fragment = ""
	return u.String()
}

// do runs one API call through the breaker, traced and timed, and decodes
// a 2xx JSON body into out.
func (g *HTTPGateway) do(ctx context.Context, operation, method, endpoint string, body any, out any) error {
	ctx, span := g.tracer.Start(ctx, "campaignapi."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", endpoint),
		),
	)
	defer span.End()

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "encode request")
			return apperrors.Wrap(apperrors.KindUnknown, "", fmt.Errorf("encode %s request: %w", operation, err))
		}
		payload = encoded
	}

	started := time.Now()
	resp, err := g.breaker.Execute(func() (apiResponse, error) {
		return g.roundTrip(ctx, method, endpoint, payload)
	})
	g.metrics.ObserveAPICall(operation, outcomeOf(err), time.Since(started))
	if resp.status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcomeOf(err))
		return translateError(operation, err)
	}

	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode response")
		return apperrors.Wrap(apperrors.KindUnavailable, "", fmt.Errorf("decode %s response: %w", operation, err))
	}
	return nil
}

func (g *HTTPGateway) roundTrip(ctx context.Context, method, endpoint string, payload []byte) (apiResponse, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apiResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	res, err := g.client.Do(req)
	if err != nil {
		return apiResponse{}, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		return apiResponse{status: res.StatusCode}, fmt.Errorf("read response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apiResponse{status: res.StatusCode}, &campaignapp.APIError{
			Status:  res.StatusCode,
			Message: decodeErrorMessage(data),
		}
	}
	return apiResponse{status: res.StatusCode, body: data}, nil
}

func translateError(operation string, err error) error {
	var apiErr *campaignapp.APIError
	if errors.As(err, &apiErr) {
		return campaignapp.NewAPIError(apiErr.Status, apiErr.Message)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return apperrors.Wrap(apperrors.KindUnavailable, "", fmt.Errorf("campaign api %s rejected: %w", operation, err))
	}
	return apperrors.Wrap(apperrors.KindUnavailable, "", fmt.Errorf("campaign api %s: %w", operation, err))
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *campaignapp.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		return "client_error"
	case errors.As(err, &apiErr):
		return "server_error"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	default:
		return "transport_error"
	}
}

var _ campaignapp.CampaignGateway = (*HTTPGateway)(nil)
