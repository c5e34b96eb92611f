package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/crowdfund/internal/services/web/modules"
	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
)

type gatewayStub struct {
	mu          sync.Mutex
	createCalls int
	listCalls   int
}

func (g *gatewayStub) ListCampaigns(context.Context, campaignapp.CampaignFilter) ([]campaignapp.Campaign, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	return []campaignapp.Campaign{{
		ID:            "1",
		Title:         "Library roof",
		GoalAmount:    5000_00,
		CurrentAmount: 100_00,
		Deadline:      "2026-12-01",
		Category:      "Community",
		CreatorName:   "Ada",
		Status:        campaignapp.StatusActive,
	}}, nil
}

func (g *gatewayStub) GetCampaign(_ context.Context, id string) (campaignapp.Campaign, error) {
	return campaignapp.Campaign{ID: id, Title: "Library roof", Status: campaignapp.StatusActive}, nil
}

func (g *gatewayStub) ListDonations(context.Context, string) ([]campaignapp.Donation, error) {
	return nil, nil
}

func (g *gatewayStub) CreateCampaign(context.Context, campaignapp.CreateCampaignInput) (campaignapp.Campaign, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	return campaignapp.Campaign{ID: "2"}, nil
}

func (g *gatewayStub) MakeDonation(context.Context, string, campaignapp.DonationInput) (campaignapp.Donation, error) {
	return campaignapp.Donation{ID: "d-1"}, nil
}

func newTestHandler(t *testing.T, gw campaignapp.CampaignGateway) http.Handler {
	t.Helper()

	deps := modules.Dependencies{Metrics: metrics.New()}
	if gw != nil {
		deps.Gateway = gw
	}
	handler, err := NewHandler(deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  ", Gateway: &gatewayStub{}}); err == nil {
		t.Fatalf("NewServer() error = nil, want missing address error")
	}
}

func TestNewServerRejectsInvalidAPIBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "ftp://api"})
	if err == nil {
		t.Fatalf("NewServer() error = nil, want base url error")
	}
	if !strings.Contains(err.Error(), "campaign gateway") {
		t.Fatalf("NewServer() error = %v", err)
	}
}

func TestNewHandlerServesHealthAndMetrics(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &gatewayStub{})

	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /up status = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = serve(handler, httptest.NewRequest(http.MethodGet, "/campaigns", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /campaigns status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Library roof") {
		t.Fatalf("campaign listing missing card")
	}

	rr = serve(handler, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "crowdfund_web_http_request_duration_seconds") {
		t.Fatalf("metrics output missing request histogram")
	}
}

func TestNewHandlerReportsDegradedWithoutGateway(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, nil)
	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /up status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestNewHandlerRedirectsRootAndTagsRequests(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &gatewayStub{})
	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("GET / status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/campaigns" {
		t.Fatalf("Location = %q, want /campaigns", got)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}

	rr = serve(handler, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("GET /nowhere status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestNewHandlerRejectsCrossOriginSubmissions(t *testing.T) {
	t.Parallel()

	gw := &gatewayStub{}
	handler := newTestHandler(t, gw)
	form := url.Values{"title": {"Library roof"}}

	req := httptest.NewRequest(http.MethodPost, "/campaigns/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://attacker.example")
	rr := serve(handler, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin POST status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodPost, "/campaigns/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	rr = serve(handler, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("same-origin POST status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if gw.createCalls != 0 {
		t.Fatalf("create calls = %d, want 0 for an invalid form", gw.createCalls)
	}
}

func TestServerWithCacheServesUntilCanceled(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "cache", "web.db")
	server, err := NewServer(context.Background(), Config{
		HTTPAddr:           "127.0.0.1:0",
		CacheDBPath:        dbPath,
		CachePurgeInterval: 10 * time.Millisecond,
		Gateway:            &gatewayStub{},
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(server.Close)
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("cache database not created: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ListenAndServe() did not return after cancel")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("ListenAndServe() error = nil, want nil server error")
	}
	server.Close()
}
