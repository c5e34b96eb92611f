package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/metrics"
)

func newTestGateway(t *testing.T, handler http.Handler) *HTTPGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	gateway, err := NewHTTPGateway(Config{BaseURL: server.URL, Timeout: 2 * time.Second, Metrics: metrics.New()})
	if err != nil {
		t.Fatalf("NewHTTPGateway() error = %v", err)
	}
	return gateway
}

func TestNewHTTPGatewayValidatesBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "ftp://example.com", "://bad"} {
		if _, err := NewHTTPGateway(Config{BaseURL: raw}); err == nil {
			t.Fatalf("NewHTTPGateway(%q) error = nil, want error", raw)
		}
	}
}

func TestListCampaignsSendsFiltersAndDecodesNumbers(t *testing.T) {
	t.Parallel()

	var gotQuery string
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/campaigns" {
			t.Errorf("request = %s %s, want GET /api/campaigns", r.Method, r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":12,"title":"Community garden","goalAmount":1500.00,"currentAmount":375.5,"deadline":"2026-06-01","category":"Community","creatorName":"Ada","createdAt":"2026-01-01T10:00:00","status":"ACTIVE"}]`)
	}))

	items, err := gateway.ListCampaigns(context.Background(), campaignapp.CampaignFilter{Category: "Community", Status: campaignapp.StatusActive})
	if err != nil {
		t.Fatalf("ListCampaigns() error = %v", err)
	}
	if gotQuery != "category=Community&status=ACTIVE" {
		t.Fatalf("query = %q, want category and status", gotQuery)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	got := items[0]
	if got.ID != "12" || got.GoalAmount != 1500_00 || got.CurrentAmount != 375_50 || got.Status != campaignapp.StatusActive {
		t.Fatalf("campaign = %+v", got)
	}
}

func TestListCampaignsOmitsEmptyFilters(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	items, err := gateway.ListCampaigns(context.Background(), campaignapp.CampaignFilter{})
	if err != nil {
		t.Fatalf("ListCampaigns() error = %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(items))
	}
}

func TestGetCampaignMapsNotFound(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Campaign not found with id: 9"}`)
	}))
	_, err := gateway.GetCampaign(context.Background(), "9")
	if got := apperrors.KindOf(err); got != apperrors.KindNotFound {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindNotFound)
	}
	if got := campaignapp.APIMessage(err); got != "Campaign not found with id: 9" {
		t.Fatalf("APIMessage(err) = %q", got)
	}
}

func TestGetCampaignEscapesID(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/campaigns/a%2Fb" {
			t.Errorf("path = %q, want escaped id", r.URL.EscapedPath())
		}
		_, _ = io.WriteString(w, `{"id":"a/b","status":"ACTIVE"}`)
	}))
	if _, err := gateway.GetCampaign(context.Background(), "a/b"); err != nil {
		t.Fatalf("GetCampaign() error = %v", err)
	}
}

func TestCreateCampaignPostsJSONAndSurfacesAPIMessage(t *testing.T) {
	t.Parallel()

	var body map[string]any
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/campaigns" {
			t.Errorf("request = %s %s, want POST /api/campaigns", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"Title already exists."}`)
	}))

	_, err := gateway.CreateCampaign(context.Background(), campaignapp.CreateCampaignInput{
		Title:       "Community garden",
		Description: "Raised beds and tools for the east side lot.",
		GoalAmount:  1500_00,
		Deadline:    "2026-06-01",
		Category:    "Community",
		CreatorName: "Ada",
	})
	if got := campaignapp.APIMessage(err); got != "Title already exists." {
		t.Fatalf("APIMessage(err) = %q, want API message", got)
	}
	if got := apperrors.KindOf(err); got != apperrors.KindInvalidInput {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindInvalidInput)
	}
	if body["goalAmount"] != 1500.0 || body["deadline"] != "2026-06-01" || body["creatorName"] != "Ada" {
		t.Fatalf("request body = %v", body)
	}
}

func TestCreateCampaignReturnsCreatedID(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":101,"title":"Community garden","status":"ACTIVE"}`)
	}))
	created, err := gateway.CreateCampaign(context.Background(), campaignapp.CreateCampaignInput{Title: "Community garden"})
	if err != nil {
		t.Fatalf("CreateCampaign() error = %v", err)
	}
	if created.ID != "101" {
		t.Fatalf("created.ID = %q, want 101", created.ID)
	}
}

func TestMakeDonationPostsToCampaign(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/campaigns/5/donations" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		payload, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(payload), `"amount":25`) || strings.Contains(string(payload), `"message"`) {
			t.Errorf("payload = %s", payload)
		}
		_, _ = io.WriteString(w, `{"id":"d-1","amount":25,"donorName":"Grace","donatedAt":"2026-03-10T12:00:00"}`)
	}))
	donation, err := gateway.MakeDonation(context.Background(), "5", campaignapp.DonationInput{Amount: 25_00, DonorName: "Grace"})
	if err != nil {
		t.Fatalf("MakeDonation() error = %v", err)
	}
	if donation.ID != "d-1" || donation.Amount != 25_00 {
		t.Fatalf("donation = %+v", donation)
	}
}

func TestServerErrorsTripBreakerButClientErrorsDoNot(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var status atomic.Int32
	status.Store(http.StatusBadRequest)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(int(status.Load()))
	}))
	t.Cleanup(server.Close)
	gateway, err := NewHTTPGateway(Config{
		BaseURL: server.URL,
		Breaker: BreakerConfig{MinRequests: 3, FailureRatio: 0.5, OpenTimeout: time.Hour},
	})
	if err != nil {
		t.Fatalf("NewHTTPGateway() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		_, _ = gateway.GetCampaign(context.Background(), "1")
	}
	if got := calls.Load(); got != 5 {
		t.Fatalf("calls after 4xx = %d, want 5 (breaker stays closed)", got)
	}

	status.Store(http.StatusServiceUnavailable)
	for i := 0; i < 10; i++ {
		_, _ = gateway.GetCampaign(context.Background(), "1")
	}
	before := calls.Load()
	_, err = gateway.GetCampaign(context.Background(), "1")
	if calls.Load() != before {
		t.Fatalf("breaker let a call through while open")
	}
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindUnavailable)
	}
}

func TestTransportFailureIsUnavailableWithoutMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	gateway, err := NewHTTPGateway(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewHTTPGateway() error = %v", err)
	}
	_, err = gateway.ListCampaigns(context.Background(), campaignapp.CampaignFilter{})
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindUnavailable)
	}
	if got := campaignapp.APIMessage(err); got != "" {
		t.Fatalf("APIMessage(err) = %q, want empty", got)
	}
}

func TestCountsAsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: true},
		{err: &campaignapp.APIError{Status: http.StatusConflict}, want: true},
		{err: &campaignapp.APIError{Status: http.StatusBadGateway}, want: false},
		{err: context.Canceled, want: true},
		{err: errors.New("connection reset"), want: false},
	}
	for _, tc := range tests {
		if got := countsAsSuccess(tc.err); got != tc.want {
			t.Fatalf("countsAsSuccess(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`{"message":" Cannot donate. Campaign is not ACTIVE. "}`: "Cannot donate. Campaign is not ACTIVE.",
		`{"error":"Bad Request"}`:                                "",
		`<html>oops</html>`:                                      "",
		``:                                                       "",
	}
	for raw, want := range tests {
		if got := decodeErrorMessage([]byte(raw)); got != want {
			t.Fatalf("decodeErrorMessage(%q) = %q, want %q", raw, got, want)
		}
	}
}
