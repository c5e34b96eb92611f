package campaigns

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
)

func TestRegisterRoutesNilMuxIsNoop(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{}, 0)
}

func TestRoutesRejectUnsupportedMethods(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, &gatewayStub{campaign: activeCampaign()})
	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/campaigns/7"},
		{method: http.MethodDelete, path: "/campaigns/new"},
		{method: http.MethodPut, path: "/campaigns/7/donations"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestSubmitRoutesAreRateLimited(t *testing.T) {
	t.Parallel()

	m := New(Config{Gateway: &gatewayStub{campaign: activeCampaign()}, Base: modulehandler.NewTestBase(), SubmitRateLimit: 1})
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	var last int
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/campaigns/7/donations", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, req)
		last = rr.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("second submit status = %d, want %d", last, http.StatusTooManyRequests)
	}
}
