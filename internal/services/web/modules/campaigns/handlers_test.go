package campaigns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/net/html"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	flashnotice "github.com/louisbranch/crowdfund/internal/services/web/platform/flash"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
)

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

type gatewayStub struct {
	mu sync.Mutex

	items      []campaignapp.Campaign
	listErr    error
	lastFilter campaignapp.CampaignFilter

	campaign  campaignapp.Campaign
	getErr    error
	donations []campaignapp.Donation

	created     campaignapp.Campaign
	createErr   error
	createCalls int
	entered     chan struct{}
	release     chan struct{}

	donateErr   error
	donateCalls int
	lastDonate  campaignapp.DonationInput
}

func (g *gatewayStub) ListCampaigns(_ context.Context, filter campaignapp.CampaignFilter) ([]campaignapp.Campaign, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastFilter = filter
	return g.items, g.listErr
}

func (g *gatewayStub) GetCampaign(context.Context, string) (campaignapp.Campaign, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.campaign, g.getErr
}

func (g *gatewayStub) ListDonations(context.Context, string) ([]campaignapp.Donation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.donations, nil
}

func (g *gatewayStub) CreateCampaign(context.Context, campaignapp.CreateCampaignInput) (campaignapp.Campaign, error) {
	g.mu.Lock()
	g.createCalls++
	entered, release := g.entered, g.release
	g.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.created, g.createErr
}

func (g *gatewayStub) MakeDonation(_ context.Context, _ string, input campaignapp.DonationInput) (campaignapp.Donation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.donateCalls++
	g.lastDonate = input
	if g.donateErr != nil {
		return campaignapp.Donation{}, g.donateErr
	}
	return campaignapp.Donation{ID: "d-1", Amount: input.Amount, DonorName: input.DonorName}, nil
}

func (g *gatewayStub) creates() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.createCalls
}

func activeCampaign() campaignapp.Campaign {
	return campaignapp.Campaign{
		ID:            "7",
		Title:         "Library roof",
		Description:   "Fix the leaking roof of the town library.",
		GoalAmount:    5000_00,
		CurrentAmount: 1250_00,
		Deadline:      "2026-06-01",
		Category:      "Community",
		CreatorName:   "Ada",
		CreatedAt:     "2026-01-02T09:00:00",
		Status:        campaignapp.StatusActive,
	}
}

func mountHandler(t *testing.T, gateway campaignapp.CampaignGateway) http.Handler {
	t.Helper()
	m := New(Config{
		Gateway: gateway,
		Base:    modulehandler.NewTestBase(),
		Now:     func() time.Time { return testNow },
	})
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func postForm(handler http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func parseBody(t *testing.T, rr *httptest.ResponseRecorder) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func findNode(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, match); found != nil {
			return found
		}
	}
	return nil
}

func byTestID(root *html.Node, testID string) *html.Node {
	return findNode(root, func(n *html.Node) bool { return attrOf(n, "data-testid") == testID })
}

func attrOf(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttrOf(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func hasFlashCookie(rr *httptest.ResponseRecorder) bool {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.Value != "" {
			return true
		}
	}
	return false
}

func TestModuleIDAndHealth(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "campaigns" {
		t.Fatalf("ID() = %q, want campaigns", got)
	}
	if New(Config{}).Healthy() {
		t.Fatalf("Healthy() = true without gateway")
	}
	if !New(Config{Gateway: &gatewayStub{}}).Healthy() {
		t.Fatalf("Healthy() = false with gateway")
	}
	mount, err := New(Config{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/campaigns/" {
		t.Fatalf("Prefix = %q, want /campaigns/", mount.Prefix)
	}
}

func TestDegradedModuleRendersUnavailable(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, nil)
	if rr := get(handler, "/campaigns/7"); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
