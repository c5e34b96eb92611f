package app

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/crowdfund/internal/services/web/module"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: okHandler("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: okHandler("two")}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if !strings.Contains(err.Error(), `"one"`) {
		t.Fatalf("error = %q, want owning module named", err)
	}
}

func TestComposeRejectsRouteShadowedByModuleAlias(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "up", mount: module.Mount{Prefix: "/up/", Handler: okHandler("module")}}},
		Routes:  map[string]http.Handler{"/up": okHandler("route")},
	})
	if err == nil {
		t.Fatalf("expected duplicate path error")
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "campaigns/"},
		{name: "missing trailing slash", prefix: "/campaigns"},
		{name: "contains surrounding whitespace", prefix: "/campaigns/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: okHandler("")}}},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleAndMountFailures(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Compose() error = %v, want mount error", err)
	}
	_, err = Compose(ComposeInput{Modules: []module.Module{stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x/"}}}})
	if err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestComposeMountsSlashlessAlias(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}},
			stubModule{id: "campaigns", mount: module.Mount{Prefix: "/campaigns/", Handler: okHandler("campaigns")}},
		},
		Routes: map[string]http.Handler{"/up": okHandler("up")},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := map[string]string{
		"/campaigns":   "campaigns",
		"/campaigns/":  "campaigns",
		"/campaigns/7": "campaigns",
		"/up":          "up",
		"/elsewhere":   "root",
	}
	for path, want := range tests {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if got := rec.Body.String(); got != want {
			t.Fatalf("GET %s body = %q, want %q", path, got, want)
		}
	}
}

func TestHealthHandlerReflectsModules(t *testing.T) {
	t.Parallel()

	healthy := HealthHandler([]module.Module{
		stubModule{id: "plain"},
		healthStub{stubModule: stubModule{id: "a"}, healthy: true},
	})
	rec := httptest.NewRecorder()
	healthy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	degraded := HealthHandler([]module.Module{
		healthStub{stubModule: stubModule{id: "a"}, healthy: true},
		healthStub{stubModule: stubModule{id: "b"}, healthy: false},
	})
	rec = httptest.NewRecorder()
	degraded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "degraded") {
		t.Fatalf("body = %q, want degraded", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	degraded.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/up", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}

type healthStub struct {
	stubModule
	healthy bool
}

func (h healthStub) Healthy() bool {
	return h.healthy
}
