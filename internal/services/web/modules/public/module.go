// Package public owns the site root: it sends visitors to the campaign
// listing and renders the app not-found page for unknown paths.
package public

import (
	"net/http"

	module "github.com/louisbranch/crowdfund/internal/services/web/module"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
)

// Module provides root routes.
type Module struct {
	base modulehandler.Base
}

// New returns the public root module.
func New(base modulehandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires root route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
