package public

import (
	"net/http"

	"github.com/louisbranch/crowdfund/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	// Resolving the localizer persists a ?lang= choice before leaving the root.
	h.PageLocalizer(w, r)
	http.Redirect(w, r, routepath.Campaigns, http.StatusFound)
}
