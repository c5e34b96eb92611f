// Package modulehandler provides a composable base for web module handlers.
//
// Modules share request-scoped infrastructure for localization, page
// rendering, flash notices, and error handling. This package extracts that
// scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	webi18n "github.com/louisbranch/crowdfund/internal/services/web/i18n"
	flashnotice "github.com/louisbranch/crowdfund/internal/services/web/platform/flash"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/pagerender"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

// Base carries the request policy shared by module handlers. Embed it in
// module handler structs.
type Base struct {
	policy requestmeta.SchemePolicy
}

// NewBase builds a handler base around the request scheme policy.
func NewBase(policy requestmeta.SchemePolicy) Base {
	return Base{policy: policy}
}

// NewTestBase builds a handler base with the zero scheme policy.
func NewTestBase() Base {
	return Base{}
}

// Policy returns the scheme policy used for cookies and origin checks.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.policy
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, language.Tag) {
	return webi18n.ResolveLocalizer(w, r)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.policy)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.policy)
}

// WritePage renders a full module page (HTMX-aware) with the given title and
// content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WritePage(w, r, b.policy, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// RedirectWithNotice stores a success notice for the next page and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, noticeKey string) {
	if noticeKey != "" {
		flashnotice.Write(w, r, flashnotice.Success(noticeKey), b.policy)
	}
	httpx.WriteRedirect(w, r, location)
}
