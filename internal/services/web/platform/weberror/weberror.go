// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/crowdfund/internal/services/web/i18n"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/pagerender"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized app-shell error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, policy, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, routepath.Campaigns, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError logs err and writes the matching error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	path := "-"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	log.Printf("web request failed path=%s status=%d kind=%s request_id=%s err=%v",
		path, statusCode, apperrors.KindOf(err), httpx.RequestIDFrom(r), err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, policy)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
