package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser title for an app error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, "error.title."+errorVariant(statusCode))
}

// AppErrorState renders the app error body for statusCode.
func AppErrorState(statusCode int, backURL string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		variant := errorVariant(statusCode)
		h := newHTMLWriter(w)
		h.raw(`<section class="app-error"`)
		h.attr("data-status", itoa(statusCode))
		h.raw(">")
		h.element("h1", T(loc, "error.title."+variant))
		h.element("p", T(loc, "error.message."+variant))
		h.element("a", T(loc, "error.back"), "href", backURL)
		h.raw("</section>")
		return h.err
	})
}

func errorVariant(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return "unavailable"
	default:
		return "internal"
	}
}
