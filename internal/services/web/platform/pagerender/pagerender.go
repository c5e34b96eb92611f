// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	webi18n "github.com/louisbranch/crowdfund/internal/services/web/i18n"
	flashnotice "github.com/louisbranch/crowdfund/internal/services/web/platform/flash"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the app layout, or only the main region for HTMX.
//
// The body is buffered so a render failure never leaves a half-written 200.
func WritePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, tag := webi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = webtemplates.MainContent()
	} else {
		component = webtemplates.Layout(pageContext(w, r, policy, page.Title, loc, tag))
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func pageContext(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, title string, loc *message.Printer, tag language.Tag) webtemplates.PageContext {
	path, query := "", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	options := webi18n.LanguageOptions(tag, path, query, loc)
	languages := make([]webtemplates.LanguageOption, 0, len(options))
	for _, option := range options {
		languages = append(languages, webtemplates.LanguageOption{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return webtemplates.PageContext{
		Title:       title,
		Lang:        tag.String(),
		Loc:         loc,
		HomeURL:     routepath.Campaigns,
		CreateURL:   routepath.CampaignsNew,
		Languages:   languages,
		Toast:       resolveFlashToast(w, r, policy, loc),
		CurrentPath: path,
	}
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc *message.Printer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(loc.Sprintf(notice.Key))
	if text == "" {
		return nil
	}
	return &webtemplates.Toast{Kind: string(notice.Kind), Message: text}
}
