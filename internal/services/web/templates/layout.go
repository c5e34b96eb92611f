package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets 4xx responses swap so re-rendered forms reach the page.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"4..","swap":true,"error":false},{"code":"5..","swap":true,"error":true}]}`

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Toast is a one-time notice shown above page content.
type Toast struct {
	Kind    string
	Message string
}

// PageContext carries the chrome state for a full page render.
type PageContext struct {
	Title       string
	Lang        string
	Loc         Localizer
	HomeURL     string
	CreateURL   string
	Languages   []LanguageOption
	Toast       *Toast
	CurrentPath string
}

// Layout renders the full document around the children in ctx.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", page.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="htmx-config"`)
		h.attr("content", htmxConfig)
		h.raw(">")
		h.element("title", T(page.Loc, "title.page", page.Title))
		h.raw(`<script defer`)
		h.attr("src", htmxScript)
		h.raw("></script></head><body>")

		h.raw(`<header class="app-header"><nav>`)
		h.element("a", T(page.Loc, "app.name"), "href", page.HomeURL, "class", "brand")
		h.element("a", T(page.Loc, "nav.campaigns"), "href", page.HomeURL)
		h.element("a", T(page.Loc, "nav.create"), "href", page.CreateURL, "data-testid", "nav-create")
		if len(page.Languages) > 0 {
			h.raw(`<ul class="languages"`)
			h.attr("aria-label", T(page.Loc, "nav.language"))
			h.raw(">")
			for _, option := range page.Languages {
				h.raw("<li>")
				h.raw("<a")
				h.attr("href", option.URL)
				h.attr("hreflang", option.Tag)
				h.attrIf(option.Active, "aria-current", "true")
				h.raw(">")
				h.text(option.Label)
				h.raw("</a></li>")
			}
			h.raw("</ul>")
		}
		h.raw("</nav></header>")

		if page.Toast != nil && page.Toast.Message != "" {
			h.element("div", page.Toast.Message,
				"class", "toast toast-"+page.Toast.Kind,
				"role", "status",
				"data-testid", "flash")
		}

		h.render(ctx, MainContent())
		h.raw("</body></html>")
		return h.err
	})
}

// MainContent renders only the main region; HTMX requests receive this.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<main id="main">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		return h.err
	})
}
