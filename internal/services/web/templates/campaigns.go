package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// SelectOption is one <option> of a select control.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// CampaignCard is the listing summary of one campaign.
type CampaignCard struct {
	ID       string
	URL      string
	Title    string
	Category string
	// CategoryLabel is the localized category, falling back to Category.
	CategoryLabel string
	Status        string
	StatusLabel   string
	CreatorName   string
	Raised        string
	Goal          string
	Percent       int
	Deadline      string
}

// CampaignListView drives the campaign listing page.
type CampaignListView struct {
	Action     string
	Categories []SelectOption
	Statuses   []SelectOption
	Items      []CampaignCard
	LoadFailed bool
}

// CampaignList renders filters and the campaign cards.
func CampaignList(view CampaignListView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="campaigns">`)
		h.element("h1", T(loc, "campaigns.title"))

		h.raw(`<form id="campaign-filters" method="get"`)
		h.attr("action", view.Action)
		h.attr("hx-get", view.Action)
		h.raw(` hx-trigger="change, submit" hx-target="#campaign-list" hx-select="#campaign-list" hx-swap="outerHTML" hx-push-url="true" hx-indicator="#campaigns-loading">`)
		writeFilterSelect(h, "category-filter", "category", T(loc, "campaigns.filter.category"), T(loc, "campaigns.filter.all"), view.Categories)
		writeFilterSelect(h, "status-filter", "status", T(loc, "campaigns.filter.status"), T(loc, "campaigns.filter.all"), view.Statuses)
		h.element("button", T(loc, "campaigns.filter.apply"), "type", "submit")
		h.raw("</form>")
		h.element("p", T(loc, "campaigns.loading"), "id", "campaigns-loading", "class", "htmx-indicator", "role", "status")

		h.raw(`<div id="campaign-list">`)
		switch {
		case view.LoadFailed:
			h.element("p", T(loc, "campaigns.load_failed"), "class", "error", "role", "alert", "data-testid", "campaigns-error")
		case len(view.Items) == 0:
			h.element("p", T(loc, "campaigns.empty"), "class", "empty", "data-testid", "campaigns-empty")
		default:
			h.raw(`<ul class="campaign-cards">`)
			for _, card := range view.Items {
				writeCampaignCard(h, card, loc)
			}
			h.raw("</ul>")
		}
		h.raw("</div></section>")
		return h.err
	})
}

func writeFilterSelect(h *htmlWriter, id, name, label, allLabel string, options []SelectOption) {
	h.element("label", label, "for", id)
	h.raw("<select")
	h.attr("id", id)
	h.attr("name", name)
	h.attr("data-testid", id)
	h.raw(`><option value="">`)
	h.text(allLabel)
	h.raw("</option>")
	writeOptions(h, options)
	h.raw("</select>")
}

func writeOptions(h *htmlWriter, options []SelectOption) {
	for _, option := range options {
		h.raw("<option")
		h.attr("value", option.Value)
		h.flag("selected", option.Selected)
		h.raw(">")
		h.text(option.Label)
		h.raw("</option>")
	}
}

func writeCampaignCard(h *htmlWriter, card CampaignCard, loc Localizer) {
	h.raw(`<li class="campaign-card"`)
	h.attr("data-testid", "campaign-card-"+card.ID)
	h.raw(">")
	h.raw("<h2><a")
	h.attr("href", card.URL)
	h.raw(">")
	h.text(card.Title)
	h.raw("</a></h2>")
	writeCampaignSummary(h, card, loc)
	h.raw("</li>")
}

func writeCampaignSummary(h *htmlWriter, card CampaignCard, loc Localizer) {
	h.raw(`<p class="campaign-meta">`)
	h.element("span", card.CategoryLabel, "class", "category")
	h.raw(" ")
	h.element("span", card.StatusLabel, "class", "status status-"+strings.ToLower(card.Status))
	h.raw("</p>")
	if card.CreatorName != "" {
		h.element("p", T(loc, "campaign.by", card.CreatorName), "class", "creator")
	}
	h.raw(`<progress max="100"`)
	h.attr("value", itoa(card.Percent))
	h.raw("></progress>")
	h.element("p", T(loc, "campaign.raised_of_goal", card.Raised, card.Goal), "class", "raised")
	h.element("p", T(loc, "campaign.progress", card.Percent), "class", "percent")
	h.element("p", T(loc, "campaign.deadline", card.Deadline), "class", "deadline")
}
