package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DonationRow is one donation in the campaign history.
type DonationRow struct {
	DonorName string
	Amount    string
	DonatedAt string
	Message   string
}

// DonationFormView drives the donation form.
type DonationFormView struct {
	Action    string
	Amount    string
	DonorName string
	Message   string
	// Errors maps field names (amount, donorName, message) to messages.
	Errors map[string]string
	// Error is the summary or API failure shown in donate-error.
	Error       string
	Closed      bool
	StatusLabel string
}

// CampaignDetailView drives the campaign details page.
type CampaignDetailView struct {
	Campaign    CampaignCard
	Description string
	CreatedAt   string
	Donations   []DonationRow
	Donation    DonationFormView
}

// CampaignDetail renders one campaign with its donations and donation form.
func CampaignDetail(view CampaignDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		card := view.Campaign
		h.raw(`<article class="campaign-detail"`)
		h.attr("data-testid", "campaign-detail-"+card.ID)
		h.raw(">")
		h.element("h1", card.Title)
		writeCampaignSummary(h, card, loc)
		if view.CreatedAt != "" {
			h.element("p", T(loc, "campaign.created_at", view.CreatedAt), "class", "created-at")
		}
		h.element("p", view.Description, "class", "description")

		h.raw(`<section class="donations">`)
		h.element("h2", T(loc, "donations.title"))
		if len(view.Donations) == 0 {
			h.element("p", T(loc, "donations.empty"), "data-testid", "donations-empty")
		} else {
			h.raw(`<ul class="donation-list">`)
			for _, donation := range view.Donations {
				h.raw(`<li class="donation">`)
				h.element("strong", donation.DonorName)
				h.raw(" ")
				h.element("span", donation.Amount, "class", "amount")
				h.raw(" ")
				h.element("time", donation.DonatedAt)
				if donation.Message != "" {
					h.element("p", donation.Message)
				}
				h.raw("</li>")
			}
			h.raw("</ul>")
		}
		h.raw("</section>")

		h.render(ctx, DonationForm(view.Donation, loc))
		h.raw("</article>")
		return h.err
	})
}

// DonationForm renders the donation form, disabled when the campaign is closed.
func DonationForm(view DonationFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<form id="donation-form" method="post"`)
		h.attr("action", view.Action)
		h.attr("hx-post", view.Action)
		h.raw(` hx-target="#donation-form" hx-select="#donation-form" hx-swap="outerHTML" hx-disabled-elt="find button[type='submit']" novalidate>`)
		h.element("h2", T(loc, "donation.form.title"))
		if view.Closed {
			h.element("p", T(loc, "donation.closed", view.StatusLabel), "class", "notice", "data-testid", "donation-closed")
		}
		if view.Error != "" {
			h.element("p", view.Error, "class", "error", "role", "alert", "data-testid", "donate-error")
		}

		writeInput(h, inputSpec{
			id: "donation-amount", name: "amount", kind: "number", label: T(loc, "donation.field.amount"),
			value: view.Amount, testID: "donation-amount", step: "0.01", min: "1",
			err: translated(loc, view.Errors["amount"]), disabled: view.Closed,
		})
		writeInput(h, inputSpec{
			id: "donorName", name: "donorName", kind: "text", label: T(loc, "donation.field.donor_name"),
			value: view.DonorName, testID: "donorName-input",
			err: translated(loc, view.Errors["donorName"]), disabled: view.Closed,
		})
		writeInput(h, inputSpec{
			id: "donation-message", name: "message", kind: "textarea", label: T(loc, "donation.field.message"),
			value: view.Message, testID: "donation-message", maxLength: "500",
			err: translated(loc, view.Errors["message"]), disabled: view.Closed,
		})

		h.raw(`<button type="submit" data-testid="donate-submit"`)
		h.flag("disabled", view.Closed)
		h.raw(">")
		h.text(T(loc, "donation.submit"))
		h.raw("</button></form>")
		return h.err
	})
}

func translated(loc Localizer, message string) string {
	if message == "" {
		return ""
	}
	return T(loc, message)
}
