package campaigns

import (
	"log"
	"net/http"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request, campaignID string) {
	loc, _ := h.PageLocalizer(w, r)
	details, err := h.service.CampaignDetails(httpx.RequestContext(r), campaignID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := mapCampaignDetailView(details, webtemplates.DonationFormView{}, loc)
	h.WritePage(w, r, details.Campaign.Title, http.StatusOK, webtemplates.CampaignDetail(view, loc))
}

func (h handlers) handleDonate(w http.ResponseWriter, r *http.Request, campaignID string) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "failed to parse donation form", err))
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	ctx := httpx.RequestContext(r)
	draft := campaignapp.DonationDraft{
		Amount:    r.FormValue("amount"),
		DonorName: r.FormValue("donorName"),
		Message:   r.FormValue("message"),
	}

	result, err := h.service.Donate(ctx, campaignID, draft)
	switch {
	case err != nil && result.Campaign.ID == "":
		h.metrics.CountSubmission("donation", "failed")
		h.WriteError(w, r, err)
		return
	case err != nil:
		h.metrics.CountSubmission("donation", "failed")
		log.Printf("donation failed campaign_id=%s request_id=%s err=%v", campaignID, httpx.RequestIDFrom(r), err)
		message, localize := campaignapp.DonationFailureMessage(err)
		if localize {
			message = webtemplates.T(loc, message)
		}
		form := donationFormValues(draft)
		form.Error = message
		h.writeDetailWithForm(w, r, campaignID, result.Campaign, form, apperrors.HTTPStatus(err))
		return
	case !result.Errors.Valid():
		h.metrics.CountSubmission("donation", "invalid")
		form := donationFormValues(draft)
		form.Errors = result.Errors.Strings()
		form.Error = webtemplates.T(loc, "donation.summary")
		h.writeDetailWithForm(w, r, campaignID, result.Campaign, form, http.StatusUnprocessableEntity)
		return
	}

	h.metrics.CountSubmission("donation", "created")
	h.RedirectWithNotice(w, r, routepath.Campaign(campaignID), "donation.notice.thanks")
}

// writeDetailWithForm re-renders the details page around a submitted
// donation form. Donations are reloaded; a failed reload shows the campaign
// without history rather than losing the user's input.
func (h handlers) writeDetailWithForm(w http.ResponseWriter, r *http.Request, campaignID string, campaign campaignapp.Campaign, form webtemplates.DonationFormView, status int) {
	loc, _ := h.PageLocalizer(w, r)
	details, err := h.service.CampaignDetails(httpx.RequestContext(r), campaignID)
	if err != nil {
		details = campaignapp.CampaignDetails{Campaign: campaign}
	}
	view := mapCampaignDetailView(details, form, loc)
	h.WritePage(w, r, details.Campaign.Title, status, webtemplates.CampaignDetail(view, loc))
}

func donationFormValues(draft campaignapp.DonationDraft) webtemplates.DonationFormView {
	return webtemplates.DonationFormView{
		Amount:    draft.Amount,
		DonorName: draft.DonorName,
		Message:   draft.Message,
	}
}
