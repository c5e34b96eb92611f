package campaigns

import (
	"errors"
	"log"
	"net/http"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

const formIDField = "form_id"

func (h handlers) handleNewCampaign(w http.ResponseWriter, r *http.Request) {
	formID := h.service.OpenCampaignForm()
	h.writeCampaignForm(w, r, formID, campaignapp.SubmitResult{}, http.StatusOK)
}

func (h handlers) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "failed to parse campaign form", err))
		return
	}
	draft := campaignapp.CampaignDraft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		GoalAmount:  r.FormValue("goalAmount"),
		Deadline:    r.FormValue("deadline"),
		Category:    r.FormValue("category"),
		CreatorName: r.FormValue("creatorName"),
	}

	formID, result, err := h.service.SubmitCampaign(httpx.RequestContext(r), r.FormValue(formIDField), draft)
	if errors.Is(err, campaignapp.ErrSubmissionInProgress) {
		h.metrics.CountSubmission("campaign", "in_progress")
		h.writeCampaignForm(w, r, formID, result, http.StatusConflict)
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	switch result.State.Phase {
	case campaignapp.PhaseSucceeded:
		h.metrics.CountSubmission("campaign", "created")
		h.RedirectWithNotice(w, r, routepath.Campaign(result.State.CampaignID), "campaign.notice.created")
	case campaignapp.PhaseFailed:
		h.metrics.CountSubmission("campaign", "failed")
		log.Printf("campaign create failed form_id=%s request_id=%s err=%v", formID, httpx.RequestIDFrom(r), result.Err)
		h.writeCampaignForm(w, r, formID, result, apperrors.HTTPStatus(result.Err))
	default:
		h.metrics.CountSubmission("campaign", "invalid")
		h.writeCampaignForm(w, r, formID, result, http.StatusUnprocessableEntity)
	}
}

func (h handlers) writeCampaignForm(w http.ResponseWriter, r *http.Request, formID string, result campaignapp.SubmitResult, status int) {
	loc, _ := h.PageLocalizer(w, r)
	view := mapCampaignFormView(formID, result, h.service.Today(), loc)
	h.WritePage(w, r, webtemplates.T(loc, "create.title"), status, webtemplates.CampaignCreate(view, loc))
}
