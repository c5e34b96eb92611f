package campaigns

import (
	"log"
	"net/http"
	"strings"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	query := r.URL.Query()
	filter := campaignapp.CampaignFilter{
		Category: strings.TrimSpace(query.Get(routepath.CategoryQueryKey)),
		Status:   campaignapp.Status(strings.ToUpper(strings.TrimSpace(query.Get(routepath.StatusQueryKey)))),
	}

	items, err := h.service.ListCampaigns(httpx.RequestContext(r), filter)
	status := http.StatusOK
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.WriteError(w, r, err)
			return
		}
		status = apperrors.HTTPStatus(err)
		log.Printf("campaign list failed category=%q status=%q request_id=%s err=%v",
			filter.Category, filter.Status, httpx.RequestIDFrom(r), err)
	}

	view := mapCampaignListView(items, filter, err != nil, loc)
	h.WritePage(w, r, webtemplates.T(loc, "campaigns.title"), status, webtemplates.CampaignList(view, loc))
}
