package campaigns

import (
	"strings"
	"time"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
	"github.com/louisbranch/crowdfund/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/crowdfund/internal/services/web/templates"
)

func mapCampaignListView(items []campaignapp.Campaign, filter campaignapp.CampaignFilter, loadFailed bool, loc webtemplates.Localizer) webtemplates.CampaignListView {
	cards := make([]webtemplates.CampaignCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, mapCampaignCard(item, loc))
	}
	return webtemplates.CampaignListView{
		Action:     routepath.Campaigns,
		Categories: categoryOptions(filter.Category, loc),
		Statuses:   statusOptions(filter.Status, loc),
		Items:      cards,
		LoadFailed: loadFailed,
	}
}

func mapCampaignCard(campaign campaignapp.Campaign, loc webtemplates.Localizer) webtemplates.CampaignCard {
	return webtemplates.CampaignCard{
		ID:            campaign.ID,
		URL:           routepath.Campaign(campaign.ID),
		Title:         campaign.Title,
		Category:      campaign.Category,
		CategoryLabel: categoryLabel(campaign.Category, loc),
		Status:        string(campaign.Status),
		StatusLabel:   statusLabel(campaign.Status, loc),
		CreatorName:   campaign.CreatorName,
		Raised:        formatMoney(campaign.CurrentAmount),
		Goal:          formatMoney(campaign.GoalAmount),
		Percent:       campaign.PercentFunded(),
		Deadline:      formatDate(campaign.Deadline),
	}
}

func mapCampaignDetailView(details campaignapp.CampaignDetails, form webtemplates.DonationFormView, loc webtemplates.Localizer) webtemplates.CampaignDetailView {
	campaign := details.Campaign
	donations := make([]webtemplates.DonationRow, 0, len(details.Donations))
	for _, donation := range details.Donations {
		donations = append(donations, webtemplates.DonationRow{
			DonorName: donation.DonorName,
			Amount:    formatMoney(donation.Amount),
			DonatedAt: formatDate(donation.DonatedAt),
			Message:   donation.Message,
		})
	}
	form.Action = routepath.CampaignDonations(campaign.ID)
	form.Closed = !campaign.Status.AcceptsDonations()
	form.StatusLabel = statusLabel(campaign.Status, loc)
	return webtemplates.CampaignDetailView{
		Campaign:    mapCampaignCard(campaign, loc),
		Description: campaign.Description,
		CreatedAt:   formatDate(campaign.CreatedAt),
		Donations:   donations,
		Donation:    form,
	}
}

func mapCampaignFormView(formID string, result campaignapp.SubmitResult, today time.Time, loc webtemplates.Localizer) webtemplates.CampaignFormView {
	draft := result.Draft
	view := webtemplates.CampaignFormView{
		Action:      routepath.CampaignsNew,
		FormID:      formID,
		Title:       draft.Title,
		Description: draft.Description,
		GoalAmount:  draft.GoalAmount,
		Deadline:    draft.Deadline,
		Category:    draft.Category,
		CreatorName: draft.CreatorName,
		Categories:  categoryOptions(strings.TrimSpace(draft.Category), loc),
		MinDeadline: today.AddDate(0, 0, 1).Format(campaignapp.DateLayout),
		Errors:      result.Errors.Strings(),
		Submitting:  result.State.SubmitDisabled(),
	}
	if result.State.Phase == campaignapp.PhaseFailed {
		view.SubmitError = result.State.Message
		if result.State.LocalizeMessage {
			view.SubmitError = webtemplates.T(loc, result.State.Message)
		}
	}
	return view
}

func categoryOptions(selected string, loc webtemplates.Localizer) []webtemplates.SelectOption {
	categories := campaignapp.Categories()
	options := make([]webtemplates.SelectOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, webtemplates.SelectOption{
			Value:    category,
			Label:    categoryLabel(category, loc),
			Selected: category == selected,
		})
	}
	return options
}

func statusOptions(selected campaignapp.Status, loc webtemplates.Localizer) []webtemplates.SelectOption {
	statuses := campaignapp.Statuses()
	options := make([]webtemplates.SelectOption, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, webtemplates.SelectOption{
			Value:    string(status),
			Label:    statusLabel(status, loc),
			Selected: status == selected,
		})
	}
	return options
}

// categoryLabel localizes known categories and passes unknown ones through.
func categoryLabel(category string, loc webtemplates.Localizer) string {
	if !campaignapp.IsCategory(category) {
		return category
	}
	return webtemplates.T(loc, "category."+category)
}

func statusLabel(status campaignapp.Status, loc webtemplates.Localizer) string {
	if _, ok := campaignapp.ParseStatus(string(status)); !ok {
		return string(status)
	}
	return webtemplates.T(loc, "campaign.status."+string(status))
}

func formatMoney(amount campaignapp.Amount) string {
	return "$" + amount.Format()
}

// formatDate keeps the calendar date of API timestamps such as
// 2026-03-10T12:00:00.
func formatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if date, _, found := strings.Cut(raw, "T"); found {
		return date
	}
	return raw
}
