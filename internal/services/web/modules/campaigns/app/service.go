package app

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
)

// MsgDonationFailed is shown when the campaign API rejects a donation without a message.
const MsgDonationFailed = "Failed to make donation. Please try again."

// MsgDonationsClosed is shown when a donation targets a campaign that is not active.
const MsgDonationsClosed = "This campaign is not accepting donations."

type campaignReadGateway interface {
	ListCampaigns(context.Context, CampaignFilter) ([]Campaign, error)
	GetCampaign(context.Context, string) (Campaign, error)
	ListDonations(context.Context, string) ([]Donation, error)
}

type campaignMutationGateway interface {
	CampaignCreator
	MakeDonation(context.Context, string, DonationInput) (Donation, error)
}

// CampaignGateway reads campaigns from and writes them to the campaign API.
type CampaignGateway interface {
	campaignReadGateway
	campaignMutationGateway
}

// Service orchestrates campaign reads, form submissions and donations.
type Service interface {
	ListCampaigns(context.Context, CampaignFilter) ([]Campaign, error)
	CampaignDetails(context.Context, string) (CampaignDetails, error)
	OpenCampaignForm() string
	SubmitCampaign(context.Context, string, CampaignDraft) (string, SubmitResult, error)
	Donate(context.Context, string, DonationDraft) (DonationResult, error)
	Today() time.Time
}

// DonationResult is the outcome of a donation attempt.
type DonationResult struct {
	Campaign Campaign
	Errors   ValidationErrors
	Donation Donation
}

// Options tunes service construction.
type Options struct {
	FormTTL time.Duration
	Now     func() time.Time
}

type service struct {
	readGateway     campaignReadGateway
	mutationGateway campaignMutationGateway
	forms           *FormRegistry
	now             func() time.Time
}

// NewService constructs a service. A nil gateway fails closed.
func NewService(gateway CampaignGateway, opts Options) Service {
	return newService(gateway, opts)
}

// IsGatewayHealthy reports whether the gateway is present and operational.
func IsGatewayHealthy(gateway CampaignGateway) bool {
	if gateway == nil {
		return false
	}
	_, unavailable := gateway.(unavailableGateway)
	return !unavailable
}

func newService(gateway CampaignGateway, opts Options) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return service{
		readGateway:     gateway,
		mutationGateway: gateway,
		forms:           NewFormRegistry(gateway, opts.FormTTL, now),
		now:             now,
	}
}

func (s service) Today() time.Time {
	return civilDate(s.now())
}

func (s service) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]Campaign, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	if filter.Category != "" && !IsCategory(filter.Category) {
		return nil, apperrors.E(apperrors.KindInvalidInput, "unknown campaign category")
	}
	if filter.Status != "" {
		status, ok := ParseStatus(string(filter.Status))
		if !ok {
			return nil, apperrors.E(apperrors.KindInvalidInput, "unknown campaign status")
		}
		filter.Status = status
	}
	items, err := s.readGateway.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []Campaign{}, nil
	}
	return items, nil
}

func (s service) CampaignDetails(ctx context.Context, campaignID string) (CampaignDetails, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return CampaignDetails{}, apperrors.E(apperrors.KindNotFound, "campaign id is required")
	}
	campaign, err := s.readGateway.GetCampaign(ctx, campaignID)
	if err != nil {
		return CampaignDetails{}, err
	}
	donations, err := s.readGateway.ListDonations(ctx, campaignID)
	if err != nil {
		return CampaignDetails{}, err
	}
	if donations == nil {
		donations = []Donation{}
	}
	return CampaignDetails{Campaign: campaign, Donations: donations}, nil
}

func (s service) OpenCampaignForm() string {
	id, _ := s.forms.Open()
	return id
}

// SubmitCampaign runs the submission workflow of the form identified by formID.
// The returned id is the one the re-rendered form must carry.
func (s service) SubmitCampaign(ctx context.Context, formID string, draft CampaignDraft) (string, SubmitResult, error) {
	id, workflow := s.forms.Resolve(formID)
	result, err := workflow.Submit(ctx, draft)
	return id, result, err
}

// Donate validates draft and records it against an active campaign.
// Invalid input returns field errors and no call. Inactive campaigns are
// refused locally with a conflict.
func (s service) Donate(ctx context.Context, campaignID string, draft DonationDraft) (DonationResult, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return DonationResult{}, apperrors.E(apperrors.KindNotFound, "campaign id is required")
	}
	campaign, err := s.readGateway.GetCampaign(ctx, campaignID)
	if err != nil {
		return DonationResult{}, err
	}
	result := DonationResult{Campaign: campaign}
	if !campaign.Status.AcceptsDonations() {
		return result, apperrors.EK(apperrors.KindConflict, MsgDonationsClosed, "campaign is "+string(campaign.Status))
	}
	input, errs := validateDonation(draft)
	if !errs.Valid() {
		result.Errors = errs
		return result, nil
	}
	donation, err := s.mutationGateway.MakeDonation(ctx, campaignID, input)
	if err != nil {
		return result, err
	}
	result.Donation = donation
	return result, nil
}

// DonationFailureMessage returns user-facing text for a failed donation.
// localize is false when the text came verbatim from the campaign API.
func DonationFailureMessage(err error) (message string, localize bool) {
	if message := APIMessage(err); message != "" {
		return message, false
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return key, true
	}
	return MsgDonationFailed, true
}

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "campaign api is not configured")
}

func (unavailableGateway) ListCampaigns(context.Context, CampaignFilter) ([]Campaign, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) GetCampaign(context.Context, string) (Campaign, error) {
	return Campaign{}, errUnavailable()
}

func (unavailableGateway) ListDonations(context.Context, string) ([]Donation, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) CreateCampaign(context.Context, CreateCampaignInput) (Campaign, error) {
	return Campaign{}, errUnavailable()
}

func (unavailableGateway) MakeDonation(context.Context, string, DonationInput) (Donation, error) {
	return Donation{}, errUnavailable()
}
