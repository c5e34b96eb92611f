package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
)

type gatewayStub struct {
	creatorStub
	items         []Campaign
	listErr       error
	lastFilter    CampaignFilter
	campaign      Campaign
	getErr        error
	donations     []Donation
	donationsErr  error
	donation      Donation
	donateErr     error
	donateCalls   int
	lastDonation  DonationInput
	lastDonatedTo string
}

func (g *gatewayStub) ListCampaigns(_ context.Context, filter CampaignFilter) ([]Campaign, error) {
	g.lastFilter = filter
	return g.items, g.listErr
}

func (g *gatewayStub) GetCampaign(context.Context, string) (Campaign, error) {
	return g.campaign, g.getErr
}

func (g *gatewayStub) ListDonations(context.Context, string) ([]Donation, error) {
	return g.donations, g.donationsErr
}

func (g *gatewayStub) MakeDonation(_ context.Context, campaignID string, input DonationInput) (Donation, error) {
	g.donateCalls++
	g.lastDonatedTo = campaignID
	g.lastDonation = input
	return g.donation, g.donateErr
}

func TestListCampaignsPassesNormalizedFilter(t *testing.T) {
	t.Parallel()

	gateway := &gatewayStub{}
	svc := newService(gateway, Options{Now: fixedNow})
	items, err := svc.ListCampaigns(context.Background(), CampaignFilter{Category: " Arts ", Status: "active"})
	if err != nil {
		t.Fatalf("ListCampaigns() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("ListCampaigns() = %#v, want empty non-nil slice", items)
	}
	if gateway.lastFilter != (CampaignFilter{Category: "Arts", Status: StatusActive}) {
		t.Fatalf("filter = %+v, want Arts/ACTIVE", gateway.lastFilter)
	}
}

func TestListCampaignsRejectsUnknownFilters(t *testing.T) {
	t.Parallel()

	svc := newService(&gatewayStub{}, Options{Now: fixedNow})
	for _, filter := range []CampaignFilter{{Category: "Sports"}, {Status: "PAUSED"}} {
		_, err := svc.ListCampaigns(context.Background(), filter)
		if got := apperrors.HTTPStatus(err); got != http.StatusBadRequest {
			t.Fatalf("ListCampaigns(%+v) status = %d, want %d", filter, got, http.StatusBadRequest)
		}
	}
}

func TestNewServiceFailsClosedWhenGatewayMissing(t *testing.T) {
	t.Parallel()

	svc := newService(nil, Options{Now: fixedNow})
	if _, err := svc.ListCampaigns(context.Background(), CampaignFilter{}); apperrors.HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("ListCampaigns() error = %v, want unavailable", err)
	}
	if _, err := svc.CampaignDetails(context.Background(), "1"); apperrors.HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("CampaignDetails() error = %v, want unavailable", err)
	}
	if IsGatewayHealthy(nil) {
		t.Fatalf("IsGatewayHealthy(nil) = true, want false")
	}
	if !IsGatewayHealthy(&gatewayStub{}) {
		t.Fatalf("IsGatewayHealthy(stub) = false, want true")
	}
}

func TestCampaignDetailsPropagatesNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(&gatewayStub{getErr: NewAPIError(http.StatusNotFound, "Campaign not found")}, Options{Now: fixedNow})
	_, err := svc.CampaignDetails(context.Background(), "404")
	if got := apperrors.HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("CampaignDetails() status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestCampaignDetailsDefaultsDonationsToEmpty(t *testing.T) {
	t.Parallel()

	svc := newService(&gatewayStub{campaign: Campaign{ID: "1", Status: StatusActive}}, Options{Now: fixedNow})
	details, err := svc.CampaignDetails(context.Background(), "1")
	if err != nil {
		t.Fatalf("CampaignDetails() error = %v", err)
	}
	if details.Donations == nil {
		t.Fatalf("Donations = nil, want empty slice")
	}
}

func TestSubmitCampaignResumesFormByID(t *testing.T) {
	t.Parallel()

	gateway := &gatewayStub{creatorStub: creatorStub{result: Campaign{ID: "77"}}}
	svc := newService(gateway, Options{Now: fixedNow})
	formID := svc.OpenCampaignForm()

	id, result, err := svc.SubmitCampaign(context.Background(), formID, validDraft())
	if err != nil {
		t.Fatalf("SubmitCampaign() error = %v", err)
	}
	if id != formID {
		t.Fatalf("SubmitCampaign() id = %q, want %q", id, formID)
	}
	if result.State.CampaignID != "77" {
		t.Fatalf("campaign id = %q, want 77", result.State.CampaignID)
	}
	if _, again, _ := svc.SubmitCampaign(context.Background(), formID, validDraft()); again.Campaign.ID != "77" {
		t.Fatalf("duplicate submit campaign = %q, want 77", again.Campaign.ID)
	}
	if gateway.callCount() != 1 {
		t.Fatalf("create calls = %d, want 1", gateway.callCount())
	}
	if _, workflow := svc.forms.Resolve(formID); workflow.State().Phase != PhaseSucceeded {
		t.Fatalf("form phase = %q, want %q", workflow.State().Phase, PhaseSucceeded)
	}
}

func TestDonateRejectsInactiveCampaignLocally(t *testing.T) {
	t.Parallel()

	gateway := &gatewayStub{campaign: Campaign{ID: "3", Status: StatusCompleted}}
	svc := newService(gateway, Options{Now: fixedNow})
	_, err := svc.Donate(context.Background(), "3", DonationDraft{Amount: "10", DonorName: "Grace"})
	if got := apperrors.KindOf(err); got != apperrors.KindConflict {
		t.Fatalf("Donate() kind = %q, want %q", got, apperrors.KindConflict)
	}
	if message, localize := DonationFailureMessage(err); message != MsgDonationsClosed || !localize {
		t.Fatalf("DonationFailureMessage() = %q, %v, want closed key", message, localize)
	}
	if gateway.donateCalls != 0 {
		t.Fatalf("donate calls = %d, want 0", gateway.donateCalls)
	}
}

func TestDonateValidatesBeforeCalling(t *testing.T) {
	t.Parallel()

	gateway := &gatewayStub{campaign: Campaign{ID: "3", Status: StatusActive}}
	svc := newService(gateway, Options{Now: fixedNow})
	result, err := svc.Donate(context.Background(), "3", DonationDraft{Amount: "0.50", DonorName: "Grace"})
	if err != nil {
		t.Fatalf("Donate() error = %v", err)
	}
	if result.Errors[FieldAmount] != MsgDonationMinimum {
		t.Fatalf("amount error = %q, want %q", result.Errors[FieldAmount], MsgDonationMinimum)
	}
	if gateway.donateCalls != 0 {
		t.Fatalf("donate calls = %d, want 0", gateway.donateCalls)
	}
}

func TestDonateSendsValidatedInput(t *testing.T) {
	t.Parallel()

	gateway := &gatewayStub{
		campaign: Campaign{ID: "3", Status: StatusActive},
		donation: Donation{ID: "d1", Amount: 25_00},
	}
	svc := newService(gateway, Options{Now: fixedNow})
	result, err := svc.Donate(context.Background(), "3", DonationDraft{Amount: " 25 ", DonorName: " Grace ", Message: "Go team"})
	if err != nil {
		t.Fatalf("Donate() error = %v", err)
	}
	if result.Donation.ID != "d1" {
		t.Fatalf("donation id = %q, want d1", result.Donation.ID)
	}
	if gateway.lastDonatedTo != "3" || gateway.lastDonation != (DonationInput{Amount: 25_00, DonorName: "Grace", Message: "Go team"}) {
		t.Fatalf("donation sent = %q %+v", gateway.lastDonatedTo, gateway.lastDonation)
	}
}

func TestDonationFailureMessagePrefersAPIText(t *testing.T) {
	t.Parallel()

	message, localize := DonationFailureMessage(NewAPIError(http.StatusBadRequest, "Cannot donate. Campaign is not ACTIVE."))
	if message != "Cannot donate. Campaign is not ACTIVE." || localize {
		t.Fatalf("DonationFailureMessage() = %q, %v", message, localize)
	}
	message, localize = DonationFailureMessage(errors.New("boom"))
	if message != MsgDonationFailed || !localize {
		t.Fatalf("DonationFailureMessage(untyped) = %q, %v", message, localize)
	}
}

func TestKindForStatus(t *testing.T) {
	t.Parallel()

	tests := map[int]apperrors.Kind{
		http.StatusBadRequest:          apperrors.KindInvalidInput,
		http.StatusUnprocessableEntity: apperrors.KindInvalidInput,
		http.StatusNotFound:            apperrors.KindNotFound,
		http.StatusConflict:            apperrors.KindConflict,
		http.StatusBadGateway:          apperrors.KindUnavailable,
		http.StatusTeapot:              apperrors.KindUnknown,
	}
	for status, want := range tests {
		if got := KindForStatus(status); got != want {
			t.Fatalf("KindForStatus(%d) = %q, want %q", status, got, want)
		}
	}
}
