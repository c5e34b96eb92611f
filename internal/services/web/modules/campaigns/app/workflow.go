package app

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MsgCreateFailed is shown when the campaign API rejects a submission without a message.
const MsgCreateFailed = "Failed to create campaign. Please try again."

// ErrSubmissionInProgress is returned when a form is submitted while its
// previous submission is still awaiting the campaign API.
var ErrSubmissionInProgress = errors.New("campaign submission already in progress")

// Phase is the lifecycle phase of one form submission.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// SubmissionState is the observable state of a campaign form.
// Message is set only when Failed; CampaignID only when Succeeded.
// LocalizeMessage is false when Message came verbatim from the campaign API.
type SubmissionState struct {
	Phase           Phase
	Message         string
	LocalizeMessage bool
	CampaignID      string
}

// SubmitDisabled reports whether the submit control must be disabled.
func (s SubmissionState) SubmitDisabled() bool {
	return s.Phase == PhaseSubmitting
}

// CampaignCreator performs the remote create call.
type CampaignCreator interface {
	CreateCampaign(context.Context, CreateCampaignInput) (Campaign, error)
}

// SubmitResult is the outcome of one Submit call.
type SubmitResult struct {
	State    SubmissionState
	Draft    CampaignDraft
	Errors   ValidationErrors
	Campaign Campaign
	// Err is the remote failure behind a Failed state, kept for logging.
	Err error
}

// SubmissionWorkflow drives one campaign form from draft to created campaign.
// It is safe for concurrent use; the remote call runs outside the lock while
// the state reads Submitting.
type SubmissionWorkflow struct {
	creator CampaignCreator
	now     func() time.Time

	mu       sync.Mutex
	state    SubmissionState
	draft    CampaignDraft
	errors   ValidationErrors
	created  Campaign
	lastSeen time.Time
}

// NewSubmissionWorkflow builds an idle workflow. now defaults to time.Now.
func NewSubmissionWorkflow(creator CampaignCreator, now func() time.Time) *SubmissionWorkflow {
	if now == nil {
		now = time.Now
	}
	if creator == nil {
		creator = unavailableGateway{}
	}
	return &SubmissionWorkflow{
		creator:  creator,
		now:      now,
		state:    SubmissionState{Phase: PhaseIdle},
		lastSeen: now(),
	}
}

// State returns the current submission state.
func (w *SubmissionWorkflow) State() SubmissionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *SubmissionWorkflow) resultLocked() SubmitResult {
	return SubmitResult{
		State:    w.state,
		Draft:    w.draft,
		Errors:   w.errors,
		Campaign: w.created,
	}
}

// Submit validates draft and, when valid, creates the campaign exactly once.
//
// A form that is already Submitting refuses with ErrSubmissionInProgress.
// A form that already Succeeded returns the stored campaign without a call,
// even when the resubmitted draft differs.
// Remote failures leave the form Failed with a user-facing message and
// allow a retry.
func (w *SubmissionWorkflow) Submit(ctx context.Context, draft CampaignDraft) (SubmitResult, error) {
	w.mu.Lock()
	w.lastSeen = w.now()
	switch w.state.Phase {
	case PhaseSubmitting:
		result := w.resultLocked()
		w.mu.Unlock()
		return result, ErrSubmissionInProgress
	case PhaseSucceeded:
		result := w.resultLocked()
		w.mu.Unlock()
		return result, nil
	}

	w.draft = draft
	input, errs := validateDraft(draft, w.now())
	w.errors = errs
	if !errs.Valid() {
		w.state = SubmissionState{Phase: PhaseIdle}
		result := w.resultLocked()
		w.mu.Unlock()
		return result, nil
	}
	w.state = SubmissionState{Phase: PhaseSubmitting}
	w.mu.Unlock()

	// The create call outlives a client that navigates away.
	created, err := w.creator.CreateCampaign(context.WithoutCancel(ctx), input)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastSeen = w.now()
	if err != nil {
		message, localize := failureMessage(err)
		w.state = SubmissionState{Phase: PhaseFailed, Message: message, LocalizeMessage: localize}
		result := w.resultLocked()
		result.Err = err
		return result, nil
	}
	w.created = created
	w.draft = CampaignDraft{}
	w.state = SubmissionState{Phase: PhaseSucceeded, CampaignID: created.ID}
	return w.resultLocked(), nil
}

func (w *SubmissionWorkflow) idleSince() (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen, w.state.Phase != PhaseSubmitting
}

func failureMessage(err error) (string, bool) {
	if message := APIMessage(err); message != "" {
		return message, false
	}
	return MsgCreateFailed, true
}
