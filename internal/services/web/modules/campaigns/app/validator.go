package app

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation messages double as message catalog keys.
const (
	MsgRequired             = "This field is required."
	MsgTitleLength          = "Title must be 5-100 characters."
	MsgDescriptionLength    = "Description must be 20-500 characters."
	MsgGoalNumber           = "Goal amount must be a valid number."
	MsgGoalMinimum          = "Goal amount must be at least 100.00."
	MsgDeadlineInvalid      = "Deadline must be a valid date."
	MsgDeadlineFuture       = "Deadline must be a future date."
	MsgCategoryInvalid      = "Category must be one of the listed options."
	MsgDonationNumber       = "Donation amount must be a valid number."
	MsgDonationMinimum      = "Donation amount must be at least 1.00."
	MsgDonationMessageLimit = "Message must be at most 500 characters."
)

// DateLayout is the calendar date format shared by forms and the campaign API.
const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			_, err := ParseAmount(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return IsCategory(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// campaignForm checks shape: presence, length, syntax and membership.
type campaignForm struct {
	Title       string `form:"title" validate:"required,min=5,max=100"`
	Description string `form:"description" validate:"required,min=20,max=500"`
	GoalAmount  string `form:"goalAmount" validate:"required,amount"`
	Deadline    string `form:"deadline" validate:"required,datetime=2006-01-02"`
	Category    string `form:"category" validate:"required,category"`
	CreatorName string `form:"creatorName" validate:"required"`
}

// campaignBounds checks typed values once their text parsed.
type campaignBounds struct {
	GoalAmount int64     `form:"goalAmount" validate:"gte=10000"`
	Deadline   time.Time `form:"deadline" validate:"gtfield=Today"`
	Today      time.Time `form:"-"`
}

var campaignMessages = map[Field]map[string]string{
	FieldTitle:       {"min": MsgTitleLength, "max": MsgTitleLength},
	FieldDescription: {"min": MsgDescriptionLength, "max": MsgDescriptionLength},
	FieldGoalAmount:  {"amount": MsgGoalNumber, "gte": MsgGoalMinimum},
	FieldDeadline:    {"datetime": MsgDeadlineInvalid, "gtfield": MsgDeadlineFuture},
	FieldCategory:    {"category": MsgCategoryInvalid},
}

// ValidateDraft checks a campaign draft against today's date.
// Each invalid field maps to exactly one message; an empty result means valid.
func ValidateDraft(draft CampaignDraft, today time.Time) ValidationErrors {
	_, errs := validateDraft(draft, today)
	return errs
}

func validateDraft(draft CampaignDraft, today time.Time) (CreateCampaignInput, ValidationErrors) {
	draft = draft.Trimmed()
	errs := ValidationErrors{}
	collect(errs, instance().Struct(campaignForm{
		Title:       draft.Title,
		Description: draft.Description,
		GoalAmount:  draft.GoalAmount,
		Deadline:    draft.Deadline,
		Category:    draft.Category,
		CreatorName: draft.CreatorName,
	}), campaignMessages)

	bounds := campaignBounds{Today: civilDate(today)}
	var checks []string
	if _, failed := errs[FieldGoalAmount]; !failed {
		goal, _ := ParseAmount(draft.GoalAmount)
		bounds.GoalAmount = int64(goal)
		checks = append(checks, "GoalAmount")
	}
	if _, failed := errs[FieldDeadline]; !failed {
		deadline, _ := time.Parse(DateLayout, draft.Deadline)
		bounds.Deadline = deadline
		checks = append(checks, "Deadline")
	}
	if len(checks) > 0 {
		collect(errs, instance().StructPartial(bounds, checks...), campaignMessages)
	}

	if !errs.Valid() {
		return CreateCampaignInput{}, errs
	}
	return CreateCampaignInput{
		Title:       draft.Title,
		Description: draft.Description,
		GoalAmount:  Amount(bounds.GoalAmount),
		Deadline:    bounds.Deadline.Format(DateLayout),
		Category:    draft.Category,
		CreatorName: draft.CreatorName,
	}, errs
}

type donationForm struct {
	Amount    string `form:"amount" validate:"required,amount"`
	DonorName string `form:"donorName" validate:"required"`
	Message   string `form:"message" validate:"max=500"`
}

type donationBounds struct {
	Amount int64 `form:"amount" validate:"gte=100"`
}

var donationMessages = map[Field]map[string]string{
	FieldAmount:  {"amount": MsgDonationNumber, "gte": MsgDonationMinimum},
	FieldMessage: {"max": MsgDonationMessageLimit},
}

// ValidateDonation checks a donation draft. An empty result means valid.
func ValidateDonation(draft DonationDraft) ValidationErrors {
	_, errs := validateDonation(draft)
	return errs
}

func validateDonation(draft DonationDraft) (DonationInput, ValidationErrors) {
	draft = draft.Trimmed()
	errs := ValidationErrors{}
	collect(errs, instance().Struct(donationForm{
		Amount:    draft.Amount,
		DonorName: draft.DonorName,
		Message:   draft.Message,
	}), donationMessages)

	var amount Amount
	if _, failed := errs[FieldAmount]; !failed {
		amount, _ = ParseAmount(draft.Amount)
		collect(errs, instance().Struct(donationBounds{Amount: int64(amount)}), donationMessages)
	}
	if !errs.Valid() {
		return DonationInput{}, errs
	}
	return DonationInput{Amount: amount, DonorName: draft.DonorName, Message: draft.Message}, errs
}

// collect records the first failure per field, translating validator tags.
func collect(errs ValidationErrors, err error, messages map[Field]map[string]string) {
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = messageFor(field, fe.Tag(), messages)
	}
}

func messageFor(field Field, tag string, messages map[Field]map[string]string) string {
	if tag == "required" {
		return MsgRequired
	}
	if message, ok := messages[field][tag]; ok {
		return message
	}
	return MsgRequired
}

// civilDate truncates t to midnight UTC of its own calendar day.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
