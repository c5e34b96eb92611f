package app

import "strings"

// Field identifies a form input whose value is validated.
type Field string

// Campaign form fields, named after their input ids.
const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldGoalAmount  Field = "goalAmount"
	FieldDeadline    Field = "deadline"
	FieldCategory    Field = "category"
	FieldCreatorName Field = "creatorName"
)

// Donation form fields.
const (
	FieldAmount    Field = "amount"
	FieldDonorName Field = "donorName"
	FieldMessage   Field = "message"
)

// ValidationErrors maps fields to their single user-facing message.
// An empty map means the input is valid.
type ValidationErrors map[Field]string

// Valid reports whether no field failed validation.
func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

// Strings returns a copy keyed by plain field ids, as views consume them.
func (v ValidationErrors) Strings() map[string]string {
	if len(v) == 0 {
		return nil
	}
	out := make(map[string]string, len(v))
	for field, message := range v {
		out[string(field)] = message
	}
	return out
}

// Status is the lifecycle status reported by the campaign API.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
)

// Statuses returns the listing filter statuses in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusCompleted, StatusExpired}
}

// ParseStatus normalizes raw status text; ok is false for unknown values.
func ParseStatus(raw string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range Statuses() {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// AcceptsDonations reports whether the campaign can still be funded.
func (s Status) AcceptsDonations() bool {
	return s == StatusActive
}

var categories = []string{
	"Animals",
	"Arts",
	"Community",
	"Education",
	"Environment",
	"Health",
	"Technology",
}

// Categories returns the fixed campaign categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether value is one of the listed categories.
func IsCategory(value string) bool {
	for _, category := range categories {
		if value == category {
			return true
		}
	}
	return false
}

// CampaignDraft holds raw campaign form text as typed by the user.
type CampaignDraft struct {
	Title       string
	Description string
	GoalAmount  string
	Deadline    string
	Category    string
	CreatorName string
}

// Trimmed returns the draft with surrounding whitespace removed from every field.
func (d CampaignDraft) Trimmed() CampaignDraft {
	return CampaignDraft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		GoalAmount:  strings.TrimSpace(d.GoalAmount),
		Deadline:    strings.TrimSpace(d.Deadline),
		Category:    strings.TrimSpace(d.Category),
		CreatorName: strings.TrimSpace(d.CreatorName),
	}
}

// CreateCampaignInput is a validated draft ready for the campaign API.
type CreateCampaignInput struct {
	Title       string
	Description string
	GoalAmount  Amount
	// Deadline is a calendar date in YYYY-MM-DD form.
	Deadline    string
	Category    string
	CreatorName string
}

// Campaign is a campaign as returned by the campaign API.
type Campaign struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	GoalAmount    Amount `json:"goalAmount"`
	CurrentAmount Amount `json:"currentAmount"`
	Deadline      string `json:"deadline"`
	Category      string `json:"category"`
	CreatorName   string `json:"creatorName"`
	CreatedAt     string `json:"createdAt"`
	Status        Status `json:"status"`
}

// PercentFunded returns raised/goal as a whole percentage capped at 100.
func (c Campaign) PercentFunded() int {
	return PercentOf(c.CurrentAmount, c.GoalAmount)
}

// Donation is a recorded contribution to a campaign.
type Donation struct {
	ID        string `json:"id"`
	Amount    Amount `json:"amount"`
	DonorName string `json:"donorName"`
	DonatedAt string `json:"donatedAt"`
	Message   string `json:"message"`
}

// DonationDraft holds raw donation form text.
type DonationDraft struct {
	Amount    string
	DonorName string
	Message   string
}

// Trimmed returns the draft with surrounding whitespace removed.
func (d DonationDraft) Trimmed() DonationDraft {
	return DonationDraft{
		Amount:    strings.TrimSpace(d.Amount),
		DonorName: strings.TrimSpace(d.DonorName),
		Message:   strings.TrimSpace(d.Message),
	}
}

// DonationInput is a validated donation ready for the campaign API.
type DonationInput struct {
	Amount    Amount
	DonorName string
	Message   string
}

// CampaignFilter narrows campaign listings. Zero values mean no filter.
type CampaignFilter struct {
	Category string
	Status   Status
}

// CampaignDetails bundles a campaign with its donations for the details page.
type CampaignDetails struct {
	Campaign  Campaign
	Donations []Donation
}
