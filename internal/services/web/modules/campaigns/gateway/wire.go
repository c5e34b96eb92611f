package gateway

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	campaignapp "github.com/louisbranch/crowdfund/internal/services/web/modules/campaigns/app"
)

// wireID accepts ids encoded as JSON numbers or strings.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*id = wireID(strings.TrimSpace(text))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = wireID(number.String())
	return nil
}

type campaignWire struct {
	ID            wireID             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	GoalAmount    campaignapp.Amount `json:"goalAmount"`
	CurrentAmount campaignapp.Amount `json:"currentAmount"`
	Deadline      string             `json:"deadline"`
	Category      string             `json:"category"`
	CreatorName   string             `json:"creatorName"`
	CreatedAt     string             `json:"createdAt"`
	Status        string             `json:"status"`
}

func (w campaignWire) domain() campaignapp.Campaign {
	status, ok := campaignapp.ParseStatus(w.Status)
	if !ok {
		status = campaignapp.Status(strings.ToUpper(strings.TrimSpace(w.Status)))
	}
	return campaignapp.Campaign{
		ID:            string(w.ID),
		Title:         w.Title,
		Description:   w.Description,
		GoalAmount:    w.GoalAmount,
		CurrentAmount: w.CurrentAmount,
		Deadline:      w.Deadline,
		Category:      w.Category,
		CreatorName:   w.CreatorName,
		CreatedAt:     w.CreatedAt,
		Status:        status,
	}
}

type donationWire struct {
	ID        wireID             `json:"id"`
	Amount    campaignapp.Amount `json:"amount"`
	DonorName string             `json:"donorName"`
	DonatedAt string             `json:"donatedAt"`
	Message   string             `json:"message"`
}

func (w donationWire) domain() campaignapp.Donation {
	return campaignapp.Donation{
		ID:        string(w.ID),
		Amount:    w.Amount,
		DonorName: w.DonorName,
		DonatedAt: w.DonatedAt,
		Message:   w.Message,
	}
}

type createCampaignRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	GoalAmount  campaignapp.Amount `json:"goalAmount"`
	Deadline    string             `json:"deadline"`
	Category    string             `json:"category"`
	CreatorName string             `json:"creatorName"`
}

type donationRequest struct {
	Amount    campaignapp.Amount `json:"amount"`
	DonorName string             `json:"donorName"`
	Message   string             `json:"message,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

// decodeErrorMessage extracts {"message": "..."} from an error body.
func decodeErrorMessage(data []byte) string {
	if len(bytes.TrimSpace(data)) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
