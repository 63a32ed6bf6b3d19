// Package crm turns a reviewed analysis into the mock CRM record and the
// follow-up email draft the demo emits. Nothing here talks to a real CRM.
package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhruska/callsight/internal/extraction"
)

// Record is the mock CRM case produced after the human confirms an analysis.
type Record struct {
	ID             string    `json:"id"`
	ScenarioID     string    `json:"scenarioId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Sentiment      string    `json:"sentiment"`
	EscalationRisk string    `json:"escalationRisk"`
	PrimaryIntent  string    `json:"primaryIntent"`
	Summary        string    `json:"summary"`
	ContactEmail   string    `json:"contactEmail"`
	ContactPhone   string    `json:"contactPhone"`
	OrderNumber    string    `json:"orderNumber"`
	ProductSKU     string    `json:"productSKU"`
	IssueDate      string    `json:"issueDate"`
	NextActions    []string  `json:"nextActions"`
	Commitments    []string  `json:"commitments"`
}

// NewRecord builds a CRM case from a reviewed analysis.
func NewRecord(scenarioID string, a extraction.Analysis) Record {
	return Record{
		ID:             "case-" + uuid.NewString(),
		ScenarioID:     scenarioID,
		CreatedAt:      time.Now().UTC(),
		Status:         "open",
		Priority:       priorityFor(a.EscalationRisk),
		Sentiment:      a.Sentiment,
		EscalationRisk: a.EscalationRisk,
		PrimaryIntent:  a.PrimaryIntent,
		Summary:        a.Summary,
		ContactEmail:   a.KeyInformation.CustomerEmail,
		ContactPhone:   a.KeyInformation.CustomerPhone,
		OrderNumber:    a.KeyInformation.OrderNumber,
		ProductSKU:     a.KeyInformation.ProductSKU,
		IssueDate:      a.KeyInformation.IssueDate,
		NextActions:    a.SuggestedActions,
		Commitments:    a.Commitments,
	}
}

func priorityFor(risk string) string {
	switch risk {
	case "high":
		return "urgent"
	case "medium":
		return "normal"
	default:
		return "low"
	}
}
