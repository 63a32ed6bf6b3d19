package crm

import (
	"strings"
	"testing"

	"github.com/jhruska/callsight/internal/extraction"
)

func sampleAnalysis() extraction.Analysis {
	return extraction.Analysis{
		Sentiment:      "negative",
		EscalationRisk: "high",
		PrimaryIntent:  "Locate a missing order",
		KeyInformation: extraction.KeyInformation{
			OrderNumber:   "48213",
			CustomerEmail: "dana.kovar@example.com",
			CustomerPhone: "555-0182",
		},
		SuggestedActions: []string{"Escalate with the carrier"},
		Commitments:      []string{"Issue a 15% credit"},
		ConfidenceScore:  0.87,
		Summary:          "Customer's order 48213 is stuck at the regional depot.",
	}
}

func TestNewRecord(t *testing.T) {
	a := sampleAnalysis()
	record := NewRecord("missing-order", a)

	if !strings.HasPrefix(record.ID, "case-") {
		t.Errorf("ID = %q, want case- prefix", record.ID)
	}
	if record.ScenarioID != "missing-order" {
		t.Errorf("ScenarioID = %q, want %q", record.ScenarioID, "missing-order")
	}
	if record.Status != "open" {
		t.Errorf("Status = %q, want %q", record.Status, "open")
	}
	if record.Priority != "urgent" {
		t.Errorf("Priority = %q, want %q (high escalation risk)", record.Priority, "urgent")
	}
	if record.ContactEmail != "dana.kovar@example.com" {
		t.Errorf("ContactEmail = %q", record.ContactEmail)
	}
	if record.OrderNumber != "48213" {
		t.Errorf("OrderNumber = %q", record.OrderNumber)
	}
	if record.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if len(record.Commitments) != 1 || record.Commitments[0] != "Issue a 15% credit" {
		t.Errorf("Commitments = %v", record.Commitments)
	}
}

func TestNewRecordUniqueIDs(t *testing.T) {
	a := sampleAnalysis()
	first := NewRecord("missing-order", a)
	second := NewRecord("missing-order", a)
	if first.ID == second.ID {
		t.Errorf("records should get unique IDs, both got %q", first.ID)
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		risk string
		want string
	}{
		{"high", "urgent"},
		{"medium", "normal"},
		{"low", "low"},
		{"", "low"},
	}

	for _, tt := range tests {
		t.Run(tt.risk, func(t *testing.T) {
			if got := priorityFor(tt.risk); got != tt.want {
				t.Errorf("priorityFor(%q) = %q, want %q", tt.risk, got, tt.want)
			}
		})
	}
}
