package crm

import (
	"strings"

	"github.com/jhruska/callsight/internal/extraction"
)

// Email is the follow-up draft shown to the agent for review before sending.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// fallbackRecipient is used when the call never surfaced an email address.
const fallbackRecipient = "customer@example.com"

// ComposeFollowUp drafts the follow-up email from a reviewed analysis.
func ComposeFollowUp(a extraction.Analysis) Email {
	to := a.KeyInformation.CustomerEmail
	if to == "" {
		to = fallbackRecipient
	}

	subject := "Following up on your recent call"
	switch a.Sentiment {
	case "negative", "frustrated":
		subject = "We're sorry about your experience - here's what happens next"
	case "positive":
		subject = "Thanks for your call - a quick recap"
	}

	var b strings.Builder
	b.WriteString("Hi,\n\nThank you for taking the time to speak with us today.\n\n")
	if a.Summary != "" {
		b.WriteString(a.Summary)
		b.WriteString("\n")
	}
	if len(a.Commitments) > 0 {
		b.WriteString("\nWhat we committed to:\n")
		for _, c := range a.Commitments {
			b.WriteString("- " + c + "\n")
		}
	}
	if len(a.SuggestedActions) > 0 {
		b.WriteString("\nNext steps on our side:\n")
		for _, s := range a.SuggestedActions {
			b.WriteString("- " + s + "\n")
		}
	}
	if a.KeyInformation.OrderNumber != "" {
		b.WriteString("\nReference order: " + a.KeyInformation.OrderNumber + "\n")
	}
	b.WriteString("\nBest regards,\nCustomer Care Team\n")

	return Email{To: to, Subject: subject, Body: b.String()}
}
