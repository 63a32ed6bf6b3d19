// Package scenarios holds the built-in demo call transcripts served to the
// review UI. Transcripts are role-tagged with blank lines between turns, the
// same shape a real transcription pipeline would deliver.
package scenarios

// Scenario is one canned customer service call.
type Scenario struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Transcript  string `json:"transcript"`
}

var catalog = []Scenario{
	{
		ID:          "missing-order",
		Title:       "Missing order",
		Description: "Customer's order never arrived and they are losing patience.",
		Transcript: `Agent: Thank you for calling customer support, how can I help you today?

Customer: Hi, I'm calling about my order 48213. It was supposed to arrive last Tuesday, June 3rd, and I still haven't received anything. This is the second time I've called about it.

Agent: I'm really sorry about that. Let me pull it up. Can I confirm the email on the account?

Customer: It's dana.kovar@example.com. Honestly, if this isn't sorted this week I want a refund.

Agent: Completely understandable. I can see the package is stuck at the regional depot. I'll escalate this with the carrier today and issue a 15% credit on the order. You'll get a confirmation email within the hour.

Customer: Fine. Please make sure it actually happens this time. You can reach me on 555-0182 if anything comes up.`,
	},
	{
		ID:          "double-charge",
		Title:       "Double charge",
		Description: "Customer was billed twice for a single purchase.",
		Transcript: `Agent: Good afternoon, billing support, this is Sam.

Customer: Hi Sam. I bought one of your standing desks on May 28th, order 51190, and my card was charged twice. Two charges of $429 each.

Agent: I'm sorry about that, let's get it fixed. Which desk model was it?

Customer: The SKU on the receipt says DSK-PRO-72.

Agent: Thank you. I can see the duplicate authorization. I'll reverse the second charge now; it should drop off your statement within three to five business days.

Customer: Okay, that works. Can you send a confirmation to marcus.t@example.com?

Agent: Done. Anything else I can help with?

Customer: No, that's all. Thanks for the quick help.`,
	},
	{
		ID:          "defective-blender",
		Title:       "Defective product",
		Description: "Customer received a blender that stopped working after two days.",
		Transcript: `Agent: Hello, product support, how can I help?

Customer: Hi. I got your BlendMax 900, SKU BLX-900-S, in order 47021. It worked for two days and then just died on June 10th. I've tried different outlets, nothing.

Agent: That's frustrating, I'm sorry. That model has a two year warranty, so we can replace it at no cost. Could you confirm your phone number in case the courier needs to reach you?

Customer: Sure, 555-0147.

Agent: Great. I'm creating the replacement now and emailing you a prepaid return label. The new unit ships tomorrow.

Customer: That was easier than I expected. Thank you.`,
	},
	{
		ID:          "cancel-subscription",
		Title:       "Subscription cancellation",
		Description: "Long-time customer wants to cancel and is weighing alternatives.",
		Transcript: `Agent: Thanks for calling, this is Priya. How can I help?

Customer: Hi Priya. I'd like to cancel my premium subscription. I've been a member for three years but I'm just not using it anymore.

Agent: I can take care of that. Before I do, would a pause of up to three months work instead? You'd keep your member pricing.

Customer: Hmm. Actually a pause might be good, I have a busy summer. Let's pause until September.

Agent: Done. The pause starts today and billing resumes September 1st. I'll send the details to the email on file, j.whitfield@example.com.

Customer: Perfect, thanks. That was painless.`,
	},
}

// All returns the full scenario catalog.
func All() []Scenario {
	out := make([]Scenario, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a scenario by its identifier.
func ByID(id string) (Scenario, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
