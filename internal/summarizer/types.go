package summarizer

// Action plan category keys produced by the meeting schema. Rendering
// iterates them in this exact order.
const (
	CategoryDecisions = "decision_made"
	CategoryServices  = "key_services_to_promote"
	CategoryGeography = "target_geography"
	CategoryBudget    = "budget_and_timeline"
	CategoryLeads     = "lead_management_strategy"
	CategoryNextSteps = "next_steps_and_ownership"
)

// MeetingSummary is the structured result of summarizing one merged meeting
// transcript. Produced exactly once per intake row.
type MeetingSummary struct {
	Mom        []string            `json:"mom"`
	TodoList   []string            `json:"todo_list"`
	ActionPlan map[string][]string `json:"action_plan"`
}

// WebsiteSummary is the structured result of summarizing extracted page
// text.
type WebsiteSummary struct {
	Title    string           `json:"title"`
	Sections []WebsiteSection `json:"sections"`
}

// WebsiteSection holds a heading plus newline-joined bullet content with
// optional **bold** spans.
type WebsiteSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// placeholderWebsiteSummary is substituted when the model response cannot
// be repaired into valid JSON. Website summarization never fails the row.
func placeholderWebsiteSummary() *WebsiteSummary {
	return &WebsiteSummary{
		Title: "Summary Unavailable",
		Sections: []WebsiteSection{
			{
				Heading: "Error",
				Content: "The model returned invalid or incomplete JSON. The system attempted auto-repair but failed.",
			},
		},
	}
}
