package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
)

// SummarizeMeeting sends the merged transcript to the model once and parses
// the JSON object embedded in the response. Parse failures propagate:
// meeting documents are the primary deliverable and a bad summary must
// abort the row visibly.
func (s *implSummarizer) SummarizeMeeting(ctx context.Context, transcript string) (*MeetingSummary, error) {
	raw, err := s.generate(ctx, fmt.Sprintf(meetingPrompt, transcript))
	if err != nil {
		return nil, fmt.Errorf("meeting summarization: %w", err)
	}

	summary, err := parseMeetingResponse(raw)
	if err != nil {
		s.logger.Error(ctx, "Meeting summary response unparsable: %v", err)
		return nil, err
	}
	return summary, nil
}

func parseMeetingResponse(raw string) (*MeetingSummary, error) {
	blob := extractBalancedJSON(raw)
	if blob == "" {
		return nil, fmt.Errorf("response did not contain a JSON object")
	}

	var summary MeetingSummary
	if err := json.Unmarshal([]byte(blob), &summary); err != nil {
		return nil, fmt.Errorf("decode meeting summary: %w", err)
	}
	return &summary, nil
}

// SummarizeWebsite sends the extracted page text to the model and decodes
// the response with the lenient repair chain. On any failure a placeholder
// document is substituted; website summaries are secondary enrichment and
// must never fail the row.
func (s *implSummarizer) SummarizeWebsite(ctx context.Context, pageText string) *WebsiteSummary {
	raw, err := s.generate(ctx, fmt.Sprintf(websitePrompt, pageText))
	if err != nil {
		s.logger.Warn(ctx, "Website summarization call failed: %v", err)
		return placeholderWebsiteSummary()
	}

	summary := parseWebsiteResponse(raw)
	if summary == nil {
		s.logger.Warn(ctx, "Website summary response unparsable; substituting placeholder")
		return placeholderWebsiteSummary()
	}
	return summary
}

func parseWebsiteResponse(raw string) *WebsiteSummary {
	cleaned := stripFences(raw)

	blob := extractBalancedJSON(cleaned)
	if blob == "" {
		blob = cleaned
	}

	var summary WebsiteSummary
	if err := decodeLenient(blob, &summary); err != nil {
		return nil
	}

	if summary.Title == "" {
		summary.Title = "Website Summary"
	}
	return &summary
}
