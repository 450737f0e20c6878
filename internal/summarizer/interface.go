package summarizer

import "context"

// Summarizer turns raw text into the structured summary schemas. The
// meeting variant propagates parse failures because meeting documents are
// the primary deliverable; the website variant degrades to a placeholder
// instead.
type Summarizer interface {
	SummarizeMeeting(ctx context.Context, transcript string) (*MeetingSummary, error)
	SummarizeWebsite(ctx context.Context, pageText string) *WebsiteSummary
}
