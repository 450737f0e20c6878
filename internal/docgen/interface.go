package docgen

import (
	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
)

// Mode selects which parts of the meeting summary a document includes.
type Mode string

const (
	ModeFull   Mode = "full"   // minutes + to-do list + action plan
	ModeMom    Mode = "mom"    // minutes only
	ModeAction Mode = "action" // action plan only
)

// Document is a rendered artifact waiting to be uploaded. The file lives in
// the OS temp directory and is not cleaned up proactively.
type Document struct {
	Filename string
	Path     string
}

// Renderer turns structured summaries into DOCX artifacts.
type Renderer interface {
	RenderMeeting(summary *summarizer.MeetingSummary, clientName string, meetingDate interface{}, mode Mode) (*Document, error)
	RenderWebsite(summary *summarizer.WebsiteSummary, clientName string, meetingDate interface{}) (*Document, error)
}
