package docgen

import (
	"fmt"
	"path/filepath"

	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
)

// Filename suffixes per document kind.
const (
	suffixMeetingNotes = "Meeting Notes.docx"
	suffixMom          = "MoM Summary.docx"
	suffixAction       = "Action Points Summary.docx"
	suffixWebsite      = "Website Summary.docx"
)

// RenderMeeting builds the document plan for the given mode and writes it
// to a temp file named {client}_{date}_{kind}.docx.
func (r *implRenderer) RenderMeeting(summary *summarizer.MeetingSummary, clientName string, meetingDate interface{}, mode Mode) (*Document, error) {
	date := formatMeetingDate(meetingDate)

	var suffix string
	switch mode {
	case ModeFull:
		suffix = suffixMeetingNotes
	case ModeMom:
		suffix = suffixMom
	case ModeAction:
		suffix = suffixAction
	default:
		return nil, fmt.Errorf("unknown document mode %q", mode)
	}

	filename := fmt.Sprintf("%s_%s_%s", clientName, date, suffix)
	path := filepath.Join(r.outDir, filename)

	if err := writeDocx(meetingBlocks(summary, clientName, date, mode), path); err != nil {
		return nil, fmt.Errorf("write %s: %w", filename, err)
	}

	return &Document{Filename: filename, Path: path}, nil
}

// RenderWebsite writes the website summary document.
func (r *implRenderer) RenderWebsite(summary *summarizer.WebsiteSummary, clientName string, meetingDate interface{}) (*Document, error) {
	date := formatMeetingDate(meetingDate)

	filename := fmt.Sprintf("%s_%s_%s", clientName, date, suffixWebsite)
	path := filepath.Join(r.outDir, filename)

	if err := writeDocx(websiteBlocks(summary, clientName, date), path); err != nil {
		return nil, fmt.Errorf("write %s: %w", filename, err)
	}

	return &Document{Filename: filename, Path: path}, nil
}
