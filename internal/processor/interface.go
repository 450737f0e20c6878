package processor

import (
	"context"

	"github.com/ndhoang2103/meeting-intake/internal/sheets"
)

// Processor drives one intake row through the pipeline: download and
// transcribe audio, summarize once, render and upload documents, propagate
// to-dos, write the outcome cells back.
type Processor interface {
	ProcessRow(ctx context.Context, row sheets.IntakeRow) error
}

// Folders holds the Drive destination folder ids per document kind.
// Meeting notes go to Kickstart when the row's meeting type says so.
type Folders struct {
	Regular   string
	Kickstart string
	Mom       string
	Action    string
	Website   string
}
