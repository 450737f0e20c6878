package processor

import (
	"time"

	"github.com/ndhoang2103/meeting-intake/internal/docgen"
	"github.com/ndhoang2103/meeting-intake/internal/drive"
	"github.com/ndhoang2103/meeting-intake/internal/logger"
	"github.com/ndhoang2103/meeting-intake/internal/sheets"
	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
	"github.com/ndhoang2103/meeting-intake/internal/transcriber"
	"github.com/ndhoang2103/meeting-intake/internal/website"
)

type implProcessor struct {
	repo        sheets.Repository
	store       drive.Store
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	renderer    docgen.Renderer
	fetcher     website.Fetcher
	folders     Folders
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Processor wired to the given collaborators.
func New(
	repo sheets.Repository,
	store drive.Store,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	renderer docgen.Renderer,
	fetcher website.Fetcher,
	folders Folders,
	log logger.Logger,
) Processor {
	return &implProcessor{
		repo:        repo,
		store:       store,
		transcriber: tr,
		summarizer:  sum,
		renderer:    renderer,
		fetcher:     fetcher,
		folders:     folders,
		logger:      log,
		now:         time.Now,
	}
}
