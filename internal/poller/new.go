package poller

import (
	"time"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
	"github.com/ndhoang2103/meeting-intake/internal/processor"
	"github.com/ndhoang2103/meeting-intake/internal/sheets"
)

type implPoller struct {
	repo      sheets.Repository
	processor processor.Processor
	interval  time.Duration
	logger    logger.Logger
}

// New creates a Poller sweeping repo every interval.
func New(repo sheets.Repository, proc processor.Processor, interval time.Duration, log logger.Logger) Poller {
	return &implPoller{
		repo:      repo,
		processor: proc,
		interval:  interval,
		logger:    log,
	}
}
