package audio

import (
	"github.com/ndhoang2103/meeting-intake/internal/logger"
	"github.com/ndhoang2103/meeting-intake/pkg/executor"
)

type implChunker struct {
	maxBytes     int64
	chunkSeconds int
	executor     executor.Executor
	logger       logger.Logger
}

// New creates a Chunker that slices files larger than maxBytes into
// consecutive chunks of chunkSeconds each.
func New(maxBytes int64, chunkSeconds int, exec executor.Executor, log logger.Logger) Chunker {
	return &implChunker{
		maxBytes:     maxBytes,
		chunkSeconds: chunkSeconds,
		executor:     exec,
		logger:       log,
	}
}
