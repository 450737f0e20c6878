package docgen

import (
	"os"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

type implRenderer struct {
	outDir string
	logger logger.Logger
}

// New creates a Renderer writing artifacts into the OS temp directory.
func New(log logger.Logger) Renderer {
	return &implRenderer{
		outDir: os.TempDir(),
		logger: log,
	}
}
