package audio

import "context"

// Chunker splits an audio file into segments that fit the transcription
// API's upload size limit.
type Chunker interface {
	// Split returns the chunk paths in chronological order. A file at or
	// below the size threshold is returned unchanged as a single path.
	Split(ctx context.Context, path string) ([]string, error)
}
