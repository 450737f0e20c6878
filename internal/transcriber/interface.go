package transcriber

import "context"

// Transcriber converts one source audio file into text. Oversized files are
// chunked first; chunk transcripts are joined with a blank line in order.
type Transcriber interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}
