package transcriber

import (
	"context"
	"fmt"
	"strings"
)

// TranscribeFile chunks the source file, transcribes each chunk in order and
// concatenates the texts with a blank-line separator. A failed chunk is
// fatal for the whole file; the error names the chunk so the caller can tell
// which part of the recording broke.
func (t *implTranscriber) TranscribeFile(ctx context.Context, path string) (string, error) {
	chunks, err := t.chunker.Split(ctx, path)
	if err != nil {
		return "", fmt.Errorf("chunk audio %s: %w", path, err)
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		t.logger.Info(ctx, "Transcribing chunk %d/%d of %s", i+1, len(chunks), path)

		text, err := t.translate(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("transcribe chunk %d/%d of %s: %w", i+1, len(chunks), path, err)
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	return strings.Join(parts, "\n\n"), nil
}
