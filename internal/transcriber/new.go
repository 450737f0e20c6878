package transcriber

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ndhoang2103/meeting-intake/internal/audio"
	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

type implTranscriber struct {
	chunker audio.Chunker
	logger  logger.Logger

	// translate sends one chunk to the speech-to-text API. Swappable in
	// tests.
	translate func(ctx context.Context, path string) (string, error)
}

// New creates a Transcriber backed by the OpenAI audio translations API,
// so non-English recordings come back as English text.
func New(apiKey, model string, chunker audio.Chunker, log logger.Logger) Transcriber {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &implTranscriber{
		chunker: chunker,
		logger:  log,
		translate: func(ctx context.Context, path string) (string, error) {
			f, err := os.Open(path)
			if err != nil {
				return "", fmt.Errorf("open audio chunk: %w", err)
			}
			defer f.Close()

			resp, err := client.Audio.Translations.New(ctx, openai.AudioTranslationNewParams{
				Model: openai.AudioModel(model),
				File:  f,
			})
			if err != nil {
				return "", err
			}
			return resp.Text, nil
		},
	}
}
