package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

type fakeChunker struct {
	chunks []string
	err    error
}

func (f *fakeChunker) Split(ctx context.Context, path string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.chunks == nil {
		return []string{path}, nil
	}
	return f.chunks, nil
}

func newForTest(chunker *fakeChunker, translate func(ctx context.Context, path string) (string, error)) *implTranscriber {
	return &implTranscriber{
		chunker:   chunker,
		logger:    logger.New("error"),
		translate: translate,
	}
}

func TestTranscribeFileSingleChunk(t *testing.T) {
	tr := newForTest(&fakeChunker{}, func(ctx context.Context, path string) (string, error) {
		return "  hello world  ", nil
	})

	got, err := tr.TranscribeFile(context.Background(), "meeting.m4a")
	if err != nil {
		t.Fatalf("TranscribeFile() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("TranscribeFile() = %q, want %q", got, "hello world")
	}
}

func TestTranscribeFileConcatenatesChunksInOrder(t *testing.T) {
	chunker := &fakeChunker{chunks: []string{"a_part0.m4a", "a_part1.m4a", "a_part2.m4a"}}
	tr := newForTest(chunker, func(ctx context.Context, path string) (string, error) {
		return "text of " + path, nil
	})

	got, err := tr.TranscribeFile(context.Background(), "a.m4a")
	if err != nil {
		t.Fatalf("TranscribeFile() error = %v", err)
	}

	want := "text of a_part0.m4a\n\ntext of a_part1.m4a\n\ntext of a_part2.m4a"
	if got != want {
		t.Errorf("TranscribeFile() = %q, want %q", got, want)
	}
}

func TestTranscribeFileChunkFailureIsFatal(t *testing.T) {
	chunker := &fakeChunker{chunks: []string{"a_part0.m4a", "a_part1.m4a"}}
	boom := errors.New("api unreachable")
	tr := newForTest(chunker, func(ctx context.Context, path string) (string, error) {
		if path == "a_part1.m4a" {
			return "", boom
		}
		return "ok", nil
	})

	_, err := tr.TranscribeFile(context.Background(), "a.m4a")
	if !errors.Is(err, boom) {
		t.Fatalf("TranscribeFile() error = %v, want wrapped %v", err, boom)
	}
	// The error names the failing chunk and the source file.
	if !strings.Contains(err.Error(), "chunk 2/2") || !strings.Contains(err.Error(), "a.m4a") {
		t.Errorf("error %q should identify chunk and file", err)
	}
}

func TestTranscribeFileChunkerError(t *testing.T) {
	tr := newForTest(&fakeChunker{err: fmt.Errorf("ffmpeg broke")}, nil)

	if _, err := tr.TranscribeFile(context.Background(), "a.m4a"); err == nil {
		t.Error("TranscribeFile() should propagate chunker errors")
	}
}
