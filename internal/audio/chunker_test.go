package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

// fakeExecutor records invocations and serves canned ffprobe output.
type fakeExecutor struct {
	calls    [][]string
	duration string
	failOn   string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failOn != "" && name == f.failOn {
		return "", fmt.Errorf("%s exploded", name)
	}
	if name == "ffprobe" {
		return f.duration + "\n", nil
	}
	return "", nil
}

func writeTempAudio(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.m4a")
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitBelowThreshold(t *testing.T) {
	path := writeTempAudio(t, 100)
	exec := &fakeExecutor{}
	c := New(1024, 900, exec, logger.New("error"))

	chunks, err := c.Split(context.Background(), path)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(chunks) != 1 || chunks[0] != path {
		t.Errorf("Split() = %v, want [%s]", chunks, path)
	}
	if len(exec.calls) != 0 {
		t.Errorf("expected no external commands for small file, got %d", len(exec.calls))
	}
}

func TestSplitAtThresholdExactly(t *testing.T) {
	path := writeTempAudio(t, 1024)
	exec := &fakeExecutor{}
	c := New(1024, 900, exec, logger.New("error"))

	chunks, err := c.Split(context.Background(), path)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 1 || chunks[0] != path {
		t.Errorf("Split() = %v, want the original path unchanged", chunks)
	}
}

func TestSplitAboveThreshold(t *testing.T) {
	path := writeTempAudio(t, 2048)
	// 2100 seconds at 900s per chunk -> 3 chunks
	exec := &fakeExecutor{duration: "2100.50"}
	c := New(1024, 900, exec, logger.New("error"))

	chunks, err := c.Split(context.Background(), path)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("Split() returned %d chunks, want 3", len(chunks))
	}

	base := strings.TrimSuffix(path, ".m4a")
	for i, chunk := range chunks {
		want := fmt.Sprintf("%s_part%d.m4a", base, i)
		if chunk != want {
			t.Errorf("chunk[%d] = %s, want %s", i, chunk, want)
		}
	}

	// One ffprobe call plus one ffmpeg call per chunk.
	if len(exec.calls) != 4 {
		t.Fatalf("expected 4 external commands, got %d", len(exec.calls))
	}
	if exec.calls[0][0] != "ffprobe" {
		t.Errorf("first call = %s, want ffprobe", exec.calls[0][0])
	}
	for _, call := range exec.calls[1:] {
		if call[0] != "ffmpeg" {
			t.Errorf("chunk call = %s, want ffmpeg", call[0])
		}
	}
}

func TestSplitPropagatesFfmpegError(t *testing.T) {
	path := writeTempAudio(t, 2048)
	exec := &fakeExecutor{duration: "1000", failOn: "ffmpeg"}
	c := New(1024, 900, exec, logger.New("error"))

	if _, err := c.Split(context.Background(), path); err == nil {
		t.Error("Split() should propagate ffmpeg failures")
	}
}

func TestSplitMissingFile(t *testing.T) {
	c := New(1024, 900, &fakeExecutor{}, logger.New("error"))
	if _, err := c.Split(context.Background(), "does-not-exist.m4a"); err == nil {
		t.Error("Split() should fail for a missing file")
	}
}
