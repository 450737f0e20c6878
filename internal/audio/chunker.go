package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Split checks the file size against the threshold and either returns the
// original path or cuts the audio into fixed-duration segments. Segments are
// stream-copied, so chunk boundaries land on the nearest preceding keyframe
// without re-encoding the audio.
func (c *implChunker) Split(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat audio file: %w", err)
	}

	if info.Size() <= c.maxBytes {
		return []string{path}, nil
	}

	duration, err := c.probeDuration(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("probe duration of %s: %w", path, err)
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	ext := filepath.Ext(path)

	var chunks []string
	for i, start := 0, 0.0; start < duration; i, start = i+1, start+float64(c.chunkSeconds) {
		chunkPath := fmt.Sprintf("%s_part%d%s", base, i, ext)

		// -ss before -i seeks on the input; -t bounds the segment length.
		// The last segment simply runs out of input and ends up shorter.
		args := []string{
			"-y",
			"-ss", strconv.FormatFloat(start, 'f', 3, 64),
			"-i", path,
			"-t", strconv.Itoa(c.chunkSeconds),
			"-c", "copy",
			chunkPath,
		}

		if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return nil, fmt.Errorf("ffmpeg chunk %d of %s: %w", i, path, err)
		}
		chunks = append(chunks, chunkPath)
	}

	c.logger.Info(ctx, "Split %s into %d chunks of %d seconds each", path, len(chunks), c.chunkSeconds)
	return chunks, nil
}

// probeDuration asks ffprobe for the container duration in seconds.
func (c *implChunker) probeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := c.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("ffprobe reported non-positive duration %f", duration)
	}

	return duration, nil
}
