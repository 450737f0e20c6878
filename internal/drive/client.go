package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	drivesvc "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

// Client implements Store against the Google Drive v3 API.
type Client struct {
	service *drivesvc.Service
	retry   RetryPolicy
	logger  logger.Logger
}

// NewClient builds a Store over the given authenticated HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client, retry RetryPolicy, log logger.Logger) (*Client, error) {
	service, err := drivesvc.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Client{
		service: service,
		retry:   retry,
		logger:  log,
	}, nil
}

// Download resolves the file id from the link and streams the content to
// destPath. Transient errors are retried with exponential backoff; after
// exhausting the attempts the partially written bytes are synced and the
// error is surfaced with the attempt count.
func (c *Client) Download(ctx context.Context, link, destPath string) error {
	fileID := ExtractFileID(link)

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer f.Close()

	attempts, err := c.retry.run(ctx, func() error {
		resp, err := c.service.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
		if err != nil {
			c.logger.Warn(ctx, "Download error for %s: %v", fileID, err)
			return err
		}
		defer resp.Body.Close()

		// A retried attempt rewrites the file from the start.
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := f.Truncate(0); err != nil {
			return err
		}

		n, err := io.Copy(f, resp.Body)
		if err != nil {
			c.logger.Warn(ctx, "Download interrupted for %s after %d bytes: %v", fileID, n, err)
			return err
		}

		c.logger.Debug(ctx, "Downloaded %d bytes for %s", n, fileID)
		return nil
	})
	if err != nil {
		if syncErr := f.Sync(); syncErr != nil {
			c.logger.Warn(ctx, "Failed to sync partial download %s: %v", destPath, syncErr)
		}
		return fmt.Errorf("drive download failed after %d attempt(s): %w", attempts, err)
	}

	return nil
}

// Upload sends the file at path into folderID with a resumable media upload
// and returns the canonical shareable link. Shared-drive destinations are
// supported.
func (c *Client) Upload(ctx context.Context, path, folderID string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open upload source: %w", err)
	}
	defer f.Close()

	meta := &drivesvc.File{
		Name:    filepath.Base(path),
		Parents: []string{folderID},
	}

	var fileID string
	attempts, err := c.retry.run(ctx, func() error {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		created, err := c.service.Files.Create(meta).
			SupportsAllDrives(true).
			Media(f).
			Fields("id").
			Context(ctx).
			Do()
		if err != nil {
			c.logger.Warn(ctx, "Upload error for %s: %v", meta.Name, err)
			return err
		}
		fileID = created.Id
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("drive upload failed after %d attempt(s): %w", attempts, err)
	}

	link := fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
	c.logger.Info(ctx, "Uploaded %s -> %s", meta.Name, link)
	return link, nil
}
