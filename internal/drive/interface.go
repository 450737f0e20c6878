package drive

import "context"

// Store is the remote file store the pipeline downloads recordings from and
// uploads generated documents to.
type Store interface {
	// Download streams the file behind a shareable link (or raw file id)
	// to destPath, retrying transient errors per the configured policy.
	Download(ctx context.Context, link, destPath string) error

	// Upload sends a local file into the destination folder and returns
	// its canonical shareable link.
	Upload(ctx context.Context, path, folderID string) (string, error)
}
