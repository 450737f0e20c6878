package website

import "context"

// Fetcher retrieves the readable text content of a web page.
type Fetcher interface {
	ExtractText(ctx context.Context, url string) (string, error)
}
