package fetch

import "context"

// Fetcher returns the markup of a single page. The pipeline treats the
// result as opaque raw HTML plus the original URL it asked for.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
