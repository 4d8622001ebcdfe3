package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"wholesale-scraper/config"
	"wholesale-scraper/utils"
)

// Static fetches pages with a plain GET and no script execution. It is the
// fallback for markets whose listing markup is server-rendered, or for
// environments without a browser binary.
type Static struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewStatic returns a Static fetcher.
func NewStatic(cfg *config.Config, logger *utils.Logger) *Static {
	return &Static{cfg: cfg, logger: logger}
}

// Fetch issues one GET for url and returns the raw response body.
func (s *Static) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	c := colly.NewCollector(
		colly.UserAgent(s.cfg.UserAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(30 * time.Second)

	// Colly has no context plumbing of its own, so cancellation is checked
	// at the request boundary.
	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	var body string
	c.OnResponse(func(r *colly.Response) {
		s.logger.Debug("[fetch] %s responded with %d bytes", url, len(r.Body))
		body = string(r.Body)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	c.Wait()

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	if body == "" {
		return "", fmt.Errorf("fetch %s: empty response body", url)
	}
	return body, nil
}
