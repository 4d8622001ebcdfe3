package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"wholesale-scraper/config"
	"wholesale-scraper/utils"
)

// Renderer fetches pages through a headless browser so that script-built
// markup is present before extraction. One browser allocator is shared
// across the run; each page gets a fresh tab context.
type Renderer struct {
	cfg    *config.Config
	logger *utils.Logger

	allocCtx     context.Context
	cancelAlloc  context.CancelFunc
	cancelSilent context.CancelFunc
}

// NewRenderer starts a headless browser allocator and returns a ready Renderer.
func NewRenderer(cfg *config.Config, logger *utils.Logger) *Renderer {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	logger.Info("[fetch] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(cfg.UserAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))

	return &Renderer{
		cfg:          cfg,
		logger:       logger,
		allocCtx:     silentCtx,
		cancelAlloc:  cancelAlloc,
		cancelSilent: cancelSilent,
	}
}

// Fetch navigates to url, waits the configured hint for scripts to settle,
// and returns the rendered document markup.
func (r *Renderer) Fetch(ctx context.Context, url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 90*time.Second)
	defer cancelTimeout()

	// Tab contexts must descend from the allocator, so caller cancellation
	// is bridged in rather than inherited.
	go func() {
		select {
		case <-ctx.Done():
			cancelTimeout()
		case <-tabCtx.Done():
		}
	}()

	wait := time.Duration(r.cfg.RenderWaitMs) * time.Millisecond

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(wait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}

	return html, nil
}

// Close shuts down the shared browser allocator.
func (r *Renderer) Close() {
	r.cancelSilent()
	r.cancelAlloc()
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path over PATH lookup and well-known install locations.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
