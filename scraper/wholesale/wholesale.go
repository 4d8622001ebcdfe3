package wholesale

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"wholesale-scraper/config"
	"wholesale-scraper/fetch"
	"wholesale-scraper/storage"
	"wholesale-scraper/utils"
)

// seedURLs is the compiled-in start list, one rendered-page request each.
// Placeholder URLs; swap in real targets after checking robots.txt/ToS.
var seedURLs = []string{
	"https://www.alibaba.com/trade/search?fsb=y&IndexArea=product_en&CatId=&SearchText=gpu",
	"https://www.wholesalecentral.com/electronics.htm",
	"https://www.dhgate.com/wholesale/drones.html",
}

// Pipeline drives the scrape: fetch each seed page, extract its product
// blocks, and hand every record to all configured sinks. Strictly
// sequential — one page at a time, one block at a time, in seed order.
type Pipeline struct {
	cfg     *config.Config
	logger  *utils.Logger
	fetcher fetch.Fetcher
	sinks   []storage.RecordWriter
}

// New creates a ready-to-run Pipeline writing to the given sinks.
func New(cfg *config.Config, logger *utils.Logger, fetcher fetch.Fetcher, sinks ...storage.RecordWriter) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetcher,
		sinks:   sinks,
	}
}

// SeedURLs returns the compiled-in start list.
func (p *Pipeline) SeedURLs() []string {
	return seedURLs
}

// Run processes every seed URL and returns the number of records handed to
// the sinks. Fetch, parse and sink failures are logged and skipped; nothing
// aborts the run.
func (p *Pipeline) Run(ctx context.Context) int {
	total := 0

	for _, url := range seedURLs {
		p.logger.Info("[wholesale] Fetching %s", url)

		html, err := p.fetcher.Fetch(ctx, url)
		if err != nil {
			p.logger.Error("[wholesale] Fetch failed for %s: %v", url, err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			p.logger.Error("[wholesale] Parse failed for %s: %v", url, err)
			continue
		}

		records := p.ExtractPage(doc, url)
		p.logger.Info("[wholesale] %s — extracted %d listings", url, len(records))

		for _, rec := range records {
			rec.DateScraped = time.Now().UTC()
			for _, sink := range p.sinks {
				if err := sink.Write(rec); err != nil {
					p.logger.Error("[wholesale] Sink write failed for %q: %v", rec.StoreName, err)
				}
			}
			total++
		}
	}

	p.logger.Info("[wholesale] Run complete — %d records total", total)
	return total
}
