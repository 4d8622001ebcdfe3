package wholesale

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wholesale-scraper/models"
	"wholesale-scraper/services"
)

const (
	productBlockSelector = "div.product-card"

	missingField = "N/A"
)

// ExtractPage locates every product block in the document and builds one
// record per block. Blocks with no child elements at all are skipped with a
// warning; blocks that merely lack expected sub-elements still produce a
// record with defaulted fields.
func (p *Pipeline) ExtractPage(doc *goquery.Document, pageURL string) []*models.ListingRecord {
	var records []*models.ListingRecord

	doc.Find(productBlockSelector).Each(func(i int, block *goquery.Selection) {
		if block.Children().Length() == 0 {
			p.logger.Warn("[wholesale] Skipping malformed product block %d on %s", i, pageURL)
			return
		}
		records = append(records, extractBlock(block, pageURL))
	})

	return records
}

// extractBlock pulls each field independently; a missing sub-element or
// attribute substitutes the field's default rather than failing the record.
func extractBlock(block *goquery.Selection, pageURL string) *models.ListingRecord {
	resaleTerms := selectText(block, "div.resale-policy", "")

	signals := models.TrustSignals{
		Reviews:     selectText(block, "span.review-count", missingField),
		Rating:      selectText(block, "span.rating", missingField),
		YearsActive: selectText(block, "span.years-active", missingField),
	}

	return &models.ListingRecord{
		Category:     categoryFromURL(pageURL),
		StoreName:    selectText(block, "h2", missingField),
		Price:        selectText(block, "span.price", missingField),
		Contact:      selectAttr(block, "a.contact-link", "href", missingField),
		Address:      selectText(block, "span.address", missingField),
		ResaleStatus: services.ClassifyResale(resaleTerms),
		TrustScore:   services.TrustScore(signals),
		StoreURL:     pageURL,
	}
}

// selectText returns the trimmed text of the first match of selector under
// sel, or def when there is no match.
func selectText(sel *goquery.Selection, selector, def string) string {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return def
	}
	return strings.TrimSpace(found.Text())
}

// selectAttr returns the named attribute of the first match of selector
// under sel, or def when the element or attribute is absent.
func selectAttr(sel *goquery.Selection, selector, attr, def string) string {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return def
	}
	val, ok := found.Attr(attr)
	if !ok {
		return def
	}
	return val
}

// categoryFromURL derives the record category from the final /-separated
// segment of the raw source URL.
func categoryFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
