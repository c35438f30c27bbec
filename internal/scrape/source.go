package scrape

import (
	"context"

	"jobbot-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// PostingSource is one supported job board. It knows how that board's
// posting URLs look, fetches a posting's description page, and extracts
// the structured fields from it. Only Lever is implemented today; new
// boards add an implementation, not a subclass hierarchy.
type PostingSource interface {
	Name() string

	// BaseURL is the canonical posting-URL prefix the Link Processor
	// validates against, e.g. https://jobs.lever.co.
	BaseURL() string

	// FetchPosting retrieves and parses a posting's description page.
	FetchPosting(ctx context.Context, url string) (*goquery.Document, error)

	// ParsePosting extracts posting fields from a fetched page. A field
	// that cannot be extracted stays absent; parsing never fails as a
	// whole.
	ParsePosting(doc *goquery.Document, link domain.LinkRecord) domain.PostingRecord
}
