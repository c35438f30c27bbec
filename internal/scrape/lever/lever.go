package lever

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"jobbot-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://jobs.lever.co"

// Source scrapes posting pages hosted on jobs.lever.co.
type Source struct {
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(limiter *util.HostLimiter) *Source {
	return &Source{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (s *Source) Name() string    { return "lever" }
func (s *Source) BaseURL() string { return baseURL }

// FetchPosting retrieves a posting's description page and parses it
// into a document the extraction steps can query.
func (s *Source) FetchPosting(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("lever request: %w", err)
	}
	req.Header.Set("User-Agent", "jobbot/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, url); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("lever status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("lever parse html: %w", err)
	}
	return doc, nil
}
