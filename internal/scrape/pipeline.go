package scrape

import (
	"context"
	"log"
	"sync"

	"jobbot-engine/internal/domain"
	"jobbot-engine/internal/geo"

	"golang.org/x/sync/errgroup"
)

// Pipeline turns candidate link records into qualifying posting
// records: fetch the description page, parse it, keep the posting only
// if its location classifies as US-based. The reference tables are
// loaded before the pipeline runs and are read-only, so fetch+parse can
// run on more than one worker; Workers defaults to 1, which keeps the
// historical serial behavior.
type Pipeline struct {
	Source  PostingSource
	Tables  *geo.ReferenceTables
	Workers int
}

// Run processes each candidate best-effort: a fetch failure or an
// indeterminate location skips that posting only, never the batch.
func (p Pipeline) Run(ctx context.Context, candidates []domain.LinkRecord) []domain.PostingRecord {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu  sync.Mutex
		out []domain.PostingRecord
	)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, link := range candidates {
		link := link
		g.Go(func() error {
			doc, err := p.Source.FetchPosting(ctx, link.DescriptionURL)
			if err != nil {
				log.Printf("[%s] fetch failed url=%q err=%v", p.Source.Name(), link.DescriptionURL, err)
				return nil
			}

			rec := p.Source.ParsePosting(doc, link)

			verdict := geo.Classify(geo.Tokenize(rec.Location), p.Tables)
			if verdict != geo.US {
				log.Printf("[%s] skipped (%s) location=%q url=%q",
					p.Source.Name(), verdict, rec.Location, link.DescriptionURL)
				return nil
			}

			mu.Lock()
			out = append(out, rec)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}
