package links

import (
	"strings"

	"jobbot-engine/internal/domain"
)

// Validate reports whether raw looks like a specific posting URL on the
// board rooted at base: prefix match, no search-query marker, and more
// than one path segment past the base (listing pages have one).
func Validate(raw, base string) bool {
	if raw == "" || len(raw) <= len(base) {
		return false
	}
	if !strings.HasPrefix(raw, base) {
		return false
	}
	if strings.Contains(raw, "/?q=") {
		return false
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(raw, base), "/")
	return len(strings.Split(rest, "/")) > 1
}

// Process validates and normalizes raw scraped URLs into paired link
// records and appends every produced URL to the history store. Invalid
// URLs are dropped silently: search results are mostly noise.
func Process(raw []string, base string, hist *History) []domain.LinkRecord {
	var out []domain.LinkRecord
	for _, u := range raw {
		u = Canonicalize(u)
		if !Validate(u, base) {
			continue
		}

		var rec domain.LinkRecord
		segs := strings.Split(u, "/")
		last := segs[len(segs)-1]
		if strings.EqualFold(last, "apply") {
			rec.ApplicationURL = u
			rec.DescriptionURL = strings.TrimSuffix(u, last)
		} else {
			rec.DescriptionURL = u
			if !strings.HasSuffix(u, "/") {
				u += "/"
			}
			rec.ApplicationURL = u + "apply"
		}

		if hist != nil {
			hist.Record(rec.ApplicationURL, rec.DescriptionURL)
		}
		out = append(out, rec)
	}
	return out
}
