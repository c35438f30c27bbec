package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Verdict is the three-valued outcome of a location classification.
// Only an explicit US verdict passes the persistence gate.
type Verdict int

const (
	Unknown Verdict = iota
	US
	NonUS
)

func (v Verdict) String() string {
	switch v {
	case US:
		return "us"
	case NonUS:
		return "non-us"
	default:
		return "unknown"
	}
}

var diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokenize splits a location blob into lowercase, comma-stripped,
// diacritic-folded tokens, deduplicated in encounter order.
func Tokenize(location string) []string {
	if folded, _, err := transform.String(diacritics, location); err == nil {
		location = folded
	}
	location = strings.ReplaceAll(strings.ToLower(location), ",", "")

	seen := map[string]bool{}
	var out []string
	for _, tok := range strings.Fields(location) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Classify walks the tokens in order and returns on the first table
// hit. 2-letter tokens are tried against state abbreviations before
// anything else because they are otherwise ambiguous; the foreign
// country check runs before the affirmative state/city checks so a
// single unambiguous foreign token can veto the rest of its token.
func Classify(tokens []string, tables *ReferenceTables) Verdict {
	for _, tok := range tokens {
		if len(tok) == 2 && tables.StatesAbbrev.Contains(tok) {
			return US
		}
		if tables.Countries.Contains(tok) {
			return NonUS
		}
		if tables.StatesFull.Contains(tok) {
			return US
		}
		if tables.USCities.Contains(tok) {
			return US
		}
		if tables.NonUSCities.Contains(tok) {
			return NonUS
		}
	}
	return Unknown
}
