package lever

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"jobbot-engine/internal/domain"
	"jobbot-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// ParsePosting runs the extraction steps in a fixed order. Each step is
// isolated: a missing or malformed region leaves its field absent and
// the rest of the parse continues.
func (s *Source) ParsePosting(doc *goquery.Document, link domain.LinkRecord) domain.PostingRecord {
	rec := domain.PostingRecord{
		PostingURL:  link.DescriptionURL,
		ApplyURL:    link.ApplicationURL,
		ScrapedDate: time.Now().Format("01/02/2006"),
	}

	parseTitleTag(doc, &rec)
	if rec.Location == "" {
		rec.Location = util.TrimRegion(doc.Find("div.location").First().Text())
	}
	rec.Team = util.TrimRegion(doc.Find("div.department").First().Text())
	rec.Hours = util.TrimRegion(doc.Find("div.commitment").First().Text())
	rec.WFH = util.TrimRegion(doc.Find("div.workplaceTypes").First().Text())
	parseDescAndQual(doc, &rec)
	parseSalary(doc, &rec)

	return rec
}

// parseTitleTag splits the page title on "-": first segment is the
// company, last is the role. A "remote" mention in the title wins over
// whatever the location region says.
func parseTitleTag(doc *goquery.Document, rec *domain.PostingRecord) {
	full := doc.Find("title").First().Text()
	if strings.TrimSpace(full) == "" {
		return
	}

	parts := strings.Split(full, "-")
	rec.Company = strings.TrimSpace(parts[0])
	rec.Title = strings.TrimSpace(parts[len(parts)-1])

	if strings.Contains(strings.ToLower(full), "remote") {
		rec.Location = "Remote"
	}
}

// parseDescAndQual reads the posting's content sections: the second
// section's list items are the description, the third's are the
// qualifications.
func parseDescAndQual(doc *goquery.Document, rec *domain.PostingRecord) {
	sections := doc.Find("div.section.page-centered")
	if sections.Length() > 1 {
		rec.Desc = cleanListItems(sections.Eq(1))
	}
	if sections.Length() > 2 {
		rec.Qual = cleanListItems(sections.Eq(2))
	}
}

// cleanListItems joins a section's list items with single spaces,
// dropping stubs of three characters or fewer and stripping bracket
// and quote characters boards embed in their markup.
func cleanListItems(sec *goquery.Selection) string {
	var items []string
	sec.Find("li").Each(func(_ int, li *goquery.Selection) {
		t := strings.NewReplacer("[", "", "]", "").Replace(li.Text())
		t = util.CleanText(t)
		if len(t) <= 3 {
			return
		}
		items = append(items, strings.ReplaceAll(t, `"`, ""))
	})
	return strings.Join(items, " ")
}

var moneyStrip = strings.NewReplacer(",", "", "$", "", ".", "", "-", "")

// parseSalary looks for the salary-range section, falling back to the
// closing description, and takes the two largest currency-marked
// numbers in it as the range.
func parseSalary(doc *goquery.Document, rec *domain.PostingRecord) {
	sec := doc.Find(`div.section.page-centered[data-qa="salary-range"]`).First()
	if sec.Length() == 0 {
		sec = doc.Find(`div.section.page-centered[data-qa="closing-description"]`).First()
	}
	if sec.Length() == 0 {
		return
	}

	nums := parseMoneyTokens(sec.Text())
	if len(nums) < 2 {
		return
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(nums)))
	rec.MaxSalary = &nums[0]
	rec.MinSalary = &nums[1]
}

// parseMoneyTokens pulls every whitespace-delimited token carrying a
// currency marker out of a text blob and parses it as a number after
// stripping punctuation. Unparseable tokens are skipped.
func parseMoneyTokens(text string) []float64 {
	var out []float64
	for _, tok := range strings.Fields(text) {
		if !strings.Contains(tok, "$") {
			continue
		}
		n, err := strconv.ParseFloat(moneyStrip.Replace(tok), 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
