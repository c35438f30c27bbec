package lever

import (
	"strings"
	"testing"
	"time"

	"jobbot-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

var testLink = domain.LinkRecord{
	DescriptionURL: "https://jobs.lever.co/acme/123/",
	ApplicationURL: "https://jobs.lever.co/acme/123/apply",
}

const postingHTML = `<html>
<head><title>Acme - Senior Gopher</title></head>
<body>
  <div class="location">Austin, TX /</div>
  <div class="department">Engineering /</div>
  <div class="commitment">Full-time /</div>
  <div class="workplaceTypes">Hybrid /</div>
  <div class="section page-centered"><p>About Acme</p></div>
  <div class="section page-centered">
    <ul>
      <li>Build services in Go</li>
      <li>x</li>
      <li>[Own] "deploys"</li>
    </ul>
  </div>
  <div class="section page-centered">
    <ul>
      <li>5+ years experience</li>
      <li>ab</li>
    </ul>
  </div>
  <div class="section page-centered" data-qa="salary-range">
    The range for this role is $120,000 to $150,000 annually.
  </div>
</body>
</html>`

func TestParsePosting(t *testing.T) {
	s := New(nil)
	rec := s.ParsePosting(docFromHTML(t, postingHTML), testLink)

	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, "Senior Gopher", rec.Title)
	assert.Equal(t, "Austin, TX", rec.Location)
	assert.Equal(t, "Engineering", rec.Team)
	assert.Equal(t, "Full-time", rec.Hours)
	assert.Equal(t, "Hybrid", rec.WFH)
	assert.Equal(t, "Build services in Go Own deploys", rec.Desc)
	assert.Equal(t, "5+ years experience", rec.Qual)

	require.NotNil(t, rec.MinSalary)
	require.NotNil(t, rec.MaxSalary)
	assert.Equal(t, 120000.0, *rec.MinSalary)
	assert.Equal(t, 150000.0, *rec.MaxSalary)

	assert.Equal(t, testLink.DescriptionURL, rec.PostingURL)
	assert.Equal(t, testLink.ApplicationURL, rec.ApplyURL)
	assert.Equal(t, time.Now().Format("01/02/2006"), rec.ScrapedDate)
	assert.False(t, rec.Applied)
}

func TestParseTitleRemoteWinsOverLocationRegion(t *testing.T) {
	html := `<html>
<head><title>Acme - Staff Engineer (Remote)</title></head>
<body><div class="location">London /</div></body>
</html>`

	rec := New(nil).ParsePosting(docFromHTML(t, html), testLink)
	assert.Equal(t, "Remote", rec.Location)
}

func TestParsePostingMissingRegions(t *testing.T) {
	rec := New(nil).ParsePosting(docFromHTML(t, "<html><body></body></html>"), testLink)

	assert.Empty(t, rec.Company)
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.Location)
	assert.Empty(t, rec.Desc)
	assert.Empty(t, rec.Qual)
	assert.Nil(t, rec.MinSalary)
	assert.Nil(t, rec.MaxSalary)
	assert.Equal(t, testLink.DescriptionURL, rec.PostingURL)
}

func TestParseSalaryFallsBackToClosingDescription(t *testing.T) {
	html := `<html><body>
  <div class="section page-centered" data-qa="closing-description">
    Compensation: $90,000 - $110,000 plus equity.
  </div>
</body></html>`

	rec := New(nil).ParsePosting(docFromHTML(t, html), testLink)
	require.NotNil(t, rec.MinSalary)
	require.NotNil(t, rec.MaxSalary)
	assert.Equal(t, 90000.0, *rec.MinSalary)
	assert.Equal(t, 110000.0, *rec.MaxSalary)
}

func TestParseSalarySingleNumberIsAbsent(t *testing.T) {
	html := `<html><body>
  <div class="section page-centered" data-qa="salary-range">
    Up to $100,000 for the right candidate.
  </div>
</body></html>`

	rec := New(nil).ParsePosting(docFromHTML(t, html), testLink)
	assert.Nil(t, rec.MinSalary)
	assert.Nil(t, rec.MaxSalary)
}

func TestParseMoneyTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []float64
	}{
		{"two marked tokens", "$120,000 to $150,000", []float64{120000, 150000}},
		{"range split across tokens", "$120,000- $150,000", []float64{120000, 150000}},
		{"unmarked numbers ignored", "between 120000 and 150000", nil},
		{"bare dollar sign skipped", "$ 100", nil},
		{"none", "competitive pay", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMoneyTokens(tt.in))
		})
	}
}
