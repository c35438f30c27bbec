package domain

// LinkRecord pairs the two URLs a posting exposes. At least one side is
// always set; either URL is derivable from the other by the /apply
// suffix convention.
type LinkRecord struct {
	DescriptionURL string
	ApplicationURL string
}

// PostingRecord is the exported unit for one scraped posting. Text
// fields are empty when extraction failed for that field; salaries are
// nil when no range was found. Applied starts false and is flipped by
// the apply flow after a submission.
type PostingRecord struct {
	Company     string
	Title       string
	Team        string
	Location    string
	Hours       string
	WFH         string
	MinSalary   *float64
	MaxSalary   *float64
	Desc        string
	Qual        string
	PostingURL  string
	ApplyURL    string
	ScrapedDate string // MM/DD/YYYY, set at creation
	Applied     bool
}
