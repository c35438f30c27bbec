package mailalert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectMatches(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		any     []string
		want    bool
	}{
		{"empty filter matches all", "whatever", nil, true},
		{"substring match", "New Job Alert: 5 postings", []string{"job alert"}, true},
		{"case insensitive", "JOB ALERT", []string{"job alert"}, true},
		{"no match", "Your receipt", []string{"job alert"}, false},
		{"any of several", "Weekly digest", []string{"job alert", "digest"}, true},
		{"blank entries ignored", "anything", []string{" ", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, subjectMatches(tt.subject, tt.any))
		})
	}
}

func TestLinkRegexp(t *testing.T) {
	body := `See https://jobs.lever.co/acme/123, and <a href="https://jobs.lever.co/acme/456/apply">apply</a>.
Plain text: http://example.com/x.`

	var got []string
	for _, u := range reURL.FindAllString(body, -1) {
		got = append(got, trimLink(u))
	}
	assert.Equal(t, []string{
		"https://jobs.lever.co/acme/123",
		"https://jobs.lever.co/acme/456/apply",
		"http://example.com/x",
	}, got)
}
