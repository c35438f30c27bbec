package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://jobs.lever.co"

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"base itself", base, false},
		{"wrong host", "https://boards.greenhouse.io/acme/jobs/123", false},
		{"search page", base + "/?q=engineer", false},
		{"company listing only", base + "/acme", false},
		{"posting", base + "/acme/123-abc", true},
		{"posting with apply", base + "/acme/123-abc/apply", true},
		{"posting trailing slash", base + "/acme/123-abc/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.raw, base))
		})
	}
}

func TestProcessPairsApplySuffix(t *testing.T) {
	recs := Process([]string{base + "/acme/123/apply"}, base, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, base+"/acme/123/apply", recs[0].ApplicationURL)
	assert.Equal(t, base+"/acme/123/", recs[0].DescriptionURL)
}

func TestProcessAddsApplySuffix(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantApp string
	}{
		{"no trailing slash", base + "/acme/123", base + "/acme/123/apply"},
		{"trailing slash", base + "/acme/123/", base + "/acme/123/apply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Process([]string{tt.raw}, base, nil)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.raw, recs[0].DescriptionURL)
			assert.Equal(t, tt.wantApp, recs[0].ApplicationURL)
		})
	}
}

func TestProcessDropsInvalidSilently(t *testing.T) {
	raw := []string{
		"",
		base + "/?q=golang",
		"https://duckduckgo.com/about",
		base + "/acme/123",
	}
	recs := Process(raw, base, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, base+"/acme/123", recs[0].DescriptionURL)
}

func TestProcessRecordsHistory(t *testing.T) {
	hist, err := LoadHistory(t.TempDir() + "/history.txt")
	require.NoError(t, err)

	Process([]string{base + "/acme/123"}, base, hist)

	assert.True(t, hist.Seen(base+"/acme/123"))
	assert.True(t, hist.Seen(base+"/acme/123/apply"))
}
