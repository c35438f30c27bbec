package store

import (
	"os"
	"path/filepath"
	"testing"

	"jobbot-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyPtr(v float64) *float64 { return &v }

func sampleRecord(n string) domain.PostingRecord {
	return domain.PostingRecord{
		Company:     "Acme" + n,
		Title:       "Senior Gopher",
		Team:        "Engineering",
		Location:    "Austin, TX",
		Hours:       "Full-time",
		WFH:         "Hybrid",
		MinSalary:   moneyPtr(120000),
		MaxSalary:   moneyPtr(150000),
		Desc:        "Build services in Go",
		Qual:        "5+ years experience",
		PostingURL:  "https://jobs.lever.co/acme" + n + "/123/",
		ApplyURL:    "https://jobs.lever.co/acme" + n + "/123/apply",
		ScrapedDate: "08/23/2026",
	}
}

func TestAppendRecordsBelowMinimumWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")

	require.NoError(t, AppendRecords(path, []domain.PostingRecord{sampleRecord("1")}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "single-record batch must not create the file")
}

func TestAppendRecordsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")
	batch := []domain.PostingRecord{sampleRecord("1"), sampleRecord("2")}

	require.NoError(t, AppendRecords(path, batch))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestAppendRecordsHeaderOnlyOnCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")

	require.NoError(t, AppendRecords(path, []domain.PostingRecord{sampleRecord("1"), sampleRecord("2")}))
	require.NoError(t, AppendRecords(path, []domain.PostingRecord{sampleRecord("3"), sampleRecord("4")}))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 4, "second append must not repeat the header")
	assert.Equal(t, "Acme3", got[2].Company)
}

func TestLoadRecordsMissingFile(t *testing.T) {
	got, err := LoadRecords(filepath.Join(t.TempDir(), "none.csv"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAbsentSalaryRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")
	rec := sampleRecord("1")
	rec.MinSalary = nil
	rec.MaxSalary = nil

	require.NoError(t, AppendRecords(path, []domain.PostingRecord{rec, sampleRecord("2")}))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].MinSalary)
	assert.Nil(t, got[0].MaxSalary)
}

func TestMarkApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")
	batch := []domain.PostingRecord{sampleRecord("1"), sampleRecord("2")}
	require.NoError(t, AppendRecords(path, batch))

	require.NoError(t, MarkApplied(path, batch[1].ApplyURL))

	got, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Applied)
	assert.True(t, got[1].Applied)

	// everything else is untouched
	want := batch[1]
	want.Applied = true
	assert.Equal(t, want, got[1])
}

func TestMarkAppliedUnknownURLLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.csv")
	require.NoError(t, AppendRecords(path, []domain.PostingRecord{sampleRecord("1"), sampleRecord("2")}))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, MarkApplied(path, "https://jobs.lever.co/other/999/apply"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
