package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"jobbot-engine/internal/domain"

	"github.com/gofrs/flock"
)

// header order is the exported record layout; changing it breaks files
// written by earlier runs.
var header = []string{
	"company", "title", "team", "location", "hours", "wfh",
	"min_salary", "max_salary", "desc", "qual",
	"posting_url", "apply_url", "scraped_date", "applied",
}

// minBatch is the documented persistence threshold: batches with fewer
// qualifying records are dropped, not written.
const minBatch = 2

// AppendRecords appends a batch of qualifying records to the CSV store
// at path, writing the header row only when the file does not exist
// yet. The file is locked against concurrent runs.
func AppendRecords(path string, records []domain.PostingRecord) error {
	if len(records) < minBatch {
		log.Printf("[store] batch of %d below minimum of %d, nothing written", len(records), minBatch)
		return nil
	}

	return withFileLock(path, func() error {
		_, statErr := os.Stat(path)
		writeHeader := errors.Is(statErr, os.ErrNotExist)

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open record store: %w", err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if writeHeader {
			if err := w.Write(header); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}
		for _, r := range records {
			if err := w.Write(row(r)); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}
		w.Flush()
		return w.Error()
	})
}

// LoadRecords reads every record from the CSV store. A missing file is
// an empty store.
func LoadRecords(path string) ([]domain.PostingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open record store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read record store: %w", err)
	}

	var out []domain.PostingRecord
	for i, cols := range rows {
		if i == 0 {
			continue
		}
		out = append(out, fromRow(cols))
	}
	return out, nil
}

// MarkApplied flips the applied column for every record matching
// applyURL and rewrites the store in place. This is the only mutation
// a persisted record ever sees.
func MarkApplied(path, applyURL string) error {
	records, err := LoadRecords(path)
	if err != nil {
		return err
	}

	changed := false
	for i := range records {
		if records[i].ApplyURL == applyURL && !records[i].Applied {
			records[i].Applied = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return withFileLock(path, func() error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("rewrite record store: %w", err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, r := range records {
			if err := w.Write(row(r)); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}
		w.Flush()
		return w.Error()
	})
}

func withFileLock(path string, fn func() error) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock record store: %w", err)
	}
	defer lock.Unlock()
	return fn()
}

func row(r domain.PostingRecord) []string {
	return []string{
		r.Company, r.Title, r.Team, r.Location, r.Hours, r.WFH,
		money(r.MinSalary), money(r.MaxSalary),
		r.Desc, r.Qual, r.PostingURL, r.ApplyURL, r.ScrapedDate,
		strconv.FormatBool(r.Applied),
	}
}

func fromRow(cols []string) domain.PostingRecord {
	rec := domain.PostingRecord{
		Company: cols[0], Title: cols[1], Team: cols[2], Location: cols[3],
		Hours: cols[4], WFH: cols[5],
		Desc: cols[8], Qual: cols[9],
		PostingURL: cols[10], ApplyURL: cols[11], ScrapedDate: cols[12],
	}
	rec.MinSalary = parseMoney(cols[6])
	rec.MaxSalary = parseMoney(cols[7])
	if applied, err := strconv.ParseBool(cols[13]); err == nil {
		rec.Applied = applied
	}
	return rec
}

func money(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseMoney(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}
