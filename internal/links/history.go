package links

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofrs/flock"
)

// History is the injected store of previously processed URLs. It is
// loaded once at startup and flushed after a run. The on-disk format
// is append-only, one URL per line, so old files keep working.
type History struct {
	path    string
	seen    mapset.Set[string]
	pending []string
}

// LoadHistory reads the history file at path. A missing file is an
// empty history, not an error.
func LoadHistory(path string) (*History, error) {
	h := &History{path: path, seen: mapset.NewThreadUnsafeSet[string]()}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			h.seen.Add(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return h, nil
}

func (h *History) Seen(url string) bool { return h.seen.Contains(url) }

// Record marks URLs seen immediately and queues them for the next
// Flush. Empty and already-seen URLs are ignored.
func (h *History) Record(urls ...string) {
	for _, u := range urls {
		if u == "" || h.seen.Contains(u) {
			continue
		}
		h.seen.Add(u)
		h.pending = append(h.pending, u)
	}
}

// Flush appends the queued URLs to the history file, taking a
// cross-process lock so concurrent runs do not interleave lines.
func (h *History) Flush() error {
	if len(h.pending) == 0 {
		return nil
	}

	lock := flock.New(h.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock history: %w", err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history for append: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, u := range h.pending {
		fmt.Fprintln(w, u)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}

	h.pending = h.pending[:0]
	return nil
}
