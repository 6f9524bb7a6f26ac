// Package histdata is the read side of the artifact tree: it discovers
// which dated snapshots exist for a category and fetches them with a
// fallback to latest.json.
package histdata

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// probeWindowDays is the trailing window scanned for dated
	// snapshots, counting today as day one.
	probeWindowDays = 30

	probeConcurrency = 10
	probeTimeout     = 10 * time.Second
)

// ErrAllProbesFailed is set only when every probe in the window fails;
// individual probe errors are indistinguishable from absent files.
var ErrAllProbesFailed = errors.New("no dates reachable in the trailing window")

type state int

const (
	stateIdle state = iota
	stateProbing
	stateReady
)

// Resolver scans the trailing window for a category's dated snapshots
// and tracks the viewer's date selection. An empty selection means
// "use latest.json".
//
// A resolver scans at most once: repeated FetchAvailableDates calls
// while probing or after completion are no-ops.
type Resolver struct {
	baseURL string // category base, e.g. http://host/data/news/weekly-update
	client  *http.Client
	now     func() time.Time

	mu        sync.Mutex
	st        state
	selected  string
	available []string
	err       error
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: probeTimeout},
		now:     time.Now,
	}
}

// FetchAvailableDates probes the trailing window with one HEAD request
// per day. Every day is attempted; a probe's network error counts the
// same as an absent file. It blocks until all probes resolve, unless a
// scan already ran or is running, in which case it returns immediately.
func (r *Resolver) FetchAvailableDates(ctx context.Context) error {
	r.mu.Lock()
	if r.st != stateIdle {
		r.mu.Unlock()
		return nil
	}
	r.st = stateProbing
	today := r.now()
	r.mu.Unlock()

	var (
		resMu sync.Mutex
		found []string
		fails int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i := 0; i < probeWindowDays; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		g.Go(func() error {
			ok, err := r.probe(ctx, date)
			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				fails++
				return nil // absent and unreachable are the same thing here
			}
			if ok {
				found = append(found, date)
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Sort(sort.Reverse(sort.StringSlice(found)))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.st = stateReady
	r.available = found
	if fails == probeWindowDays {
		r.err = ErrAllProbesFailed
		return r.err
	}
	return nil
}

func (r *Resolver) probe(ctx context.Context, date string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, r.baseURL+"/"+date+".json", nil)
	if err != nil {
		return false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

// AvailableDates returns the discovered dates, most recent first.
func (r *Resolver) AvailableDates() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.available))
	copy(out, r.available)
	return out
}

// IsLoadingDates reports whether a scan is in flight.
func (r *Resolver) IsLoadingDates() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st == stateProbing
}

// Err returns the aggregate scan error, set only when every probe in
// the window failed.
func (r *Resolver) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// SetDate selects a historical date. Selection is independent of the
// probing state machine.
func (r *Resolver) SetDate(date string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = date
}

// ResetToToday clears the selection, meaning "use latest.json".
func (r *Resolver) ResetToToday() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = ""
}

// SelectedDate returns the current selection; empty means latest.
func (r *Resolver) SelectedDate() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}
