package histdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

var testToday = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// probeServer records every probed date and answers 200 for the dates
// in available.
type probeServer struct {
	mu        sync.Mutex
	probed    []string
	available map[string]bool
}

func (s *probeServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
		s.mu.Lock()
		s.probed = append(s.probed, date)
		s.mu.Unlock()
		if !s.available[date] {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func (s *probeServer) probedDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.probed))
	copy(out, s.probed)
	return out
}

func newTestResolver(t *testing.T, ps *probeServer) *Resolver {
	t.Helper()
	srv := httptest.NewServer(ps.handler())
	t.Cleanup(srv.Close)
	r := NewResolver(srv.URL)
	r.now = func() time.Time { return testToday }
	return r
}

func day(offset int) string {
	return testToday.AddDate(0, 0, -offset).Format("2006-01-02")
}

// Exactly the 30 trailing calendar days including today are probed; a
// date 31 days prior never is.
func TestProbeWindowBoundary(t *testing.T) {
	ps := &probeServer{available: map[string]bool{day(31): true}}
	r := newTestResolver(t, ps)
	if err := r.FetchAvailableDates(context.Background()); err != nil {
		t.Fatalf("FetchAvailableDates error: %v", err)
	}

	probed := ps.probedDates()
	if len(probed) != 30 {
		t.Fatalf("probes = %d, want 30", len(probed))
	}
	seen := map[string]bool{}
	for _, d := range probed {
		seen[d] = true
	}
	if !seen[day(0)] || !seen[day(29)] {
		t.Errorf("window must include today and today-29")
	}
	if seen[day(30)] || seen[day(31)] {
		t.Errorf("window must not reach past 30 days")
	}
	if len(r.AvailableDates()) != 0 {
		t.Errorf("a file outside the window must not be discovered")
	}
}

func TestAvailableDatesSortedDescending(t *testing.T) {
	ps := &probeServer{available: map[string]bool{day(2): true, day(0): true, day(15): true}}
	r := newTestResolver(t, ps)
	if err := r.FetchAvailableDates(context.Background()); err != nil {
		t.Fatalf("FetchAvailableDates error: %v", err)
	}
	got := r.AvailableDates()
	want := []string{day(0), day(2), day(15)}
	if len(got) != len(want) {
		t.Fatalf("dates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates = %v, want %v", got, want)
		}
	}
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i] > got[j] }) {
		t.Errorf("dates not descending: %v", got)
	}
}

// Two rapid calls produce one scan of 30 probes, not sixty.
func TestScanOnce(t *testing.T) {
	ps := &probeServer{available: map[string]bool{day(0): true}}
	r := newTestResolver(t, ps)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.FetchAvailableDates(context.Background())
		}()
	}
	wg.Wait()
	// one more after completion is also a no-op
	if err := r.FetchAvailableDates(context.Background()); err != nil {
		t.Fatalf("repeat call error: %v", err)
	}

	if got := len(ps.probedDates()); got != 30 {
		t.Errorf("probes = %d, want exactly 30", got)
	}
}

// Probe network errors count as absent; only a fully failed window
// surfaces an error.
func TestAllProbesFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // every request now fails at the dial
	r := NewResolver(srv.URL)
	r.now = func() time.Time { return testToday }

	err := r.FetchAvailableDates(context.Background())
	if err != ErrAllProbesFailed {
		t.Fatalf("want ErrAllProbesFailed, got %v", err)
	}
	if r.Err() != ErrAllProbesFailed {
		t.Errorf("Err() = %v, want ErrAllProbesFailed", r.Err())
	}
	if len(r.AvailableDates()) != 0 {
		t.Errorf("availableDates must stay empty")
	}
}

func TestMissingDatesAreNotErrors(t *testing.T) {
	ps := &probeServer{available: map[string]bool{day(3): true}}
	r := newTestResolver(t, ps)
	if err := r.FetchAvailableDates(context.Background()); err != nil {
		t.Fatalf("missing files must not error: %v", err)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
	got := r.AvailableDates()
	if len(got) != 1 || got[0] != day(3) {
		t.Errorf("dates = %v, want [%s]", got, day(3))
	}
}

func TestSelectionIndependentOfProbing(t *testing.T) {
	r := NewResolver("http://unused.invalid")
	if r.SelectedDate() != "" {
		t.Fatalf("initial selection must be empty (latest)")
	}
	r.SetDate("2026-08-20")
	if r.SelectedDate() != "2026-08-20" {
		t.Errorf("SetDate not applied")
	}
	r.ResetToToday()
	if r.SelectedDate() != "" {
		t.Errorf("ResetToToday must clear the selection")
	}
}
