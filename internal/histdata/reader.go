package histdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Reader fetches a category's collection JSON over HTTP.
type Reader struct {
	baseURL string
	client  *http.Client
}

func NewReader(baseURL string) *Reader {
	return &Reader{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch retrieves the collection for date ("" means latest). A missing
// or unreachable dated snapshot falls back to latest.json instead of
// surfacing an error; fellBack reports when that happened. An error is
// returned only when latest.json itself cannot be fetched.
func (r *Reader) Fetch(ctx context.Context, date string) (body []byte, fellBack bool, err error) {
	if date != "" {
		if b, err := r.get(ctx, date+".json"); err == nil {
			return b, false, nil
		}
		fellBack = true
	}
	b, err := r.get(ctx, "latest.json")
	if err != nil {
		return nil, fellBack, err
	}
	return b, fellBack, nil
}

func (r *Reader) get(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", name, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
