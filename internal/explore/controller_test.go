package explore

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   []backend.ListParams
	result  *models.ListResult
	err     error
	options *models.FilterOptions
	optErr  error
}

func (f *fakeFetcher) ListInnovations(ctx context.Context, params backend.ListParams) (*models.ListResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		res := *f.result
		return &res, nil
	}
	return &models.ListResult{Innovations: []models.Innovation{}}, nil
}

func (f *fakeFetcher) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if f.optErr != nil {
		return nil, f.optErr
	}
	return f.options, nil
}

func (f *fakeFetcher) Calls() []backend.ListParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.ListParams(nil), f.calls...)
}

func page(n int, total int) *models.ListResult {
	inns := make([]models.Innovation, n)
	for i := range inns {
		inns[i] = models.Innovation{ID: uuid.New(), Title: "Innovation"}
	}
	return &models.ListResult{Innovations: inns, Total: total}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("condition not reached in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSetQuery_DebounceCollapsesEdits(t *testing.T) {
	fetcher := &fakeFetcher{result: page(3, 3)}
	c := NewController(context.Background(), fetcher, WithDebounce(50*time.Millisecond))

	c.SetQuery("malar")
	c.SetQuery("malaria prediction")

	waitFor(t, func() bool { return len(fetcher.Calls()) == 1 })
	time.Sleep(100 * time.Millisecond)

	calls := fetcher.Calls()
	if len(calls) != 1 {
		t.Fatalf("two edits inside the window must yield exactly one fetch, got %d", len(calls))
	}
	if calls[0].Query != "malaria prediction" {
		t.Fatalf("fetch must use the final query value, got %q", calls[0].Query)
	}
	if calls[0].Offset != 0 {
		t.Fatalf("query edits must reset offset, got %d", calls[0].Offset)
	}
}

func TestSetFilter_ImmediateFetchResetsOffset(t *testing.T) {
	fetcher := &fakeFetcher{result: page(20, 60)}
	c := NewController(context.Background(), fetcher, WithDebounce(time.Hour))

	c.Search()
	c.LoadMore()
	c.SetCountryFilter("Kenya")

	calls := fetcher.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 fetches (initial, load-more, filter), got %d", len(calls))
	}
	last := calls[len(calls)-1]
	if last.Country != "Kenya" {
		t.Fatalf("filter value not applied: %+v", last)
	}
	if last.Offset != 0 {
		t.Fatalf("filter change must reset offset to zero before fetching, got %d", last.Offset)
	}
}

func TestSetFilter_CancelsPendingDebounce(t *testing.T) {
	fetcher := &fakeFetcher{result: page(2, 2)}
	c := NewController(context.Background(), fetcher, WithDebounce(50*time.Millisecond))

	c.SetQuery("agri")
	c.SetTypeFilter("AgriTech")
	time.Sleep(120 * time.Millisecond)

	calls := fetcher.Calls()
	if len(calls) != 1 {
		t.Fatalf("pending debounced fetch must collapse into the immediate one, got %d", len(calls))
	}
	if calls[0].Query != "agri" || calls[0].InnovationType != "AgriTech" {
		t.Fatalf("immediate fetch must carry both query and filter: %+v", calls[0])
	}
}

func TestLoadMore_AdvancesOffsetAndAppends(t *testing.T) {
	fetcher := &fakeFetcher{result: page(20, 45)}
	c := NewController(context.Background(), fetcher, WithDebounce(time.Hour))

	c.Search()
	c.LoadMore()

	calls := fetcher.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 fetches, got %d", len(calls))
	}
	if calls[1].Offset != DefaultPageSize {
		t.Fatalf("load-more offset = previous + limit, got %d", calls[1].Offset)
	}
	if calls[1].Query != calls[0].Query {
		t.Fatal("load-more must not reset the query")
	}

	snap := c.Snapshot()
	if len(snap.Innovations) != 40 {
		t.Fatalf("load-more must append, not replace: %d items", len(snap.Innovations))
	}
	if !snap.HasMore() {
		t.Fatal("40 of 45 loaded, expected more pages")
	}
}

func TestLoadMore_NoopWhenExhausted(t *testing.T) {
	fetcher := &fakeFetcher{result: page(5, 5)}
	c := NewController(context.Background(), fetcher, WithDebounce(time.Hour))

	c.Search()
	c.LoadMore()

	if calls := fetcher.Calls(); len(calls) != 1 {
		t.Fatalf("load-more past the end must not fetch, got %d calls", len(calls))
	}
}

func TestDegradedMode_EmptyResultsAndPlaceholders(t *testing.T) {
	c := NewController(context.Background(), nil)

	c.Search()
	snap := c.Snapshot()
	if !snap.Degraded {
		t.Fatal("nil fetcher must select degraded mode")
	}
	if snap.ErrMessage != "" {
		t.Fatalf("degraded mode must not surface an error, got %q", snap.ErrMessage)
	}
	if len(snap.Innovations) != 0 || snap.Total != 0 {
		t.Fatalf("degraded mode must serve an empty result set: %+v", snap)
	}

	opts := c.Options(context.Background())
	if len(opts.InnovationTypes) == 0 || len(opts.Countries) == 0 || len(opts.Verifications) != 3 {
		t.Fatalf("placeholder options incomplete: %+v", opts)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"connectivity", backend.ErrConnectivity, "Unable to reach the data backend"},
		{"server", backend.ErrServer, "temporarily unavailable"},
		{"other_status", &backend.StatusError{Code: 422}, "Search failed: HTTP 422"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &fakeFetcher{err: tc.err}
			c := NewController(context.Background(), fetcher, WithDebounce(time.Hour))
			c.Search()

			snap := c.Snapshot()
			if !strings.Contains(snap.ErrMessage, tc.want) {
				t.Fatalf("error message %q does not contain %q", snap.ErrMessage, tc.want)
			}
		})
	}
}

func TestOptions_FallBackOnBackendError(t *testing.T) {
	fetcher := &fakeFetcher{optErr: errors.New("boom")}
	c := NewController(context.Background(), fetcher)

	opts := c.Options(context.Background())
	if len(opts.Countries) == 0 {
		t.Fatal("backend failure must fall back to placeholder options")
	}
}
