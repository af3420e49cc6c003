// Package explore drives the innovation search page: a debounced
// free-text query plus three discrete filters against the backend's
// offset-paginated listing endpoint, with a degraded mode for
// environments without a live backend.
package explore

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

// DefaultDebounce is the settle window applied to free-text edits.
const DefaultDebounce = 300 * time.Millisecond

// DefaultPageSize is the listing page size used for offset pagination.
const DefaultPageSize = 20

// Fetcher is the backend surface the controller depends on.
type Fetcher interface {
	ListInnovations(ctx context.Context, params backend.ListParams) (*models.ListResult, error)
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

// Snapshot is the render state of the explore page.
type Snapshot struct {
	Innovations []models.Innovation
	Total       int
	Offset      int
	Loading     bool
	ErrMessage  string
	Degraded    bool
}

// HasMore reports whether a further page exists.
func (s Snapshot) HasMore() bool {
	return len(s.Innovations) < s.Total
}

// Controller owns the ephemeral UI state of the search page. A nil
// fetcher selects degraded mode: empty results and placeholder filter
// options instead of a hard failure.
//
// In-flight fetches are not cancelled on rapid changes; a stale
// response landing after a newer one can overwrite fresher state. This
// mirrors the page's last-response-wins behavior.
type Controller struct {
	ctx      context.Context
	fetcher  Fetcher
	debounce time.Duration
	pageSize int
	log      *zap.Logger

	mu           sync.Mutex
	query        string
	innType      string
	country      string
	verification string
	offset       int
	innovations  []models.Innovation
	total        int
	loading      bool
	errMsg       string
	timer        *time.Timer

	// onChange, when set, observes every state transition. Used by the
	// terminal explorer to redraw.
	onChange func(Snapshot)
}

type Option func(*Controller)

func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

func WithPageSize(n int) Option {
	return func(c *Controller) { c.pageSize = n }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// OnChange registers the redraw callback.
func OnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

func NewController(ctx context.Context, fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		ctx:      ctx,
		fetcher:  fetcher,
		debounce: DefaultDebounce,
		pageSize: DefaultPageSize,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery records a free-text edit. The pagination offset resets to
// zero immediately; the fetch itself is debounced so two edits inside
// the window collapse into a single request for the final value.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.offset = 0
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fetch(false)
	})
	c.mu.Unlock()
}

// SetTypeFilter applies the innovation-type filter, resets the offset,
// and fetches immediately (filter selects are not debounced).
func (c *Controller) SetTypeFilter(v string) {
	c.setFilter(func() { c.innType = v })
}

func (c *Controller) SetCountryFilter(v string) {
	c.setFilter(func() { c.country = v })
}

func (c *Controller) SetVerificationFilter(v string) {
	c.setFilter(func() { c.verification = v })
}

func (c *Controller) setFilter(apply func()) {
	c.mu.Lock()
	apply()
	c.offset = 0
	if c.timer != nil {
		// a pending debounced fetch would race the immediate one with
		// the same parameters; collapse them
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.fetch(false)
}

// LoadMore fetches the next page (offset advanced by the page size) and
// appends it to the existing list without resetting the query.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	if len(c.innovations) >= c.total {
		c.mu.Unlock()
		return
	}
	c.offset += c.pageSize
	c.mu.Unlock()
	c.fetch(true)
}

// Search runs the current query immediately, bypassing the debounce.
// Used on initial page load.
func (c *Controller) Search() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.fetch(false)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	out := Snapshot{
		Innovations: append([]models.Innovation(nil), c.innovations...),
		Total:       c.total,
		Offset:      c.offset,
		Loading:     c.loading,
		ErrMessage:  c.errMsg,
		Degraded:    c.fetcher == nil,
	}
	return out
}

// Options returns the discrete filter values. In degraded mode, or when
// the backend fails, the fixed placeholder set is served instead.
func (c *Controller) Options(ctx context.Context) models.FilterOptions {
	if c.fetcher == nil {
		return PlaceholderOptions()
	}
	opts, err := c.fetcher.GetFilterOptions(ctx)
	if err != nil {
		c.log.Debug("filter options unavailable, serving placeholders", zap.Error(err))
		return PlaceholderOptions()
	}
	return *opts
}

func (c *Controller) fetch(appendPage bool) {
	c.mu.Lock()
	if c.fetcher == nil {
		// degraded mode: empty result set, no error surfaced
		c.innovations = []models.Innovation{}
		c.total = 0
		c.errMsg = ""
		c.loading = false
		c.notifyLocked()
		c.mu.Unlock()
		return
	}
	params := backend.ListParams{
		Query:              c.query,
		InnovationType:     c.innType,
		Country:            c.country,
		VerificationStatus: c.verification,
		Limit:              c.pageSize,
		Offset:             c.offset,
	}
	c.loading = true
	c.notifyLocked()
	c.mu.Unlock()

	result, err := c.fetcher.ListInnovations(c.ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = backend.UserMessage(err)
		c.log.Debug("innovation listing failed", zap.Error(err))
		c.notifyLocked()
		return
	}
	c.errMsg = ""
	c.total = result.Total
	if appendPage {
		c.innovations = append(c.innovations, result.Innovations...)
	} else {
		c.innovations = result.Innovations
	}
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// PlaceholderOptions is the fixed filter set shown when the backend is
// unconfigured or unreachable.
func PlaceholderOptions() models.FilterOptions {
	return models.FilterOptions{
		InnovationTypes: []string{
			"AgriTech", "EdTech", "FinTech", "HealthTech",
			"Machine Learning", "NLP", "Robotics",
		},
		Countries: []string{
			"Egypt", "Ethiopia", "Ghana", "Kenya", "Morocco",
			"Nigeria", "Rwanda", "Senegal", "South Africa", "Tunisia",
		},
		Verifications: []string{
			string(models.VerificationVerified),
			string(models.VerificationPending),
			string(models.VerificationCommunity),
		},
	}
}
