package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

// Error kinds surfaced by the client. Callers map these onto the
// user-facing messages shown by the explore and dashboard pages.
var (
	// ErrConnectivity covers DNS, dial, TLS and timeout failures.
	ErrConnectivity = errors.New("backend unreachable")
	// ErrServer covers HTTP 5xx responses from the backend.
	ErrServer = errors.New("backend server error")
)

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListParams mirrors the backend listing endpoint's query contract.
type ListParams struct {
	Query              string
	InnovationType     string
	Country            string
	VerificationStatus string
	FundingMin         float64
	FundingMax         float64
	Limit              int
	Offset             int
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("query", p.Query)
	}
	if p.InnovationType != "" {
		v.Set("innovation_type", p.InnovationType)
	}
	if p.Country != "" {
		v.Set("country", p.Country)
	}
	if p.VerificationStatus != "" {
		v.Set("verification_status", p.VerificationStatus)
	}
	if p.FundingMin > 0 {
		v.Set("funding_min", strconv.FormatFloat(p.FundingMin, 'f', -1, 64))
	}
	if p.FundingMax > 0 {
		v.Set("funding_max", strconv.FormatFloat(p.FundingMax, 'f', -1, 64))
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(p.Offset))
	return v
}

func (c *Client) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	// Missing fields decode to zero, which is the normalization the
	// dashboard expects. Only the timestamp gets a local default.
	if stats.LastUpdated.IsZero() {
		stats.LastUpdated = time.Now().UTC()
	}
	return &stats, nil
}

func (c *Client) ListInnovations(ctx context.Context, params ListParams) (*models.ListResult, error) {
	var result models.ListResult
	if err := c.getJSON(ctx, "/api/innovations", params.values(), &result); err != nil {
		return nil, err
	}
	if result.Innovations == nil {
		result.Innovations = []models.Innovation{}
	}
	return &result, nil
}

func (c *Client) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.getJSON(ctx, "/api/innovations/filters", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (c *Client) RecentPublications(ctx context.Context, limit int) ([]models.Publication, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var envelope struct {
		Data struct {
			Papers []models.Publication `json:"papers"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/etl/results/academic", v, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Papers, nil
}

// etlStatusEnvelope is the backend's wire shape for /api/etl/status. It
// differs from the fallback table's shape; each tier maps ad hoc into
// models.ETLStatus.
type etlStatusEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Pipelines map[string]struct {
			Pipeline       string     `json:"pipeline"`
			Status         string     `json:"status"`
			LastRun        *time.Time `json:"last_run"`
			ItemsProcessed int        `json:"items_processed"`
			Errors         int        `json:"errors"`
			Metrics        *models.PipelineMetrics `json:"metrics"`
		} `json:"pipelines"`
		SystemHealth string    `json:"system_health"`
		LastUpdated  time.Time `json:"last_updated"`
	} `json:"data"`
}

func (c *Client) GetETLStatus(ctx context.Context) (*models.ETLStatus, error) {
	var envelope etlStatusEnvelope
	if err := c.getJSON(ctx, "/api/etl/status", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%w: status endpoint reported failure", ErrServer)
	}

	status := &models.ETLStatus{
		Pipelines:    make(map[string]models.PipelineStatus, len(envelope.Data.Pipelines)),
		SystemHealth: envelope.Data.SystemHealth,
		LastUpdated:  envelope.Data.LastUpdated,
	}
	if status.SystemHealth == "" {
		status.SystemHealth = "unknown"
	}
	if status.LastUpdated.IsZero() {
		status.LastUpdated = time.Now().UTC()
	}
	for key, p := range envelope.Data.Pipelines {
		name := p.Pipeline
		if name == "" {
			name = strings.TrimSuffix(key, "_pipeline")
		}
		state := models.PipelineState(p.Status)
		if state == "" {
			state = models.PipelineIdle
		}
		status.Pipelines[name] = models.PipelineStatus{
			Name:    name,
			Active:  state == models.PipelineRunning,
			State:   state,
			LastRun: p.LastRun,
			Metrics: p.Metrics,
		}
		status.ProcessedToday += p.ItemsProcessed
		status.ErrorsToday += p.Errors
	}
	return status, nil
}

// TriggerResult is the {success, message} pair surfaced as a banner.
type TriggerResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TriggerPipeline issues a single POST to the named trigger endpoint.
// payload, when non-nil, is sent as a JSON body ({query} or
// {innovation_ids, max_jobs} depending on the pipeline). There is no
// idempotency key: two concurrent triggers are two backend requests.
func (c *Client) TriggerPipeline(ctx context.Context, pipeline string, payload any) (*TriggerResult, error) {
	body := bytes.NewReader(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding trigger payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/etl/trigger/"+url.PathEscape(pipeline), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var result TriggerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding trigger response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	default:
		return &StatusError{Code: code}
	}
}

// UserMessage maps a client error onto the message shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConnectivity):
		return "Unable to reach the data backend. Check your connection or CORS configuration."
	case errors.Is(err, ErrServer):
		return "The database is temporarily unavailable. Please try again later."
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Search failed: HTTP %d", statusErr.Code)
	}
	return "Search failed: " + err.Error()
}
