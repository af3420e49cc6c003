package etl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

// ErrUnknownPipeline is returned by Trigger when the pipeline name is
// not present in the registry.
var ErrUnknownPipeline = errors.New("unknown pipeline")

// StatusSource is one tier of the pipeline-status retrieval order:
// backend endpoint, then the etl_status table, then the hardcoded
// all-inactive default built from the registry.
type StatusSource interface {
	Name() string
	Fetch(ctx context.Context) (*models.ETLStatus, error)
}

// Triggerer issues a single trigger POST for a named pipeline.
type Triggerer interface {
	TriggerPipeline(ctx context.Context, pipeline string, payload any) (*backend.TriggerResult, error)
}

// Monitor polls pipeline status on a fixed interval and exposes
// one-shot trigger actions. The poll loop is cancelled deterministically
// when the context passed to Start is done.
type Monitor struct {
	registry *Registry
	trigger  Triggerer
	sources  []StatusSource
	interval time.Duration
	log      *zap.Logger

	mu      sync.RWMutex
	current models.ETLStatus

	wg sync.WaitGroup
}

func NewMonitor(registry *Registry, trigger Triggerer, interval time.Duration, log *zap.Logger, sources ...StatusSource) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	m := &Monitor{
		registry: registry,
		trigger:  trigger,
		sources:  sources,
		interval: interval,
		log:      log,
	}
	m.current = m.defaultStatus()
	return m
}

// Start launches the poll loop: one immediate refresh, then one per
// interval until ctx is cancelled. Wait blocks until the loop exits.
func (m *Monitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.Refresh(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Refresh(ctx)
			}
		}
	}()
}

func (m *Monitor) Wait() {
	m.wg.Wait()
}

// Status returns the last snapshot. Before the first successful poll
// this is the hardcoded all-inactive default.
func (m *Monitor) Status() models.ETLStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyStatus(m.current)
}

// Refresh performs one tiered status fetch and stores the result. Each
// tier is tried at most once; if all fail, the hardcoded default is
// stored so the dashboard renders "unavailable" rather than erroring.
func (m *Monitor) Refresh(ctx context.Context) models.ETLStatus {
	for _, src := range m.sources {
		status, err := src.Fetch(ctx)
		if err != nil {
			m.log.Debug("etl status source failed",
				zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		m.log.Info("etl status served", zap.String("source", src.Name()))
		m.store(*status)
		return copyStatus(*status)
	}

	fallback := m.defaultStatus()
	m.store(fallback)
	return copyStatus(fallback)
}

func (m *Monitor) store(status models.ETLStatus) {
	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
}

// defaultStatus is the final tier: every registered pipeline inactive,
// system health "unavailable".
func (m *Monitor) defaultStatus() models.ETLStatus {
	status := models.ETLStatus{
		Pipelines:    map[string]models.PipelineStatus{},
		SystemHealth: "unavailable",
		LastUpdated:  time.Now().UTC(),
	}
	if m.registry != nil {
		for _, p := range m.registry.Pipelines {
			status.Pipelines[p.Name] = models.PipelineStatus{
				Name:   p.Name,
				Active: false,
				State:  models.PipelineIdle,
			}
		}
	}
	return status
}

// TriggerResult is surfaced by the caller as a transient banner; the
// 5-second auto-dismiss belongs to the page, not to this type.
type TriggerResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Trigger issues a single POST for the named pipeline. payload overrides
// the registry's default body when non-nil. On a reported success the
// status is re-polled immediately; on success=false the cached status
// is left untouched and the backend's message is surfaced verbatim.
//
// There is no queuing and no de-duplication: concurrent triggers are
// independent backend requests.
func (m *Monitor) Trigger(ctx context.Context, pipeline string, payload any) (TriggerResult, error) {
	if m.registry == nil {
		return TriggerResult{}, fmt.Errorf("%w: %q (no registry loaded)", ErrUnknownPipeline, pipeline)
	}
	entry, ok := m.registry.Lookup(pipeline)
	if !ok {
		return TriggerResult{}, fmt.Errorf("%w: %q", ErrUnknownPipeline, pipeline)
	}
	if payload == nil && len(entry.Payload) > 0 {
		payload = entry.Payload
	}
	if m.trigger == nil {
		return TriggerResult{}, errors.New("no trigger backend configured")
	}

	res, err := m.trigger.TriggerPipeline(ctx, pipeline, payload)
	if err != nil {
		return TriggerResult{}, err
	}

	message := res.Message
	if message == "" {
		if res.Success {
			message = fmt.Sprintf("%s pipeline trigger accepted", pipeline)
		} else {
			message = fmt.Sprintf("%s pipeline trigger was rejected", pipeline)
		}
	}

	if res.Success {
		m.Refresh(ctx)
	}

	return TriggerResult{Success: res.Success, Message: message}, nil
}

func copyStatus(s models.ETLStatus) models.ETLStatus {
	out := s
	out.Pipelines = make(map[string]models.PipelineStatus, len(s.Pipelines))
	for k, v := range s.Pipelines {
		if v.Metrics != nil {
			metrics := *v.Metrics
			v.Metrics = &metrics
		}
		out.Pipelines[k] = v
	}
	return out
}

// BackendStatusSource adapts the backend client into a StatusSource.
type BackendStatusSource struct {
	Client interface {
		GetETLStatus(ctx context.Context) (*models.ETLStatus, error)
	}
}

func (b BackendStatusSource) Name() string { return "backend_api" }

func (b BackendStatusSource) Fetch(ctx context.Context) (*models.ETLStatus, error) {
	return b.Client.GetETLStatus(ctx)
}

// TableStatusSource reads the etl_status fallback table.
type TableStatusSource struct {
	Store interface {
		PipelineStatuses(ctx context.Context) (*models.ETLStatus, error)
	}
}

func (t TableStatusSource) Name() string { return "etl_status_table" }

func (t TableStatusSource) Fetch(ctx context.Context) (*models.ETLStatus, error) {
	return t.Store.PipelineStatuses(ctx)
}
