package etl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("loading registry: %v", err)
	}
	return reg
}

func TestLoadRegistry(t *testing.T) {
	reg := testRegistry(t)

	for _, name := range []string{"academic", "news", "discovery", "enrichment"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("registry missing pipeline %q", name)
		}
	}

	discovery, _ := reg.Lookup("discovery")
	if discovery.Payload["query"] != "African AI innovation" {
		t.Fatalf("discovery default payload wrong: %v", discovery.Payload)
	}
}

type fakeStatusSource struct {
	name   string
	status *models.ETLStatus
	err    error

	mu    sync.Mutex
	calls int
}

func (f *fakeStatusSource) Name() string { return f.name }

func (f *fakeStatusSource) Fetch(ctx context.Context) (*models.ETLStatus, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.status, f.err
}

func (f *fakeStatusSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTriggerer struct {
	result *backend.TriggerResult
	err    error
	calls  int
	last   any
}

func (f *fakeTriggerer) TriggerPipeline(ctx context.Context, pipeline string, payload any) (*backend.TriggerResult, error) {
	f.calls++
	f.last = payload
	return f.result, f.err
}

func runningStatus(pipeline string) *models.ETLStatus {
	return &models.ETLStatus{
		Pipelines: map[string]models.PipelineStatus{
			pipeline: {Name: pipeline, Active: true, State: models.PipelineRunning},
		},
		SystemHealth: "healthy",
		LastUpdated:  time.Now().UTC(),
	}
}

func TestRefresh_TierOrder(t *testing.T) {
	primary := &fakeStatusSource{name: "backend_api", err: errors.New("503")}
	secondary := &fakeStatusSource{name: "etl_status_table", status: runningStatus("news")}

	m := NewMonitor(testRegistry(t), &fakeTriggerer{}, time.Second, nil, primary, secondary)
	got := m.Refresh(context.Background())

	if !got.Pipelines["news"].Active {
		t.Fatalf("expected fallback table status, got %+v", got)
	}
	if primary.Calls() != 1 || secondary.Calls() != 1 {
		t.Fatalf("each tier tried at most once: %d/%d", primary.Calls(), secondary.Calls())
	}
}

func TestRefresh_AllTiersFailYieldsInactiveDefault(t *testing.T) {
	m := NewMonitor(testRegistry(t), &fakeTriggerer{}, time.Second, nil,
		&fakeStatusSource{name: "backend_api", err: errors.New("unreachable")},
		&fakeStatusSource{name: "etl_status_table", err: errors.New("no table")},
	)

	got := m.Refresh(context.Background())

	if got.SystemHealth != "unavailable" {
		t.Fatalf("system health = %q, want unavailable", got.SystemHealth)
	}
	if len(got.Pipelines) != 4 {
		t.Fatalf("default must list all registered pipelines, got %d", len(got.Pipelines))
	}
	for name, p := range got.Pipelines {
		if p.Active {
			t.Fatalf("pipeline %s must be inactive in default status", name)
		}
	}
}

func TestTrigger_SuccessRepollsImmediately(t *testing.T) {
	source := &fakeStatusSource{name: "backend_api", status: runningStatus("academic")}
	trig := &fakeTriggerer{result: &backend.TriggerResult{Success: true, Message: "Academic pipeline started"}}

	m := NewMonitor(testRegistry(t), trig, time.Hour, nil, source)
	res, err := m.Trigger(context.Background(), "academic", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.Message != "Academic pipeline started" {
		t.Fatalf("message must surface verbatim, got %+v", res)
	}
	if source.Calls() != 1 {
		t.Fatalf("success must re-poll status immediately, polls=%d", source.Calls())
	}
	if !m.Status().Pipelines["academic"].Active {
		t.Fatal("re-poll result must replace cached status")
	}
}

func TestTrigger_FailureLeavesStatusUnchanged(t *testing.T) {
	source := &fakeStatusSource{name: "backend_api", status: runningStatus("news")}
	trig := &fakeTriggerer{result: &backend.TriggerResult{Success: false, Message: "News pipeline is already running"}}

	m := NewMonitor(testRegistry(t), trig, time.Hour, nil, source)
	before := m.Status()

	res, err := m.Trigger(context.Background(), "news", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatal("expected success=false")
	}
	if res.Message != "News pipeline is already running" {
		t.Fatalf("backend message must surface verbatim, got %q", res.Message)
	}
	if source.Calls() != 0 {
		t.Fatal("failed trigger must not re-poll")
	}

	after := m.Status()
	if after.SystemHealth != before.SystemHealth || len(after.Pipelines) != len(before.Pipelines) {
		t.Fatal("failed trigger must leave cached status unchanged")
	}
}

func TestTrigger_DefaultMessageWhenAbsent(t *testing.T) {
	trig := &fakeTriggerer{result: &backend.TriggerResult{Success: true}}
	m := NewMonitor(testRegistry(t), trig, time.Hour, nil)

	res, err := m.Trigger(context.Background(), "discovery", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "discovery pipeline trigger accepted" {
		t.Fatalf("expected default message, got %q", res.Message)
	}
	// registry default payload is applied when the caller sends none
	payload, ok := trig.last.(map[string]any)
	if !ok || payload["query"] != "African AI innovation" {
		t.Fatalf("expected registry default payload, got %v", trig.last)
	}
}

func TestTrigger_UnknownPipeline(t *testing.T) {
	m := NewMonitor(testRegistry(t), &fakeTriggerer{}, time.Hour, nil)
	_, err := m.Trigger(context.Background(), "backfill", nil)
	if !errors.Is(err, ErrUnknownPipeline) {
		t.Fatalf("expected ErrUnknownPipeline, got %v", err)
	}
}

func TestTrigger_NoRegistry(t *testing.T) {
	m := NewMonitor(nil, &fakeTriggerer{}, time.Hour, nil)
	_, err := m.Trigger(context.Background(), "news", nil)
	if !errors.Is(err, ErrUnknownPipeline) {
		t.Fatalf("expected ErrUnknownPipeline without a registry, got %v", err)
	}
}

func TestStart_PollsAndStopsOnCancel(t *testing.T) {
	source := &fakeStatusSource{name: "backend_api", status: runningStatus("news")}
	m := NewMonitor(testRegistry(t), &fakeTriggerer{}, 10*time.Millisecond, nil, source)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)

	deadline := time.After(2 * time.Second)
	for source.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected repeated polls, got %d", source.Calls())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	m.Wait()

	settled := source.Calls()
	time.Sleep(50 * time.Millisecond)
	if source.Calls() != settled {
		t.Fatal("poll loop must stop when context is cancelled")
	}
}
