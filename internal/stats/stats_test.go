package stats

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/db"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

func TestAccumulate_SkipsUnscoredPairs(t *testing.T) {
	rows := []db.RelevanceRow{
		{AfricanScore: 0.8, AIScore: 0.9},
		{AfricanScore: 0, AIScore: 0.9},   // unscored African side
		{AfricanScore: 0.7, AIScore: 0},   // unscored AI side
		{AfricanScore: 0.6, AIScore: 0.5},
	}

	acc := Accumulate(rows)

	if got, want := acc.AvgAfricanRelevance, 0.7; math.Abs(got-want) > 1e-9 {
		t.Fatalf("avg african = %v, want %v", got, want)
	}
	if got, want := acc.AvgAIRelevance, 0.7; math.Abs(got-want) > 1e-9 {
		t.Fatalf("avg ai = %v, want %v", got, want)
	}
}

func TestAccumulate_NoQualifyingPairsIsZero(t *testing.T) {
	rows := []db.RelevanceRow{
		{AfricanScore: 0, AIScore: 0.9},
		{AfricanScore: 0.4, AIScore: 0},
		{},
	}

	acc := Accumulate(rows)

	if acc.AvgAfricanRelevance != 0 || acc.AvgAIRelevance != 0 {
		t.Fatalf("expected zero averages, got %v / %v", acc.AvgAfricanRelevance, acc.AvgAIRelevance)
	}
	if math.IsNaN(acc.AvgAfricanRelevance) || math.IsNaN(acc.AvgAIRelevance) {
		t.Fatal("averages must never be NaN")
	}
}

func TestAccumulate_EmptyInput(t *testing.T) {
	acc := Accumulate(nil)
	if acc.AvgAfricanRelevance != 0 || acc.AvgAIRelevance != 0 {
		t.Fatalf("expected zero averages on empty input, got %+v", acc)
	}
	if acc.UniqueCountries != 0 || acc.UniqueKeywords != 0 {
		t.Fatalf("expected empty sets, got %+v", acc)
	}
}

func TestAccumulate_DistinctSets(t *testing.T) {
	rows := []db.RelevanceRow{
		{AfricanEntities: []string{"Kenya", "Nigeria"}, Keywords: []string{"nlp", "health"}},
		{AfricanEntities: []string{"Kenya", ""}, Keywords: []string{"nlp"}},
		{AfricanEntities: []string{"Ghana"}, Keywords: []string{"", "fintech"}},
	}

	acc := Accumulate(rows)

	if acc.UniqueCountries != 3 {
		t.Fatalf("unique countries = %d, want 3", acc.UniqueCountries)
	}
	if acc.UniqueKeywords != 3 {
		t.Fatalf("unique keywords = %d, want 3", acc.UniqueKeywords)
	}
}

type fakeSource struct {
	name  string
	stats *models.DashboardStats
	err   error
	calls int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context) (*models.DashboardStats, error) {
	f.calls++
	return f.stats, f.err
}

func TestSnapshot_FirstSuccessWins(t *testing.T) {
	primary := &fakeSource{name: "backend_api", stats: &models.DashboardStats{TotalInnovations: 42}}
	secondary := &fakeSource{name: "dashboard_stats_view", stats: &models.DashboardStats{TotalInnovations: 7}}

	svc := NewService(nil, primary, secondary)
	got, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalInnovations != 42 {
		t.Fatalf("expected primary tier result, got %d", got.TotalInnovations)
	}
	if secondary.calls != 0 {
		t.Fatal("secondary tier must not be attempted when primary succeeds")
	}
}

func TestSnapshot_FallsThroughOnFailure(t *testing.T) {
	primary := &fakeSource{name: "backend_api", err: errors.New("dial tcp: connection refused")}
	secondary := &fakeSource{name: "dashboard_stats_view", stats: &models.DashboardStats{TotalPublications: 9}}

	svc := NewService(nil, primary, secondary)
	got, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalPublications != 9 {
		t.Fatalf("expected fallback tier result, got %d", got.TotalPublications)
	}
	if primary.calls != 1 {
		t.Fatalf("each tier is tried at most once per cycle, got %d calls", primary.calls)
	}
}

func TestSnapshot_AllTiersFail(t *testing.T) {
	errLast := errors.New("relation does not exist")
	svc := NewService(nil,
		&fakeSource{name: "backend_api", err: errors.New("503")},
		&fakeSource{name: "manual_aggregation", err: errLast},
	)

	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, errLast) {
		t.Fatalf("expected final-tier error to surface, got %v", err)
	}
}

func TestSnapshot_NoSources(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
}

type fakeAggregatable struct {
	pubs, inns, orgs, verified int
	rows                       []db.RelevanceRow
}

func (f *fakeAggregatable) CountPublications(context.Context) (int, error)  { return f.pubs, nil }
func (f *fakeAggregatable) CountInnovations(context.Context) (int, error)   { return f.inns, nil }
func (f *fakeAggregatable) CountOrganizations(context.Context) (int, error) { return f.orgs, nil }
func (f *fakeAggregatable) CountVerifiedIndividuals(context.Context) (int, error) {
	return f.verified, nil
}
func (f *fakeAggregatable) RelevanceRows(context.Context) ([]db.RelevanceRow, error) {
	return f.rows, nil
}

func TestManualSource_JoinsCountsAndAccumulation(t *testing.T) {
	src := ManualSource{Store: &fakeAggregatable{
		pubs: 120, inns: 30, orgs: 12, verified: 5,
		rows: []db.RelevanceRow{
			{AfricanScore: 0.5, AIScore: 0.5, AfricanEntities: []string{"Rwanda"}, Keywords: []string{"ml"}},
			{AfricanScore: 0, AIScore: 0.9, AfricanEntities: []string{"Senegal"}},
		},
	}}

	stats, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPublications != 120 || stats.TotalInnovations != 30 {
		t.Fatalf("counts not joined: %+v", stats)
	}
	if stats.UniqueCountries != 2 || stats.UniqueKeywords != 1 {
		t.Fatalf("distinct sets wrong: %+v", stats)
	}
	if stats.AvgAfricanRelevance != 0.5 || stats.AvgAIRelevance != 0.5 {
		t.Fatalf("averages wrong: %+v", stats)
	}
	if stats.LastUpdated.IsZero() {
		t.Fatal("last updated must be set")
	}
}
