// Package stats assembles the dashboard's aggregate snapshot from an
// ordered list of data sources: the backend statistics endpoint, the
// precomputed dashboard_stats view, and finally manual aggregation over
// raw rows. The first source to succeed wins; each source is attempted
// at most once per fetch cycle.
package stats

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/db"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

// ErrNoSources is returned when the service was built with no sources,
// which only happens when neither a backend URL nor a database is
// configured.
var ErrNoSources = errors.New("no statistics sources configured")

// Source is one tier of the dashboard statistics retrieval order.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*models.DashboardStats, error)
}

type Service struct {
	sources []Source
	log     *zap.Logger
}

func NewService(log *zap.Logger, sources ...Source) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{sources: sources, log: log}
}

// Snapshot tries each source in order and returns the first success.
// The serving tier is logged; failed tiers are logged at debug level
// and never retried within the cycle.
func (s *Service) Snapshot(ctx context.Context) (*models.DashboardStats, error) {
	if len(s.sources) == 0 {
		return nil, ErrNoSources
	}

	var lastErr error
	for _, src := range s.sources {
		stats, err := src.Fetch(ctx)
		if err != nil {
			s.log.Debug("stats source failed",
				zap.String("source", src.Name()), zap.Error(err))
			lastErr = err
			continue
		}
		s.log.Info("stats served", zap.String("source", src.Name()))
		return stats, nil
	}
	return nil, lastErr
}

// BackendSource fetches the backend statistics endpoint (tier 1).
type BackendSource struct {
	Client interface {
		GetStats(ctx context.Context) (*models.DashboardStats, error)
	}
}

func (b BackendSource) Name() string { return "backend_api" }

func (b BackendSource) Fetch(ctx context.Context) (*models.DashboardStats, error) {
	return b.Client.GetStats(ctx)
}

// ViewSource reads the precomputed aggregate view (tier 2).
type ViewSource struct {
	Store *db.Store
}

func (v ViewSource) Name() string { return "dashboard_stats_view" }

func (v ViewSource) Fetch(ctx context.Context) (*models.DashboardStats, error) {
	return v.Store.DashboardStatsView(ctx)
}

// Aggregatable is the subset of the store the manual tier needs. It is
// an interface so the accumulation logic is testable without Postgres.
type Aggregatable interface {
	CountPublications(ctx context.Context) (int, error)
	CountInnovations(ctx context.Context) (int, error)
	CountOrganizations(ctx context.Context) (int, error)
	CountVerifiedIndividuals(ctx context.Context) (int, error)
	RelevanceRows(ctx context.Context) ([]db.RelevanceRow, error)
}

// ManualSource recomputes the aggregates from raw rows (tier 3): four
// row-count queries issued as one parallel batch plus one bulk read of
// the relevance and array fields.
type ManualSource struct {
	Store Aggregatable
}

func (m ManualSource) Name() string { return "manual_aggregation" }

func (m ManualSource) Fetch(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{LastUpdated: time.Now().UTC()}

	var rows []db.RelevanceRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalPublications, err = m.Store.CountPublications(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalInnovations, err = m.Store.CountInnovations(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalOrganizations, err = m.Store.CountOrganizations(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.VerifiedIndividuals, err = m.Store.CountVerifiedIndividuals(gctx)
		return err
	})
	g.Go(func() (err error) {
		rows, err = m.Store.RelevanceRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := Accumulate(rows)
	stats.UniqueCountries = agg.UniqueCountries
	stats.UniqueKeywords = agg.UniqueKeywords
	stats.AvgAfricanRelevance = agg.AvgAfricanRelevance
	stats.AvgAIRelevance = agg.AvgAIRelevance
	return stats, nil
}

// Accumulation holds the derived quantities computed from raw rows.
type Accumulation struct {
	UniqueCountries     int
	UniqueKeywords      int
	AvgAfricanRelevance float64
	AvgAIRelevance      float64
}

// Accumulate computes distinct-set sizes and mean relevance scores.
//
// A score pair contributes to the running averages only when both the
// African and the AI score are strictly positive: a zero means the
// pipeline has not scored that row yet, not a legitimate zero score.
// With zero qualifying pairs both averages are exactly 0.
func Accumulate(rows []db.RelevanceRow) Accumulation {
	countries := map[string]struct{}{}
	keywords := map[string]struct{}{}

	var sumAfrican, sumAI float64
	qualifying := 0

	for _, row := range rows {
		for _, entity := range row.AfricanEntities {
			if entity != "" {
				countries[entity] = struct{}{}
			}
		}
		for _, kw := range row.Keywords {
			if kw != "" {
				keywords[kw] = struct{}{}
			}
		}
		if row.AfricanScore > 0 && row.AIScore > 0 {
			sumAfrican += row.AfricanScore
			sumAI += row.AIScore
			qualifying++
		}
	}

	acc := Accumulation{
		UniqueCountries: len(countries),
		UniqueKeywords:  len(keywords),
	}
	if qualifying > 0 {
		acc.AvgAfricanRelevance = sumAfrican / float64(qualifying)
		acc.AvgAIRelevance = sumAI / float64(qualifying)
	}
	return acc
}
