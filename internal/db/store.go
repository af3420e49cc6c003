package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// DashboardStatsView reads the precomputed dashboard_stats view. The
// row is accepted as-is; this is the second retrieval tier.
func (s *Store) DashboardStatsView(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.pool.QueryRow(ctx, `
		SELECT total_publications, total_innovations, total_organizations,
			verified_individuals, unique_countries, unique_keywords,
			avg_african_relevance, avg_ai_relevance, last_updated
		FROM dashboard_stats
	`).Scan(
		&stats.TotalPublications, &stats.TotalInnovations, &stats.TotalOrganizations,
		&stats.VerifiedIndividuals, &stats.UniqueCountries, &stats.UniqueKeywords,
		&stats.AvgAfricanRelevance, &stats.AvgAIRelevance, &stats.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard_stats read failed: %w", err)
	}
	return &stats, nil
}

func (s *Store) CountPublications(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM publications")
}

func (s *Store) CountInnovations(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM innovations")
}

func (s *Store) CountOrganizations(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM organizations")
}

func (s *Store) CountVerifiedIndividuals(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM individuals WHERE verified = TRUE")
}

func (s *Store) countRows(ctx context.Context, sql string) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return n, nil
}

// RelevanceRow carries the scoring and array fields used by the manual
// aggregation tier.
type RelevanceRow struct {
	AfricanScore    float64
	AIScore         float64
	AfricanEntities []string
	Keywords        []string
}

// RelevanceRows bulk-reads the relevance-scoring and array fields from
// publications for manual accumulation.
func (s *Store) RelevanceRows(ctx context.Context) ([]RelevanceRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT african_relevance_score, ai_relevance_score, african_entities, keywords
		FROM publications
	`)
	if err != nil {
		return nil, fmt.Errorf("relevance read failed: %w", err)
	}
	defer rows.Close()

	var result []RelevanceRow
	for rows.Next() {
		var r RelevanceRow
		if err := rows.Scan(&r.AfricanScore, &r.AIScore, &r.AfricanEntities, &r.Keywords); err != nil {
			return nil, fmt.Errorf("relevance scan failed: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("relevance rows iteration failed: %w", err)
	}
	return result, nil
}

// PipelineStatuses reads the etl_status fallback table and maps it into
// the common ETLStatus shape.
func (s *Store) PipelineStatuses(ctx context.Context) (*models.ETLStatus, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT pipeline, active, state, last_run, items_processed,
			success_count, error_count, avg_runtime_seconds, updated_at
		FROM etl_status
	`)
	if err != nil {
		return nil, fmt.Errorf("etl_status read failed: %w", err)
	}
	defer rows.Close()

	status := &models.ETLStatus{
		Pipelines:    map[string]models.PipelineStatus{},
		SystemHealth: "unknown",
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	for rows.Next() {
		var (
			p       models.PipelineStatus
			m       models.PipelineMetrics
			state   string
			lastRun *time.Time
			updated time.Time
		)
		if err := rows.Scan(&p.Name, &p.Active, &state, &lastRun, &m.ItemsProcessed,
			&m.SuccessCount, &m.ErrorCount, &m.AvgRuntimeSecs, &updated); err != nil {
			return nil, fmt.Errorf("etl_status scan failed: %w", err)
		}
		p.State = models.PipelineState(state)
		p.LastRun = lastRun
		p.Metrics = &m
		status.Pipelines[p.Name] = p

		if lastRun != nil && !lastRun.Before(startOfDay) {
			status.ProcessedToday += m.ItemsProcessed
			status.ErrorsToday += m.ErrorCount
		}
		if updated.After(status.LastUpdated) {
			status.LastUpdated = updated
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("etl_status rows iteration failed: %w", err)
	}

	if len(status.Pipelines) == 0 {
		return nil, fmt.Errorf("etl_status table is empty")
	}
	if status.LastUpdated.IsZero() {
		status.LastUpdated = time.Now().UTC()
	}
	return status, nil
}

// RecentPublications returns the newest scored publications, used by
// the dashboard's recent-results panel when the backend is down.
func (s *Store) RecentPublications(ctx context.Context, limit int) ([]models.Publication, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, COALESCE(abstract, ''), source, COALESCE(url, ''),
			COALESCE(year, 0), COALESCE(domain, ''), publication_date,
			african_relevance_score, ai_relevance_score, african_entities, keywords
		FROM publications
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent publications read failed: %w", err)
	}
	defer rows.Close()

	var pubs []models.Publication
	for rows.Next() {
		var (
			p       models.Publication
			pubDate *time.Time
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Abstract, &p.Source, &p.URL,
			&p.Year, &p.Domain, &pubDate,
			&p.AfricanRelevanceScore, &p.AIRelevanceScore,
			&p.AfricanEntities, &p.Keywords); err != nil {
			return nil, fmt.Errorf("publication scan failed: %w", err)
		}
		p.PublicationDate = pubDate
		pubs = append(pubs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("publications iteration failed: %w", err)
	}
	return pubs, nil
}

// RecentInnovations returns the newest public innovations.
func (s *Store) RecentInnovations(ctx context.Context, limit int) ([]models.Innovation, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, innovation_type, creation_date,
			verification_status, visibility, COALESCE(country, ''),
			COALESCE(website_url, ''), created_at, updated_at
		FROM innovations
		WHERE visibility = 'public'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent innovations read failed: %w", err)
	}
	defer rows.Close()

	var inns []models.Innovation
	for rows.Next() {
		var (
			i        models.Innovation
			creation *time.Time
			verif    string
			vis      string
		)
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.InnovationType,
			&creation, &verif, &vis, &i.Country, &i.WebsiteURL,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("innovation scan failed: %w", err)
		}
		i.CreationDate = creation
		i.VerificationStatus = models.VerificationStatus(verif)
		i.Visibility = models.Visibility(vis)
		inns = append(inns, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("innovations iteration failed: %w", err)
	}
	return inns, nil
}

// InnovationSearchParams mirrors the listing endpoint's filter set for
// the fallback search path.
type InnovationSearchParams struct {
	Query          string
	InnovationType string
	Country        string
	Verification   string
	Limit          int
	Offset         int
}

// SearchInnovations runs the listing query against the fallback
// database. Only public innovations are visible; free text matches
// title or description case-insensitively.
func (s *Store) SearchInnovations(ctx context.Context, params InnovationSearchParams) (*models.ListResult, error) {
	where := "WHERE visibility = 'public'"
	var args []interface{}
	argIdx := 1

	if params.Query != "" {
		where += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, params.Query)
		argIdx++
	}
	if params.InnovationType != "" {
		where += fmt.Sprintf(" AND innovation_type = $%d", argIdx)
		args = append(args, params.InnovationType)
		argIdx++
	}
	if params.Country != "" {
		where += fmt.Sprintf(" AND country = $%d", argIdx)
		args = append(args, params.Country)
		argIdx++
	}
	if params.Verification != "" {
		where += fmt.Sprintf(" AND verification_status = $%d", argIdx)
		args = append(args, params.Verification)
		argIdx++
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM innovations "+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("innovation count failed: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`
		SELECT id, title, description, innovation_type, creation_date,
			verification_status, visibility, COALESCE(country, ''),
			COALESCE(website_url, ''), created_at, updated_at
		FROM innovations %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, params.Offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("innovation search failed: %w", err)
	}
	defer rows.Close()

	result := &models.ListResult{
		Innovations: []models.Innovation{},
		Total:       total,
		Limit:       limit,
		Offset:      params.Offset,
	}
	for rows.Next() {
		var (
			i        models.Innovation
			creation *time.Time
			verif    string
			vis      string
		)
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.InnovationType,
			&creation, &verif, &vis, &i.Country, &i.WebsiteURL,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("innovation scan failed: %w", err)
		}
		i.CreationDate = creation
		i.VerificationStatus = models.VerificationStatus(verif)
		i.Visibility = models.Visibility(vis)
		result.Innovations = append(result.Innovations, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("innovation search iteration failed: %w", err)
	}
	result.HasMore = params.Offset+len(result.Innovations) < total
	return result, nil
}
