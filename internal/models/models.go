package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus classifies the evidentiary confidence of a record.
type VerificationStatus string

const (
	VerificationVerified  VerificationStatus = "verified"
	VerificationPending   VerificationStatus = "pending"
	VerificationCommunity VerificationStatus = "community"
)

// Label returns the display name for a verification status. The switch is
// exhaustive; unknown values from the backend fall back to the raw string.
func (v VerificationStatus) Label() string {
	switch v {
	case VerificationVerified:
		return "Verified"
	case VerificationPending:
		return "Pending Review"
	case VerificationCommunity:
		return "Community-Sourced"
	}
	return string(v)
}

// Visibility controls whether a record is publicly listed.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Innovation struct {
	ID                 uuid.UUID          `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	InnovationType     string             `json:"innovation_type"`
	CreationDate       *time.Time         `json:"creation_date"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Visibility         Visibility         `json:"visibility"`
	Country            string             `json:"country,omitempty"`
	WebsiteURL         string             `json:"website_url,omitempty"`
	Organizations      []Organization     `json:"organizations,omitempty"`
	Individuals        []Individual       `json:"individuals,omitempty"`
	Fundings           []FundingRecord    `json:"fundings,omitempty"`
	Publications       []Publication      `json:"publications,omitempty"`
	ImpactMetrics      *ImpactMetrics     `json:"impact_metrics,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type Organization struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OrgType string    `json:"organization_type,omitempty"`
	Country string    `json:"country,omitempty"`
}

type Individual struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role,omitempty"`
	Country  string    `json:"country,omitempty"`
	Verified bool      `json:"verified"`
}

type FundingRecord struct {
	ID          uuid.UUID  `json:"id"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	FunderName  string     `json:"funder_name,omitempty"`
	FundingType string     `json:"funding_type,omitempty"`
	AnnouncedAt *time.Time `json:"announced_at,omitempty"`
}

type ImpactMetrics struct {
	UsersReached int     `json:"users_reached"`
	Revenue      float64 `json:"revenue"`
	JobsCreated  int     `json:"jobs_created"`
}

// Publication is a scored academic or news item produced by the backend
// ETL pipelines. Relevance scores are backend-computed floats in [0,1];
// a zero means "not yet scored", not a legitimate zero score.
type Publication struct {
	ID                    uuid.UUID  `json:"id"`
	Title                 string     `json:"title"`
	Abstract              string     `json:"abstract,omitempty"`
	Source                string     `json:"source"`
	URL                   string     `json:"url,omitempty"`
	Year                  int        `json:"year,omitempty"`
	Domain                string     `json:"domain,omitempty"`
	PublicationDate       *time.Time `json:"publication_date,omitempty"`
	AfricanRelevanceScore float64    `json:"african_relevance_score"`
	AIRelevanceScore      float64    `json:"ai_relevance_score"`
	AfricanEntities       []string   `json:"african_entities,omitempty"`
	Keywords              []string   `json:"keywords,omitempty"`
}

// DashboardStats is the aggregate snapshot rendered on the dashboard.
// All fields are wholesale projections of backend state.
type DashboardStats struct {
	TotalPublications       int       `json:"total_publications"`
	TotalInnovations        int       `json:"total_innovations"`
	TotalOrganizations      int       `json:"total_organizations"`
	VerifiedIndividuals     int       `json:"verified_individuals"`
	UniqueCountries         int       `json:"unique_countries"`
	UniqueKeywords          int       `json:"unique_keywords"`
	AvgAfricanRelevance     float64   `json:"avg_african_relevance"`
	AvgAIRelevance          float64   `json:"avg_ai_relevance"`
	LastUpdated             time.Time `json:"last_updated"`
}

// PipelineState is the coarse run state reported for an ETL pipeline.
type PipelineState string

const (
	PipelineIdle      PipelineState = "idle"
	PipelineRunning   PipelineState = "running"
	PipelineCompleted PipelineState = "completed"
	PipelineError     PipelineState = "error"
)

// PipelineMetrics carries optional per-pipeline throughput numbers.
type PipelineMetrics struct {
	ItemsProcessed int     `json:"items_processed"`
	SuccessCount   int     `json:"success_count"`
	ErrorCount     int     `json:"error_count"`
	AvgRuntimeSecs float64 `json:"avg_runtime_seconds"`
}

type PipelineStatus struct {
	Name    string           `json:"name"`
	Active  bool             `json:"active"`
	State   PipelineState    `json:"state"`
	LastRun *time.Time       `json:"last_run,omitempty"`
	Metrics *PipelineMetrics `json:"metrics,omitempty"`
}

// ETLStatus is the common shape all status tiers are mapped into.
type ETLStatus struct {
	Pipelines      map[string]PipelineStatus `json:"pipelines"`
	ProcessedToday int                       `json:"processed_today"`
	ErrorsToday    int                       `json:"errors_today"`
	SystemHealth   string                    `json:"system_health"`
	LastUpdated    time.Time                 `json:"last_updated"`
}

// ListResult is the paginated envelope for innovation listings.
type ListResult struct {
	Innovations []Innovation `json:"innovations"`
	Total       int          `json:"total"`
	Limit       int          `json:"limit"`
	Offset      int          `json:"offset"`
	HasMore     bool         `json:"has_more"`
}

// FilterOptions enumerates the discrete filter values offered by the
// explore page. In degraded mode a fixed placeholder set is served.
type FilterOptions struct {
	InnovationTypes []string `json:"innovation_types"`
	Countries       []string `json:"countries"`
	Verifications   []string `json:"verification_statuses"`
}
