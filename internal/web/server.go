package web

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/auth"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/contact"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/db"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/etl"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/explore"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/funding"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/stats"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Deps carries the services the server exposes. Backend, Store-backed
// services and Auth may be nil; the corresponding routes degrade
// gracefully instead of failing at startup.
type Deps struct {
	Stats   *stats.Service
	Monitor *etl.Monitor
	Backend *backend.Client
	Store   *db.Store
	Auth    *auth.Service
	Contact *contact.Service
	Log     *zap.Logger
}

type Server struct {
	Echo    *echo.Echo
	stats   *stats.Service
	monitor *etl.Monitor
	backend *backend.Client
	store   *db.Store
	auth    *auth.Service
	contact *contact.Service
	log     *zap.Logger
}

func NewServer(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	allowedOrigins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Admin-Secret"},
	}))

	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		Echo:    e,
		stats:   deps.Stats,
		monitor: deps.Monitor,
		backend: deps.Backend,
		store:   deps.Store,
		auth:    deps.Auth,
		contact: deps.Contact,
		log:     log,
	}

	e.Renderer = newRenderer()
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api")
	api.GET("/stats", s.handleGetStats)
	api.GET("/innovations", s.handleListInnovations)
	api.GET("/innovations/filters", s.handleFilterOptions)
	api.GET("/publications/recent", s.handleRecentPublications)
	api.GET("/etl/status", s.handleETLStatus)
	api.GET("/funding/breakdown", s.handleFundingBreakdown)
	api.POST("/contact", s.handleContact)
	api.POST("/auth/login", s.handleLogin)

	admin := api.Group("/etl")
	admin.Use(auth.RequireAdmin)
	admin.POST("/trigger/:pipeline", s.handleTriggerPipeline)

	s.Echo.GET("/", s.handleHomePage)
	s.Echo.GET("/dashboard", s.handleDashboardPage)
	s.Echo.GET("/explore", s.handleExplorePage)
	s.Echo.GET("/contact", s.handleContactPage)
	s.Echo.GET("/about", s.handleAboutPage)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleGetStats(c echo.Context) error {
	if s.stats == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "no statistics sources configured"})
	}
	snapshot, err := s.stats.Snapshot(c.Request().Context())
	if err != nil {
		s.log.Error("all statistics tiers failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "statistics are temporarily unavailable"})
	}
	return c.JSON(http.StatusOK, snapshot)
}

func (s *Server) handleListInnovations(c echo.Context) error {
	params := backend.ListParams{
		Query:              c.QueryParam("query"),
		InnovationType:     c.QueryParam("innovation_type"),
		Country:            c.QueryParam("country"),
		VerificationStatus: c.QueryParam("verification_status"),
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		params.Limit = l
	}
	if o, err := strconv.Atoi(c.QueryParam("offset")); err == nil && o >= 0 {
		params.Offset = o
	}
	if v, err := strconv.ParseFloat(c.QueryParam("funding_min"), 64); err == nil && v > 0 {
		params.FundingMin = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("funding_max"), 64); err == nil && v > 0 {
		params.FundingMax = v
	}

	if s.backend != nil {
		result, err := s.backend.ListInnovations(c.Request().Context(), params)
		if err == nil {
			return c.JSON(http.StatusOK, result)
		}
		s.log.Error("backend listing failed", zap.Error(err))
		if s.store == nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": backend.UserMessage(err)})
		}
	}

	if s.store != nil {
		result, err := s.store.SearchInnovations(c.Request().Context(), db.InnovationSearchParams{
			Query:          params.Query,
			InnovationType: params.InnovationType,
			Country:        params.Country,
			Verification:   params.VerificationStatus,
			Limit:          params.Limit,
			Offset:         params.Offset,
		})
		if err != nil {
			s.log.Error("fallback listing failed", zap.Error(err))
			return c.JSON(http.StatusBadGateway, map[string]string{"error": backend.UserMessage(err)})
		}
		return c.JSON(http.StatusOK, result)
	}

	return c.JSON(http.StatusOK, models.ListResult{Innovations: []models.Innovation{}})
}

func (s *Server) handleFilterOptions(c echo.Context) error {
	if s.backend == nil {
		return c.JSON(http.StatusOK, explore.PlaceholderOptions())
	}
	opts, err := s.backend.GetFilterOptions(c.Request().Context())
	if err != nil {
		s.log.Warn("filter options unavailable, serving placeholders", zap.Error(err))
		return c.JSON(http.StatusOK, explore.PlaceholderOptions())
	}
	return c.JSON(http.StatusOK, opts)
}

// handleRecentPublications serves the dashboard's recent-results panel:
// the backend's academic results endpoint when reachable, the fallback
// table otherwise, an empty list in fully degraded mode.
func (s *Server) handleRecentPublications(c echo.Context) error {
	limit := 5
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}

	if s.backend != nil {
		pubs, err := s.backend.RecentPublications(c.Request().Context(), limit)
		if err == nil {
			return c.JSON(http.StatusOK, pubs)
		}
		s.log.Debug("backend publications unavailable", zap.Error(err))
	}
	if s.store != nil {
		pubs, err := s.store.RecentPublications(c.Request().Context(), limit)
		if err == nil {
			return c.JSON(http.StatusOK, pubs)
		}
		s.log.Debug("fallback publications unavailable", zap.Error(err))
	}
	return c.JSON(http.StatusOK, []models.Publication{})
}

func (s *Server) handleETLStatus(c echo.Context) error {
	if s.monitor == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "pipeline monitoring is not configured"})
	}
	return c.JSON(http.StatusOK, s.monitor.Status())
}

func (s *Server) handleTriggerPipeline(c echo.Context) error {
	if s.monitor == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "pipeline monitoring is not configured"})
	}

	name := c.Param("pipeline")
	var payload map[string]any
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid trigger payload"})
		}
	}

	result, err := s.monitor.Trigger(c.Request().Context(), name, payload)
	if err != nil {
		if errors.Is(err, etl.ErrUnknownPipeline) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		s.log.Error("pipeline trigger failed", zap.String("pipeline", name), zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{"error": backend.UserMessage(err)})
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleFundingBreakdown(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"series":               funding.Breakdown(),
		"entry_count":          funding.EntryCount(),
		"grand_total_millions": funding.GrandTotalMillions(),
		"headline":             funding.Headline(),
		"verification":         funding.Verification(),
	})
}

func (s *Server) handleContact(c echo.Context) error {
	if s.contact == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "contact intake is not configured"})
	}

	var sub contact.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	receipt, err := s.contact.Submit(c.Request().Context(), sub)
	if err != nil {
		if errors.Is(err, contact.ErrMissingField) || errors.Is(err, contact.ErrUnknownSubject) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		s.log.Error("contact delivery failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "message could not be delivered"})
	}
	return c.JSON(http.StatusAccepted, receipt)
}

func (s *Server) handleLogin(c echo.Context) error {
	if s.auth == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "authentication requires a database"})
	}

	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.auth.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCreds) || errors.Is(err, auth.ErrNotAdmin) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}
