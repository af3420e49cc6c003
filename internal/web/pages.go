package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/contact"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/explore"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/funding"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/models"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func (s *Server) handleHomePage(c echo.Context) error {
	data := map[string]any{
		"Title":    "TAIFA-FIALA",
		"Headline": funding.Headline(),
	}
	if s.store != nil {
		recent, err := s.store.RecentInnovations(c.Request().Context(), 6)
		if err != nil {
			s.log.Debug("recent innovations unavailable", zap.Error(err))
		} else {
			data["Recent"] = recent
		}
	}
	return c.Render(http.StatusOK, "home.html", data)
}

func (s *Server) handleDashboardPage(c echo.Context) error {
	data := map[string]any{
		"Title":        "Dashboard",
		"Headline":     funding.Headline(),
		"Series":       funding.Breakdown(),
		"Verification": funding.Verification(),
	}

	if s.stats != nil {
		snapshot, err := s.stats.Snapshot(c.Request().Context())
		if err != nil {
			s.log.Warn("dashboard stats unavailable", zap.Error(err))
			data["StatsError"] = "Statistics are temporarily unavailable."
		} else {
			data["Stats"] = snapshot
		}
	} else {
		data["StatsError"] = "Statistics are temporarily unavailable."
	}

	if s.monitor != nil {
		data["ETL"] = s.monitor.Status()
	}

	return c.Render(http.StatusOK, "dashboard.html", data)
}

func (s *Server) handleExplorePage(c echo.Context) error {
	var opts models.FilterOptions
	if s.backend == nil {
		opts = explore.PlaceholderOptions()
	} else {
		fetched, err := s.backend.GetFilterOptions(c.Request().Context())
		if err != nil {
			opts = explore.PlaceholderOptions()
		} else {
			opts = *fetched
		}
	}

	return c.Render(http.StatusOK, "explore.html", map[string]any{
		"Title":   "Explore Innovations",
		"Options": opts,
	})
}

func (s *Server) handleContactPage(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", map[string]any{
		"Title":    "Contact",
		"Subjects": contact.Subjects,
	})
}

func (s *Server) handleAboutPage(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", map[string]any{
		"Title":      "About",
		"Headline":   funding.Headline(),
		"EntryCount": funding.EntryCount(),
	})
}
