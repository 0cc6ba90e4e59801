package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"meryerevan.am/internal/assistant"
	"meryerevan.am/internal/clock"
	"meryerevan.am/internal/config"
	"meryerevan.am/internal/forms"
	"meryerevan.am/internal/logger"
	"meryerevan.am/internal/metrics"
	"meryerevan.am/internal/middleware"
	"meryerevan.am/internal/services"
	"meryerevan.am/internal/session"
)

// Dependencies are the collaborators the router does not build itself
type Dependencies struct {
	Clock     clock.Clock
	Responder assistant.Responder
	Sessions  *session.Store
}

func (d Dependencies) withDefaults(cfg *config.Config) Dependencies {
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	if d.Responder == nil {
		d.Responder = assistant.NewCannedResponder(cfg.Translations, d.Clock, cfg.AssistantReplyDelay)
	}
	return d
}

// NewSessionStore creates the visitor state store. Each new visitor gets
// closed modals wired to the submission and assistant metrics.
func NewSessionStore(cfg *config.Config, deps Dependencies) *session.Store {
	deps = deps.withDefaults(cfg)

	onSubmit := func(kind forms.Kind, fields map[string]string) {
		metrics.FormSubmissionsTotal.WithLabelValues(string(kind), fields["type"]).Inc()
		logger.L().Info("form submitted",
			zap.String("kind", string(kind)),
			zap.String("type", fields["type"]),
			zap.String("project", fields["project"]),
		)
	}
	onReply := func(o assistant.Outcome) {
		metrics.AssistantRepliesTotal.WithLabelValues(string(o)).Inc()
		if o == assistant.OutcomeError {
			logger.L().Warn("assistant request failed")
		}
	}

	factory := func() *session.State {
		return session.NewState(
			services.DefaultStage,
			forms.NewProjectModal(assistant.NewPanel(cfg.Translations, deps.Responder, onReply)),
			forms.NewContactModal(deps.Clock, cfg.ContactCloseDelay, onSubmit),
			forms.NewModal(forms.KindSuggestion, deps.Clock, cfg.SuggestCloseDelay, onSubmit),
			forms.NewModal(forms.KindAbout, deps.Clock, 0, nil),
		)
	}
	return session.NewStore(factory, cfg.SessionTTL, cfg.SessionSweep)
}

// Handler serves the site
type Handler struct {
	cfg      *config.Config
	projects *services.ProjectService
	cityMap  *services.MapService
	pages    *template.Template
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Dependencies) http.Handler {
	deps = deps.withDefaults(cfg)
	if deps.Sessions == nil {
		deps.Sessions = NewSessionStore(cfg, deps)
	}

	// Initialize services
	projectService := services.NewProjectService(cfg.Catalogue)
	mapService, dropped := services.NewMapService(cfg.CityMap, projectService)
	for _, id := range dropped {
		logger.L().Warn("map pin references unknown project", zap.String("project", id))
	}

	h := &Handler{
		cfg:      cfg,
		projects: projectService,
		cityMap:  mapService,
		pages:    parseTemplates(),
	}
	chatLimiter := middleware.NewRateLimiter(cfg.ChatRateLimit, cfg.ChatRateBurst)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimid.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(chimid.Compress(5))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/map", h.GetMap)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(deps.Sessions))

		r.Get("/", h.Index)
		r.Post("/lang", h.SetLanguage)

		r.Get("/projects/{id}", h.OpenProject)
		r.Post("/projects/{id}/gallery", h.Gallery)
		r.Post("/projects/{id}/vote", h.SelectVote)
		r.With(chatLimiter.Handler).Post("/projects/{id}/chat", h.Chat)
		r.Get("/map/{pin}", h.OpenPin)

		r.Get("/contact", h.OpenContact)
		r.Post("/contact", h.SubmitContact)
		r.Get("/suggest", h.OpenSuggestion)
		r.Post("/suggest", h.SubmitSuggestion)
		r.Get("/about", h.OpenAbout)
		r.Post("/modal/close", h.CloseModal)
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L().Error("encode JSON response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
