package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
	"meryerevan.am/internal/services"
)

// projectList is the body of GET /api/projects
type projectList struct {
	Language i18n.Language          `json:"language"`
	Stage    models.Stage           `json:"stage,omitempty"`
	Projects []services.ProjectView `json:"projects"`
}

// ListProjects handles GET /api/projects?stage=&lang=
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	lang := h.apiLanguage(r)

	all := h.projects.GetAll()
	stage := models.ParseStage(r.URL.Query().Get("stage"))
	if stage != "" {
		all = services.FilterByStage(all, stage)
	}

	respondJSON(w, http.StatusOK, projectList{
		Language: lang,
		Stage:    stage,
		Projects: services.LocalizeAll(all, lang, h.projects.Primary()),
	})
}

// GetProject handles GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projects.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondJSON(w, http.StatusOK, services.Localize(project, h.apiLanguage(r), h.projects.Primary()))
}

// GetMap handles GET /api/map
func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pins": h.cityMap.Pins(h.apiLanguage(r)),
	})
}

// apiLanguage reads ?lang= and falls back to the usual request resolution
// without persisting anything.
func (h *Handler) apiLanguage(r *http.Request) i18n.Language {
	if v := strings.TrimSpace(r.URL.Query().Get(i18n.QueryParam)); v != "" {
		if lang, ok := i18n.Parse(v); ok {
			return lang
		}
	}
	lang, _ := i18n.ResolveRequest(r, h.cfg.DefaultLanguage)
	return lang
}
