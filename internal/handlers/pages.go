package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
	"meryerevan.am/internal/services"
	"meryerevan.am/internal/session"
)

// language resolves the page language and persists an explicit ?lang= choice.
func (h *Handler) language(w http.ResponseWriter, r *http.Request) i18n.Language {
	lang, persist := i18n.ResolveRequest(r, h.cfg.DefaultLanguage)
	if persist {
		i18n.Remember(w, lang)
	}
	return lang
}

func mustState(r *http.Request) *session.State {
	st, ok := session.FromContext(r.Context())
	if !ok {
		panic("session state missing from request context")
	}
	return st
}

// Index handles GET /?stage=&lang=
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	if v := r.URL.Query().Get("stage"); v != "" {
		st.SetFilter(models.ParseStage(v))
	}

	h.renderPage(w, r, st, lang, http.StatusOK, "")
}

// SetLanguage handles POST /lang. Open modals keep their state.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(r.FormValue("lang"))
	if !ok {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	i18n.Remember(w, lang)
	redirectHome(w, r)
}

// OpenPin handles GET /map/{pin}
func (h *Handler) OpenPin(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	project, err := h.cityMap.ProjectAt(atoiDefault(chi.URLParam(r, "pin"), -1))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	st.CloseAll()
	st.Project.Open(services.Localize(project, lang, h.projects.Primary()), lang)
	h.renderPage(w, r, st, lang, http.StatusOK, "")
}
