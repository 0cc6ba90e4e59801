package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"meryerevan.am/internal/assistant"
	"meryerevan.am/internal/forms"
	"meryerevan.am/internal/services"
)

// OpenProject handles GET /projects/{id}
func (h *Handler) OpenProject(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	project, err := h.projects.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	st.CloseAll()
	st.Project.Open(services.Localize(project, lang, h.projects.Primary()), lang)
	h.renderPage(w, r, st, lang, http.StatusOK, "")
}

// Gallery handles POST /projects/{id}/gallery with move=next|prev or index=N
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	if !st.Project.IsOpen() || st.Project.ProjectID() != chi.URLParam(r, "id") {
		redirectHome(w, r)
		return
	}

	switch r.FormValue("move") {
	case "next":
		st.Project.Next()
	case "prev":
		st.Project.Prev()
	default:
		st.Project.Select(atoiDefault(r.FormValue("index"), -1))
	}
	redirectHome(w, r)
}

// SelectVote handles POST /projects/{id}/vote with option=<id>
func (h *Handler) SelectVote(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	if st.Project.IsOpen() && st.Project.ProjectID() == chi.URLParam(r, "id") {
		st.Project.SelectVote(r.FormValue("option"))
	}
	redirectHome(w, r)
}

type chatResponse struct {
	Busy     bool                `json:"busy"`
	Messages []assistant.Message `json:"messages"`
}

// Chat handles POST /projects/{id}/chat. The response is held until the
// reply has been appended or the client goes away.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	if !st.Project.IsOpen() || st.Project.ProjectID() != chi.URLParam(r, "id") {
		respondError(w, http.StatusConflict, "Project is not open")
		return
	}
	panel := st.Project.Panel()
	panel.SetLanguage(h.language(w, r))

	done, err := panel.Send(r.Context(), r.FormValue("message"))
	switch {
	case errors.Is(err, assistant.ErrEmpty), errors.Is(err, assistant.ErrBusy):
		// nothing was sent
	case err != nil:
		respondError(w, http.StatusConflict, "Project is not open")
		return
	default:
		select {
		case <-done:
		case <-r.Context().Done():
			return
		}
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, chatResponse{Busy: panel.Busy(), Messages: panel.Messages()})
		return
	}
	redirectHome(w, r)
}

// OpenContact handles GET /contact?project=&type=
func (h *Handler) OpenContact(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	projectID := r.URL.Query().Get("project")
	if projectID != "" {
		if _, err := h.projects.GetByID(projectID); err != nil {
			http.NotFound(w, r)
			return
		}
	}

	st.Suggestion.Cancel()
	st.About.Cancel()
	st.Contact.OpenFor(projectID, forms.ParseContactType(r.URL.Query().Get("type")))
	h.renderPage(w, r, st, lang, http.StatusOK, "")
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)

	err := st.Contact.Submit(forms.NewContactForm(r.FormValue("name"), r.FormValue("contact")))
	if errors.Is(err, forms.ErrIncomplete) {
		h.renderPage(w, r, st, h.language(w, r), http.StatusUnprocessableEntity, invalidForm(forms.KindContact))
		return
	}
	redirectHome(w, r)
}

// OpenSuggestion handles GET /suggest
func (h *Handler) OpenSuggestion(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	st.CloseAll()
	st.Suggestion.Open()
	h.renderPage(w, r, st, lang, http.StatusOK, "")
}

// SubmitSuggestion handles POST /suggest
func (h *Handler) SubmitSuggestion(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)

	err := st.Suggestion.Submit(forms.NewSuggestionForm(
		r.FormValue("title"),
		r.FormValue("location"),
		r.FormValue("description"),
	))
	if errors.Is(err, forms.ErrIncomplete) {
		h.renderPage(w, r, st, h.language(w, r), http.StatusUnprocessableEntity, invalidForm(forms.KindSuggestion))
		return
	}
	redirectHome(w, r)
}

// OpenAbout handles GET /about
func (h *Handler) OpenAbout(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)
	lang := h.language(w, r)

	st.CloseAll()
	st.About.Open()
	h.renderPage(w, r, st, lang, http.StatusOK, "")
}

// CloseModal handles POST /modal/close with modal=project|contact|suggestion|about.
// Without a modal value every open modal is closed.
func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	st := mustState(r)

	switch forms.Kind(r.FormValue("modal")) {
	case forms.KindProject:
		st.Contact.Cancel()
		st.Project.Close()
	case forms.KindContact:
		st.Contact.Cancel()
	case forms.KindSuggestion:
		st.Suggestion.Cancel()
	case forms.KindAbout:
		st.About.Cancel()
	default:
		st.CloseAll()
	}
	redirectHome(w, r)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
