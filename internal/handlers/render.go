package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"meryerevan.am/internal/assistant"
	"meryerevan.am/internal/forms"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/logger"
	"meryerevan.am/internal/models"
	"meryerevan.am/internal/services"
	"meryerevan.am/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"isAssistant": func(m assistant.Message) bool { return m.Role == assistant.RoleAssistant },
		"inc": func(i int) int { return i + 1 },
		"closer": func(kind, label string) closeButton {
			return closeButton{Kind: kind, Label: label}
		},
		"card": func(page pageView, p services.ProjectView) cardView {
			return cardView{Page: page, Project: p}
		},
	}).ParseFS(templateFS, "templates/*.html"))
}

type langOption struct {
	Code   i18n.Language
	Label  string
	Active bool
}

type stageTab struct {
	Stage    models.Stage
	LabelKey string
	Count    int
	Active   bool
}

type closeButton struct {
	Kind  string
	Label string
}

type cardView struct {
	Page    pageView
	Project services.ProjectView
}

type projectModalView struct {
	Project  services.ProjectView
	Index    int
	Image    string
	Vote     string
	Messages []assistant.Message
	Busy     bool
}

type contactModalView struct {
	ProjectTitle string
	Type         forms.ContactType
	TitleKey     string
	DescKey      string
	Submitted    bool
	Invalid      bool
	Fields       map[string]string
}

type formModalView struct {
	Submitted bool
	Invalid   bool
	Fields    map[string]string
}

type pageView struct {
	L         i18n.Localizer
	Languages []langOption
	Stages    []stageTab
	Filter    models.Stage
	GridTitle string
	CountText string
	Projects  []services.ProjectView
	Pins      []services.PinView

	Project    *projectModalView
	Contact    *contactModalView
	Suggestion *formModalView
	About      bool

	// Refresh reloads the page once a submitted modal has closed itself.
	Refresh int
	Year    int
}

// invalidForm marks which modal is being redisplayed after a failed submit.
type invalidForm forms.Kind

// renderPage renders the full page for the visitor's current state.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, st *session.State, lang i18n.Language, status int, invalid invalidForm) {
	view := h.buildPage(st, lang, invalid)

	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "page", view); err != nil {
		logger.L().Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) buildPage(st *session.State, lang i18n.Language, invalid invalidForm) pageView {
	tr := h.cfg.Translations
	primary := h.projects.Primary()
	filter := st.Filter()

	view := pageView{
		L:         tr.For(lang),
		Filter:    filter,
		GridTitle: tr.T(lang, services.GridTitleKey(filter)),
		Projects:  services.LocalizeAll(h.projects.ByStage(filter), lang, primary),
		Pins:      h.cityMap.Pins(lang),
		Year:      time.Now().Year(),
	}
	view.CountText = tr.Format(lang, "projectsCount", map[string]string{
		"count": i18n.FormatCount(int64(len(view.Projects)), lang),
	})

	for _, l := range i18n.Supported() {
		view.Languages = append(view.Languages, langOption{Code: l, Label: l.Label(), Active: l == lang})
	}
	for _, s := range h.projects.Stages() {
		view.Stages = append(view.Stages, stageTab{
			Stage:    s,
			LabelKey: services.StageLabelKey(s),
			Count:    h.projects.Count(s),
			Active:   s == filter,
		})
	}

	if st.Project.IsOpen() {
		if p, err := h.projects.GetByID(st.Project.ProjectID()); err == nil {
			pv := services.Localize(p, lang, primary)
			m := &projectModalView{
				Project:  pv,
				Index:    st.Project.Index(),
				Vote:     st.Project.SelectedVote(),
				Messages: st.Project.Panel().Messages(),
				Busy:     st.Project.Panel().Busy(),
			}
			if m.Index < len(pv.Gallery) {
				m.Image = pv.Gallery[m.Index]
			}
			view.Project = m
		}
	}

	var refresh time.Duration
	if st.Contact.IsOpen() {
		c := &contactModalView{
			Type:      st.Contact.Type(),
			Submitted: st.Contact.State() == forms.Submitted,
			Invalid:   invalid == invalidForm(forms.KindContact),
			Fields:    st.Contact.Fields(),
		}
		c.TitleKey, c.DescKey = contactCopy(c.Type)
		if p, err := h.projects.GetByID(st.Contact.ProjectID()); err == nil {
			c.ProjectTitle = p.Title.Get(lang, primary)
		}
		if c.Submitted {
			refresh = h.cfg.ContactCloseDelay
		}
		view.Contact = c
	}
	if st.Suggestion.IsOpen() {
		s := &formModalView{
			Submitted: st.Suggestion.State() == forms.Submitted,
			Invalid:   invalid == invalidForm(forms.KindSuggestion),
			Fields:    st.Suggestion.Fields(),
		}
		if s.Submitted && h.cfg.SuggestCloseDelay > refresh {
			refresh = h.cfg.SuggestCloseDelay
		}
		view.Suggestion = s
	}
	view.About = st.About.IsOpen()

	if refresh > 0 {
		view.Refresh = int(math.Ceil(refresh.Seconds()))
	}
	return view
}

// contactCopy returns the title and description keys of a contact variant.
func contactCopy(t forms.ContactType) (string, string) {
	switch t {
	case forms.ContactArchitect:
		return "applyArchitect", "architectDesc"
	case forms.ContactVote:
		return "voteTitle", "voteDesc"
	}
	return "becomeSponsor", "sponsorDesc"
}

// redirectHome sends the browser back to the page after a POST action.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func atoiDefault(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
