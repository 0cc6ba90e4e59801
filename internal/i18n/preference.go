package i18n

import (
	"net/http"
	"strings"
	"time"
)

const (
	// QueryParam selects a language for the current and future requests.
	QueryParam = "lang"
	// CookieName stores the visitor's language choice.
	CookieName = "lang"
)

// ResolveRequest determines the language for r.
// The bool reports whether the choice came from the query and should be
// written back with Remember.
func ResolveRequest(r *http.Request, def Language) (Language, bool) {
	if r == nil {
		return def, false
	}
	if v := strings.TrimSpace(r.URL.Query().Get(QueryParam)); v != "" {
		if lang, ok := Parse(v); ok {
			return lang, true
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if lang, ok := Parse(c.Value); ok {
			return lang, false
		}
	}
	if lang, ok := MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return lang, false
	}
	return def, false
}

// Remember persists lang in a long-lived cookie.
func Remember(w http.ResponseWriter, lang Language) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
