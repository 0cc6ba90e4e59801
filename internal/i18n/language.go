package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the site's supported UI languages.
type Language string

const (
	Armenian Language = "am"
	Russian  Language = "ru"
	English  Language = "en"
)

// Fallback is the table consulted when the active language lacks a key.
const Fallback = English

// DefaultSelection is the language shown to a visitor with no stored preference.
const DefaultSelection = Armenian

var supported = []Language{Armenian, Russian, English}

var tags = map[Language]language.Tag{
	Armenian: language.Armenian,
	Russian:  language.Russian,
	English:  language.English,
}

var matcher = language.NewMatcher([]language.Tag{
	language.Armenian,
	language.Russian,
	language.English,
})

// Supported returns the supported languages in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Parse normalises a language code. The ISO code "hy" is accepted for Armenian.
func Parse(value string) (Language, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", false
	}
	if v == "hy" {
		return Armenian, true
	}
	for _, lang := range supported {
		if string(lang) == v {
			return lang, true
		}
	}
	if tag, err := language.Parse(v); err == nil {
		base, _ := tag.Base()
		for lang, t := range tags {
			if b, _ := t.Base(); b == base {
				return lang, true
			}
		}
	}
	return "", false
}

// Tag returns the BCP 47 tag used for locale-aware formatting.
func (l Language) Tag() language.Tag {
	if tag, ok := tags[l]; ok {
		return tag
	}
	return tags[Fallback]
}

// Label is the short switcher label ("AM", "RU", "EN").
func (l Language) Label() string {
	return strings.ToUpper(string(l))
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) (Language, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}
