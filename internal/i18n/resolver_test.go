package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	return NewResolver(map[Language]Table{
		English:  {"greeting": "Hello", "onlyEnglish": "English only", "count": "{count} projects"},
		Russian:  {"greeting": "Привет", "blank": ""},
		Armenian: {"greeting": "Բարեւ"},
	}, English)
}

func TestResolverT(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name string
		lang Language
		key  string
		want string
	}{
		{"active language", Russian, "greeting", "Привет"},
		{"falls back to english", Armenian, "onlyEnglish", "English only"},
		{"empty value falls back", Russian, "blank", "blank"},
		{"unknown key echoed", Russian, "missing.key", "missing.key"},
		{"unknown language uses fallback", Language("fr"), "greeting", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.T(tt.lang, tt.key))
		})
	}
}

func TestResolverNil(t *testing.T) {
	var r *Resolver
	assert.Equal(t, "anything", r.T(English, "anything"))
	assert.False(t, r.Has(English, "anything"))
	assert.Nil(t, r.MissingKeys(English))
}

func TestResolverFormat(t *testing.T) {
	r := testResolver()
	assert.Equal(t, "6 projects", r.Format(Russian, "count", map[string]string{"count": "6"}))
	assert.Equal(t, "{count} projects", r.Format(English, "count", nil))
}

func TestResolverMissingKeys(t *testing.T) {
	r := testResolver()
	assert.Equal(t, []string{"count", "onlyEnglish"}, r.MissingKeys(Armenian))
	assert.Empty(t, r.MissingKeys(English))
}

func TestResolverCopiesTables(t *testing.T) {
	tables := map[Language]Table{English: {"k": "v"}}
	r := NewResolver(tables, English)
	tables[English]["k"] = "changed"
	assert.Equal(t, "v", r.T(English, "k"))
}

func TestLocalizer(t *testing.T) {
	l := testResolver().For(Russian)
	assert.Equal(t, Russian, l.Lang)
	assert.Equal(t, "Привет", l.T("greeting"))
	assert.Equal(t, "English only", l.T("onlyEnglish"))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  hello: Hello\n  bye: Bye\n")},
		"locales/ru.yaml": {Data: []byte("locale: ru\nmessages:\n  hello: Привет\n")},
	}

	r, err := LoadFS(fsys, "locales")
	require.NoError(t, err)
	assert.Equal(t, "Привет", r.T(Russian, "hello"))
	assert.Equal(t, "Bye", r.T(Russian, "bye"))
	assert.Equal(t, "Hello", r.T(Armenian, "hello"))
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "empty directory",
			fsys: fstest.MapFS{},
		},
		{
			name: "missing fallback",
			fsys: fstest.MapFS{"locales/ru.yaml": {Data: []byte("locale: ru\nmessages:\n  a: b\n")}},
		},
		{
			name: "locale does not match file name",
			fsys: fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: ru\nmessages:\n  a: b\n")}},
		},
		{
			name: "unsupported locale",
			fsys: fstest.MapFS{"locales/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  a: b\n")}},
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: [en\n")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys, "locales")
			assert.Error(t, err)
		})
	}
}
