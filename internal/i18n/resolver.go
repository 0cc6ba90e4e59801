package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table maps message keys to display text for one language.
type Table map[string]string

// Resolver looks up display strings by language and key.
//
// Lookup order is the active language, then the Fallback language, then the
// key itself. The resolver never fails a lookup.
type Resolver struct {
	tables   map[Language]Table
	fallback Language
}

// NewResolver builds a resolver over the given tables.
func NewResolver(tables map[Language]Table, fallback Language) *Resolver {
	copied := make(map[Language]Table, len(tables))
	for lang, table := range tables {
		t := make(Table, len(table))
		for k, v := range table {
			t[k] = v
		}
		copied[lang] = t
	}
	return &Resolver{tables: copied, fallback: fallback}
}

// T returns the text for key in lang.
func (r *Resolver) T(lang Language, key string) string {
	if r == nil {
		return key
	}
	if v, ok := r.tables[lang][key]; ok && v != "" {
		return v
	}
	if v, ok := r.tables[r.fallback][key]; ok && v != "" {
		return v
	}
	return key
}

// Format resolves key and substitutes {name} placeholders from vars.
func (r *Resolver) Format(lang Language, key string, vars map[string]string) string {
	text := r.T(lang, key)
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Has reports whether lang defines key itself, without fallback.
func (r *Resolver) Has(lang Language, key string) bool {
	if r == nil {
		return false
	}
	v, ok := r.tables[lang][key]
	return ok && v != ""
}

// MissingKeys lists fallback-table keys that lang does not define, sorted.
func (r *Resolver) MissingKeys(lang Language) []string {
	if r == nil {
		return nil
	}
	var missing []string
	for key := range r.tables[r.fallback] {
		if !r.Has(lang, key) {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// For binds the resolver to one language for use in templates.
func (r *Resolver) For(lang Language) Localizer {
	return Localizer{resolver: r, Lang: lang}
}

// Localizer is a resolver bound to one language.
type Localizer struct {
	resolver *Resolver
	Lang     Language
}

// T resolves key in the bound language.
func (l Localizer) T(key string) string {
	return l.resolver.T(l.Lang, key)
}

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// LoadFS reads <dir>/<code>.yaml locale tables from fsys.
func LoadFS(fsys fs.FS, dir string) (*Resolver, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob locale tables: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale tables found in %s", dir)
	}
	sort.Strings(paths)

	tables := make(map[Language]Table, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale table %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale table %s: %w", p, err)
		}

		lang, ok := Parse(file.Locale)
		if !ok {
			return nil, fmt.Errorf("locale table %s: unsupported locale %q", p, file.Locale)
		}
		fromName := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if string(lang) != fromName {
			return nil, fmt.Errorf("locale table %s: locale %q must match file name", p, file.Locale)
		}
		if _, dup := tables[lang]; dup {
			return nil, fmt.Errorf("locale table %s: locale %q defined twice", p, lang)
		}

		table := make(Table, len(file.Messages))
		for key, value := range file.Messages {
			k := strings.TrimSpace(key)
			if k == "" {
				return nil, fmt.Errorf("locale table %s: blank message key", p)
			}
			table[k] = value
		}
		tables[lang] = table
	}

	if _, ok := tables[Fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s is not defined", Fallback)
	}
	return NewResolver(tables, Fallback), nil
}
