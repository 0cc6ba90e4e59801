// Package data embeds the static site content: the project catalogue, the
// city map and the UI locale tables.
package data

import "embed"

// FS holds projects.yaml, citymap.yaml and locales/*.yaml.
//
//go:embed projects.yaml citymap.yaml locales/*.yaml
var FS embed.FS

const (
	CataloguePath = "projects.yaml"
	CityMapPath   = "citymap.yaml"
	LocalesDir    = "locales"
)
