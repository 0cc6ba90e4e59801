package models

// CityMap is the decorative city map with one pin per featured project.
type CityMap struct {
	Pins []Pin `yaml:"pins" json:"pins"`
}

// Pin places a project on the map. X and Y are percentages of the map's
// width and height.
type Pin struct {
	ProjectID string  `yaml:"project_id" json:"project_id"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
}
