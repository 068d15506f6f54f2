package model

// Bounds is a window rectangle in logical screen coordinates.
type Bounds struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Window is one on-screen window as reported by the window server.
type Window struct {
	Title  string `yaml:"title"        json:"title"`
	App    string `yaml:"app"          json:"app"`
	Bounds Bounds `yaml:"bounds"       json:"bounds"`
	Layer  int    `yaml:"layer"        json:"layer"`
	PID    int    `yaml:"pid"          json:"pid"`
	ID     int    `yaml:"id,omitempty" json:"id,omitempty"`
}

// AppInfo describes a running application.
type AppInfo struct {
	Name     string `yaml:"name"                json:"name"`
	BundleID string `yaml:"bundle_id,omitempty" json:"bundle_id,omitempty"`
	PID      int    `yaml:"pid,omitempty"       json:"pid,omitempty"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}
