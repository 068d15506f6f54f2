package model

// FocusResult is the outcome of one focus_app call.
type FocusResult struct {
	Result        `yaml:",inline"`
	ElapsedTime   *float64 `yaml:"elapsed_time,omitempty"    json:"elapsed_time,omitempty"`
	ActiveApp     *AppInfo `yaml:"active_app,omitempty"      json:"active_app,omitempty"`
	LastActiveApp *string  `yaml:"last_active_app,omitempty" json:"last_active_app,omitempty"`
	Timeout       int      `yaml:"timeout,omitempty"         json:"timeout,omitempty"`
}
