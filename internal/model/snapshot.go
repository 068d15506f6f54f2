package model

// Snapshot modes.
const (
	ModeAccessibility = "accessibility"
	ModeOCR           = "ocr"
)

// ScreenLayout is the accessibility-mode snapshot. Each sub-query that
// fails records its error in the matching *Error field instead of aborting
// the snapshot.
type ScreenLayout struct {
	Mode            string   `yaml:"mode"                        json:"mode"`
	Timestamp       string   `yaml:"timestamp"                   json:"timestamp"`
	ActiveApp       *AppInfo `yaml:"active_app"                  json:"active_app"`
	ActiveAppError  string   `yaml:"active_app_error,omitempty"  json:"active_app_error,omitempty"`
	Windows         []Window `yaml:"windows"                     json:"windows"`
	WindowsError    string   `yaml:"windows_error,omitempty"     json:"windows_error,omitempty"`
	ScreenSize      *Size    `yaml:"screen_size,omitempty"       json:"screen_size,omitempty"`
	ScreenSizeError string   `yaml:"screen_size_error,omitempty" json:"screen_size_error,omitempty"`
}

// Partial reports whether any sub-query failed.
func (l ScreenLayout) Partial() bool {
	return l.ActiveAppError != "" || l.WindowsError != "" || l.ScreenSizeError != ""
}

// LayoutResult wraps a ScreenLayout in the result envelope.
type LayoutResult struct {
	Result     `yaml:",inline"`
	ScreenInfo *ScreenLayout `yaml:"screen_info,omitempty" json:"screen_info,omitempty"`
}

// TextPosition locates a recognized text run. BBox holds the four corners of
// the detection polygon: top-left, top-right, bottom-right, bottom-left.
type TextPosition struct {
	CenterX int       `yaml:"center_x" json:"center_x"`
	CenterY int       `yaml:"center_y" json:"center_y"`
	BBox    [4][2]int `yaml:"bbox"     json:"bbox"`
}

// TextElement is one OCR detection retained in a snapshot.
type TextElement struct {
	Text       string       `yaml:"text"       json:"text"`
	Confidence float64      `yaml:"confidence" json:"confidence"`
	Position   TextPosition `yaml:"position"   json:"position"`
}

// ScreenText is the OCR-mode snapshot.
type ScreenText struct {
	Mode         string        `yaml:"mode"          json:"mode"`
	Timestamp    string        `yaml:"timestamp"     json:"timestamp"`
	ScreenSize   Size          `yaml:"screen_size"   json:"screen_size"`
	TextElements []TextElement `yaml:"text_elements" json:"text_elements"`
	FullText     string        `yaml:"full_text"     json:"full_text"`
}

// TextResult wraps a ScreenText in the result envelope.
type TextResult struct {
	Result     `yaml:",inline"`
	ScreenInfo *ScreenText `yaml:"screen_info,omitempty" json:"screen_info,omitempty"`
}
