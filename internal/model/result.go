package model

import "github.com/automac-mcp/automac/internal/apperr"

// Result is the envelope every operation returns. Operation-specific
// results embed it so its fields appear at the top level when encoded.
type Result struct {
	Success   bool   `yaml:"success"              json:"success"`
	Message   string `yaml:"message"              json:"message"`
	Error     string `yaml:"error,omitempty"      json:"error,omitempty"`
	ErrorKind string `yaml:"error_kind,omitempty" json:"error_kind,omitempty"`
}

// OK returns a successful envelope.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Failure returns a failed envelope for err. The message is the caller's
// summary; the error detail and kind are taken from err.
func Failure(message string, err error) Result {
	r := Result{Success: false, Message: message}
	if err != nil {
		r.Error = apperr.Detail(err)
		r.ErrorKind = apperr.KindOf(err).String()
	}
	return r
}

// Envelope lets callers read the common fields of any result type.
type Envelope interface {
	Envelope() Result
}

func (r Result) Envelope() Result { return r }

// AppsResult lists foreground applications.
type AppsResult struct {
	Result `yaml:",inline"`
	Apps   []string `yaml:"apps" json:"apps"`
}

// ScreenSizeResult reports the input-injection screen size.
type ScreenSizeResult struct {
	Result `yaml:",inline"`
	Width  int `yaml:"width,omitempty"  json:"width,omitempty"`
	Height int `yaml:"height,omitempty" json:"height,omitempty"`
}
