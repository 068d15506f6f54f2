// Package script drives the macOS scripting bridge (osascript).
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/automac-mcp/automac/internal/apperr"
)

// DefaultTimeout bounds a single interpreter invocation.
const DefaultTimeout = 30 * time.Second

// Runner executes AppleScript and JavaScript for Automation sources through
// the osascript interpreter.
type Runner struct {
	Binary  string
	Timeout time.Duration
}

// NewRunner returns a Runner for binary, defaulting to "osascript" and
// DefaultTimeout.
func NewRunner(binary string, timeout time.Duration) *Runner {
	if binary == "" {
		binary = "osascript"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{Binary: binary, Timeout: timeout}
}

// Run executes AppleScript source and returns its trimmed stdout. A non-zero
// exit is reported as a ScriptExecutionFailed error carrying stderr verbatim.
func (r *Runner) Run(ctx context.Context, src string) (string, error) {
	return r.exec(ctx, "osascript", "-e", src)
}

// RunJS executes JavaScript for Automation source.
func (r *Runner) RunJS(ctx context.Context, src string) (string, error) {
	return r.exec(ctx, "osascript", "-l", "JavaScript", "-e", src)
}

func (r *Runner) exec(ctx context.Context, op string, args ...string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.Binary, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", &apperr.Error{
			Kind: apperr.Timeout,
			Op:   op,
			Msg:  fmt.Sprintf("interpreter did not finish within %s", r.Timeout),
			Err:  runErr,
		}
	}
	var ee *exec.ExitError
	if errors.As(runErr, &ee) {
		return "", apperr.ScriptFailed(op, strings.TrimSpace(stderr.String()), runErr)
	}
	return "", &apperr.Error{
		Kind: apperr.BackendUnavailable,
		Op:   op,
		Msg:  fmt.Sprintf("cannot start %s", r.Binary),
		Err:  runErr,
	}
}

// Quote returns s as an AppleScript string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// SystemEvents wraps body in a System Events tell block.
func SystemEvents(body string) string {
	return "tell application \"System Events\"\n    " + body + "\nend tell"
}
