package shortcut

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/platform"
	"github.com/automac-mcp/automac/internal/script"
)

// Invoker runs catalog shortcuts against the frontmost application.
type Invoker struct {
	scripts platform.ScriptRunner
	log     logrus.FieldLogger
}

// NewInvoker returns an Invoker using scripts.
func NewInvoker(scripts platform.ScriptRunner, log logrus.FieldLogger) *Invoker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Invoker{scripts: scripts, log: log}
}

// Script returns the bridge source issued for a.
func Script(a Action) string {
	return script.SystemEvents(a.Spec().Keystroke)
}

// Invoke issues a. Only catalog literals are ever executed.
func (i *Invoker) Invoke(ctx context.Context, a Action) (model.Result, error) {
	spec := a.Spec()
	if spec.Name == "" {
		return model.Result{}, apperr.Invalid("keyboard_shortcut", "unknown shortcut %d", int(a))
	}
	if _, err := i.scripts.Run(ctx, Script(a)); err != nil {
		i.log.WithError(err).WithField("shortcut", spec.Name).Warn("shortcut failed")
		return model.Failure(fmt.Sprintf("AppleScript error: %s", apperr.Detail(err)), err), nil
	}
	return model.OK("Executed: " + spec.Label), nil
}

// Beep plays the system alert sound.
func (i *Invoker) Beep(ctx context.Context) model.Result {
	if _, err := i.scripts.Run(ctx, "beep"); err != nil {
		return model.Failure(fmt.Sprintf("Failed to play system bell: %s", apperr.Detail(err)), err)
	}
	return model.OK("System bell played")
}
