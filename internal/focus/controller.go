// Package focus brings applications to the foreground and enumerates the
// running foreground applications.
package focus

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/platform"
	"github.com/automac-mcp/automac/internal/script"
)

// DefaultPollInterval is the wait between active-application checks.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultTimeout is the focus budget when the caller gives none, in seconds.
const DefaultTimeout = 30

// MaxTimeout is the largest budget, in seconds, that fits a time.Duration.
const MaxTimeout = int64(math.MaxInt64 / int64(time.Second))

// Controller activates applications and waits for them to become frontmost.
type Controller struct {
	scripts   platform.ScriptRunner
	inspector platform.Inspector
	interval  time.Duration
	log       logrus.FieldLogger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewController returns a Controller. inspector may be nil, in which case
// every poll fails and Focus times out.
func NewController(scripts platform.ScriptRunner, inspector platform.Inspector, interval time.Duration, log logrus.FieldLogger) *Controller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		scripts:   scripts,
		inspector: inspector,
		interval:  interval,
		log:       log,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// ActivateScript returns the bridge source that activates appName.
func ActivateScript(appName string) string {
	return "tell application " + script.Quote(appName) + " to activate"
}

// Focus activates appName and polls until it is frontmost or timeout seconds
// pass. The wait is not cut short by ctx; only a match ends it early.
func (c *Controller) Focus(ctx context.Context, appName string, timeout int) (model.FocusResult, error) {
	if strings.TrimSpace(appName) == "" {
		return model.FocusResult{}, apperr.Invalid("focus_app", "app_name is required")
	}
	if timeout <= 0 {
		return model.FocusResult{}, apperr.Invalid("focus_app", "timeout must be positive")
	}
	if int64(timeout) > MaxTimeout {
		return model.FocusResult{}, apperr.Invalid("focus_app", "timeout must be at most %d seconds", MaxTimeout)
	}
	log := c.log.WithField("app", appName)

	if _, err := c.scripts.Run(ctx, ActivateScript(appName)); err != nil {
		msg := fmt.Sprintf("Failed to activate app '%s': %s", appName, apperr.Detail(err))
		return model.FocusResult{Result: model.Failure(msg, err)}, nil
	}

	start := c.now()
	budget := time.Duration(timeout) * time.Second
	var last *string
	var lastErr error
	observed := false

	for c.now().Sub(start) < budget {
		app, err := c.activeApp(ctx)
		if err != nil {
			lastErr = err
			log.WithError(err).Debug("active application check failed")
		} else {
			observed = true
			if strings.EqualFold(app.Name, appName) {
				elapsed := roundSeconds(c.now().Sub(start))
				log.WithField("elapsed", elapsed).Debug("application focused")
				return model.FocusResult{
					Result:      model.OK(fmt.Sprintf("Successfully focused '%s' (took %ss)", appName, formatSeconds(elapsed))),
					ElapsedTime: &elapsed,
					ActiveApp:   app,
				}, nil
			}
			name := app.Name
			last = &name
		}
		c.sleep(c.interval)
	}

	elapsed := float64(timeout)
	detail := "application did not become frontmost"
	if !observed {
		detail = "active application could not be read"
		if lastErr != nil {
			detail += ": " + apperr.Detail(lastErr)
		}
	}
	return model.FocusResult{
		Result: model.Result{
			Success:   false,
			Message:   fmt.Sprintf("Timeout waiting for '%s' to become active after %ds", appName, timeout),
			Error:     detail,
			ErrorKind: apperr.Timeout.String(),
		},
		ElapsedTime:   &elapsed,
		LastActiveApp: last,
		Timeout:       timeout,
	}, nil
}

func (c *Controller) activeApp(ctx context.Context) (*model.AppInfo, error) {
	if c.inspector == nil {
		return nil, apperr.Unavailable("focus_app", "no inspector configured")
	}
	app, err := c.inspector.ActiveApp(ctx)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("no active application")
	}
	return app, nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
