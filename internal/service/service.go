// Package service wires the platform backends and configuration into the
// automation components shared by the CLI and the tool server.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/config"
	"github.com/automac-mcp/automac/internal/focus"
	"github.com/automac-mcp/automac/internal/input"
	"github.com/automac-mcp/automac/internal/ocr"
	"github.com/automac-mcp/automac/internal/platform"
	"github.com/automac-mcp/automac/internal/screen"
	"github.com/automac-mcp/automac/internal/script"
	"github.com/automac-mcp/automac/internal/shortcut"
)

// Service holds one instance of every component. It is built once at
// process start; no component keeps state between calls apart from the
// lazily loaded OCR engine.
type Service struct {
	Provider  *platform.Provider
	Input     *input.Dispatcher
	Shortcuts *shortcut.Invoker
	Focus     *focus.Controller
	Screen    *screen.Aggregator
	Log       logrus.FieldLogger
}

// New selects the platform provider described by cfg and assembles the
// components around it.
func New(cfg *config.Config, log logrus.FieldLogger) (*Service, error) {
	backend, err := platform.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	runner := script.NewRunner(cfg.OSAScriptPath, cfg.ScriptTimeout)
	provider, err := platform.NewProvider(platform.Options{
		Backend:  backend,
		Fallback: script.NewInspector(runner),
	})
	if err != nil {
		return nil, err
	}
	engine := ocr.NewShared(ocr.Options{Languages: cfg.OCRLanguages}, log)
	return Assemble(provider, runner, engine, cfg, log), nil
}

// Assemble builds a Service from already constructed backends.
func Assemble(p *platform.Provider, scripts platform.ScriptRunner, engine ocr.Engine, cfg *config.Config, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if p.Inspector != nil {
		log.WithField("backend", p.Inspector.Name()).Debug("inspector selected")
	}
	return &Service{
		Provider:  p,
		Input:     input.NewDispatcher(p.Inputter, p.Display, log),
		Shortcuts: shortcut.NewInvoker(scripts, log),
		Focus:     focus.NewController(scripts, p.Inspector, cfg.PollInterval, log),
		Screen:    screen.NewAggregator(p.Inspector, p.Display, engine, log),
		Log:       log,
	}
}
