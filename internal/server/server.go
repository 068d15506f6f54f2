// Package server exposes the automation components as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/config"
	"github.com/automac-mcp/automac/internal/service"
	"github.com/automac-mcp/automac/internal/shortcut"
	"github.com/automac-mcp/automac/internal/version"
)

// Name is the server name announced to MCP clients.
const Name = "AutoMac MCP - macOS UI Automation"

// Server wraps the MCP server with the automation components. Calls are
// not serialized: callers must not issue overlapping UI-mutating tools.
type Server struct {
	svc *service.Service
	log *logrus.Logger
	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with every automation tool.
func New(svc *service.Service, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{svc: svc, log: log}
	s.mcp = mcpserver.NewMCPServer(
		Name,
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer { return s.mcp }

// Serve runs the server on the configured transport until ctx is done or
// the transport fails.
func (s *Server) Serve(ctx context.Context, transport config.Transport, addr string) error {
	s.log.WithFields(logrus.Fields{"transport": transport, "addr": addr}).Info("serving MCP")

	switch transport {
	case config.TransportStdio:
		stdio := mcpserver.NewStdioServer(s.mcp)
		stdio.SetErrorLogger(stdlog.New(s.log.WriterLevel(logrus.ErrorLevel), "", 0))
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	case config.TransportStreamableHTTP:
		return serveHTTP(ctx, mcpserver.NewStreamableHTTPServer(s.mcp), addr)
	case config.TransportSSE:
		return serveHTTP(ctx, mcpserver.NewSSEServer(s.mcp), addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio, streamable-http, or sse)", transport)
	}
}

type httpTransport interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

func serveHTTP(ctx context.Context, srv httpTransport, addr string) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) add(tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, s.logged(tool.Name, handler))
}

// logged records every call at debug and every failure at warn.
func (s *Server) logged(name string, next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.log.WithField("tool", name)
		log.Debug("tool call")
		result, err := next(ctx, request)
		switch {
		case err != nil:
			log.WithError(err).Warn("tool rejected")
		case result != nil && result.IsError:
			log.Warn("tool failed")
		}
		return result, err
	}
}

func (s *Server) registerTools() {
	s.add(
		mcp.NewTool("get_screen_size",
			mcp.WithDescription("Get the screen size in the coordinate space used for pointer input."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleScreenSize,
	)

	s.add(
		mcp.NewTool("mouse_move",
			mcp.WithDescription("Move the mouse pointer to the specified screen coordinates."),
			mcp.WithNumber("x", mcp.Description("X coordinate in screenshot pixels"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate in screenshot pixels"), mcp.Required()),
		),
		s.handleMouseMove,
	)

	s.add(
		mcp.NewTool("mouse_single_click",
			mcp.WithDescription("Single click at the specified screen coordinates."),
			mcp.WithNumber("x", mcp.Description("X coordinate in screenshot pixels"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate in screenshot pixels"), mcp.Required()),
		),
		s.handleClick(1),
	)

	s.add(
		mcp.NewTool("mouse_double_click",
			mcp.WithDescription("Double click at the specified screen coordinates."),
			mcp.WithNumber("x", mcp.Description("X coordinate in screenshot pixels"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate in screenshot pixels"), mcp.Required()),
		),
		s.handleClick(2),
	)

	s.add(
		mcp.NewTool("type_text",
			mcp.WithDescription("Type the specified text into the focused element."),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleTypeText,
	)

	s.add(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll with the specified pixel delta values."),
			mcp.WithNumber("dx", mcp.Description("Horizontal delta (positive = right, negative = left)"), mcp.DefaultNumber(0)),
			mcp.WithNumber("dy", mcp.Description("Vertical delta (positive = down, negative = up)"), mcp.DefaultNumber(0)),
		),
		s.handleScroll,
	)

	s.add(
		mcp.NewTool("play_sound_for_user_prompt",
			mcp.WithDescription("Play the system bell sound to alert the user."),
		),
		s.handleBeep,
	)

	for _, action := range shortcut.All() {
		spec := action.Spec()
		s.add(
			mcp.NewTool(action.ToolName(), mcp.WithDescription(spec.Description)),
			s.handleShortcut(action),
		)
	}

	s.add(
		mcp.NewTool("focus_app",
			mcp.WithDescription("Bring the specified application to the foreground and wait for it to become active."),
			mcp.WithString("app_name", mcp.Description("Name of the application to focus"), mcp.Required()),
			mcp.WithNumber("timeout", mcp.Description("Maximum seconds to wait for the app to become active (default: 30)"), mcp.DefaultNumber(30)),
		),
		s.handleFocusApp,
	)

	s.add(
		mcp.NewTool("get_screen_layout",
			mcp.WithDescription("Get information about windows and applications currently visible on the screen."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleScreenLayout,
	)

	s.add(
		mcp.NewTool("get_screen_text",
			mcp.WithDescription("Get all text currently visible on the screen using OCR."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleScreenText,
	)

	s.add(
		mcp.NewTool("get_available_apps",
			mcp.WithDescription("Get a list of all running applications."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleAvailableApps,
	)

	s.add(
		mcp.NewTool("take_screenshot",
			mcp.WithDescription("Capture the main display as a PNG. With annotate, OCR text boxes are outlined and labelled with their (x,y) click coordinates."),
			mcp.WithNumber("scale", mcp.Description("Scale factor in (0, 1] (default: 0.5)"), mcp.DefaultNumber(0.5)),
			mcp.WithBoolean("annotate", mcp.Description("Overlay OCR boxes and click coordinates")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleScreenshot,
	)
}
