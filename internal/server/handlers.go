package server

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/focus"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/screen"
	"github.com/automac-mcp/automac/internal/shortcut"
)

func (s *Server) handleScreenSize(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.svc.Input.ScreenSize())
}

func (s *Server) handleMouseMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, y, err := requirePoint(request.GetArguments(), "mouse_move")
	if err != nil {
		return nil, err
	}
	return envelopeResult(s.svc.Input.Move(x, y))
}

func (s *Server) handleClick(count int) mcpserver.ToolHandlerFunc {
	op := "mouse_single_click"
	if count > 1 {
		op = "mouse_double_click"
	}
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		x, y, err := requirePoint(request.GetArguments(), op)
		if err != nil {
			return nil, err
		}
		if count > 1 {
			return envelopeResult(s.svc.Input.DoubleClick(x, y))
		}
		return envelopeResult(s.svc.Input.SingleClick(x, y))
	}
}

func (s *Server) handleTypeText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := stringParam(request.GetArguments(), "text", "")
	res, err := s.svc.Input.TypeText(text)
	if err != nil {
		return nil, err
	}
	return envelopeResult(res)
}

func (s *Server) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	dx := intParam(params, "dx", 0)
	dy := intParam(params, "dy", 0)
	return envelopeResult(s.svc.Input.Scroll(dx, dy))
}

func (s *Server) handleBeep(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.svc.Shortcuts.Beep(ctx))
}

func (s *Server) handleShortcut(action shortcut.Action) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.svc.Shortcuts.Invoke(ctx, action)
		if err != nil {
			return nil, err
		}
		return envelopeResult(res)
	}
}

func (s *Server) handleFocusApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appName := stringParam(params, "app_name", "")
	timeout := intParam(params, "timeout", focus.DefaultTimeout)
	res, err := s.svc.Focus.Focus(ctx, appName, timeout)
	if err != nil {
		return nil, err
	}
	return envelopeResult(res)
}

func (s *Server) handleScreenLayout(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.svc.Screen.Layout(ctx))
}

func (s *Server) handleScreenText(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.svc.Screen.Text(ctx))
}

func (s *Server) handleAvailableApps(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.svc.Focus.AvailableApps(ctx))
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	scale := floatParam(params, "scale", screen.DefaultScreenshotScale)
	annotate := boolParam(params, "annotate", false)

	shot, err := s.svc.Screen.Screenshot(ctx, scale, annotate)
	if err != nil {
		if apperr.KindOf(err) == apperr.InvalidArgument {
			return nil, err
		}
		return envelopeResult(model.Failure("Failed to capture screenshot", err))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(shot.PNG),
				MIMEType: "image/png",
			},
			mcp.NewTextContent(fmt.Sprintf("Screenshot %dx%d, %d labels", shot.Width, shot.Height, shot.Labels)),
		},
	}, nil
}
