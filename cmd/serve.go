package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/config"
	"github.com/automac-mcp/automac/internal/platform"
	"github.com/automac-mcp/automac/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the automation tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes mouse, keyboard,
focus and screen-reading operations as tools.

Supported transports:
  stdio             Standard I/O (default, for local MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)
  sse               Server-sent events transport (for older clients)

Examples:
  automac serve
  automac serve --transport streamable-http --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http, sse (default from config)")
	serveCmd.Flags().String("addr", "", "Listen address for HTTP transports (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport := string(cfg.Transport)
	overrideString(cmd, "transport", &transport)
	cfg.Transport = config.Transport(transport)
	overrideString(cmd, "addr", &cfg.Addr)
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, err := range platform.CheckPermissions() {
		logger.WithError(err).Warn("permission missing; grant it in System Settings > Privacy & Security")
	}

	svc, err := newService()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.New(svc, logger).Serve(cmd.Context(), cfg.Transport, cfg.Addr)
}
