package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/config"
	"github.com/automac-mcp/automac/internal/logging"
	"github.com/automac-mcp/automac/internal/output"
	"github.com/automac-mcp/automac/internal/service"
	"github.com/automac-mcp/automac/internal/version"
)

var (
	// cfg and logger are populated by the root PersistentPreRunE.
	cfg    *config.Config
	logger *logrus.Logger

	// newService builds the components for a command. Tests replace it.
	newService = func() (*service.Service, error) {
		return service.New(cfg, logger)
	}
)

var rootCmd = &cobra.Command{
	Use:          "automac",
	Short:        "Drive the macOS desktop from AI agents",
	Long:         "AutoMac exposes mouse, keyboard, application focus and screen reading on macOS as MCP tools, with one-shot CLI mirrors of every tool.",
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $AUTOMAC_CONFIG or ~/.config/automac/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json")
	rootCmd.PersistentFlags().String("backend", "", "Inspector backend: auto, native, applescript")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		overrideString(cmd, "log-level", &loaded.LogLevel)
		overrideString(cmd, "log-format", &loaded.LogFormat)
		overrideString(cmd, "backend", &loaded.Backend)
		if err := loaded.Validate(); err != nil {
			return err
		}

		l, err := logging.New(loaded.LogLevel, loaded.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		return nil
	}
}

// overrideString copies a flag onto dst when the user set it explicitly.
func overrideString(cmd *cobra.Command, name string, dst *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*dst = f.Value.String()
	}
}
