package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/focus"
)

var focusCmd = &cobra.Command{
	Use:   "focus [app]",
	Short: "Bring an application to the foreground",
	Long:  "Activate an application by name and wait until it is frontmost or the timeout expires.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFocus,
}

var appsCmd = &cobra.Command{
	Use:     "apps",
	Aliases: []string{"list"},
	Short:   "List running foreground applications",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd, svc.Focus.AvailableApps(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(focusCmd, appsCmd)
	focusCmd.Flags().String("app", "", "Application name (alternative to positional arg)")
	focusCmd.Flags().Int("timeout", focus.DefaultTimeout, "Seconds to wait for the app to become active")
}

func runFocus(cmd *cobra.Command, args []string) error {
	appName, _ := cmd.Flags().GetString("app")
	if len(args) > 0 {
		appName = args[0]
	}
	if appName == "" {
		return fmt.Errorf("specify an application name")
	}
	timeout, _ := cmd.Flags().GetInt("timeout")

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Focus.Focus(cmd.Context(), appName, timeout)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
