package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/output"
)

// errFailed makes the process exit non-zero after a failed envelope has
// already been printed.
var errFailed = errors.New("operation failed")

// printResult writes v in the selected format and reports a failed envelope
// as an error.
func printResult(cmd *cobra.Command, v model.Envelope) error {
	if err := output.Fprint(cmd.OutOrStdout(), output.OutputFormat, output.PrettyOutput, v); err != nil {
		return err
	}
	if !v.Envelope().Success {
		cmd.SilenceErrors = true
		return errFailed
	}
	return nil
}

// addPointFlags registers the required --x and --y flags of pointer commands.
func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().Int("x", 0, "X coordinate in screenshot pixels")
	cmd.Flags().Int("y", 0, "Y coordinate in screenshot pixels")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
}

func pointFlags(cmd *cobra.Command) (int, int) {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	return x, y
}
