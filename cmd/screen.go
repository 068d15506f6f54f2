package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/screen"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Describe the visible windows and the active application",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd, svc.Screen.Layout(cmd.Context()))
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Read the text on screen with OCR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd, svc.Screen.Text(cmd.Context()))
	},
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot",
	Long:  "Capture the main display as PNG. With --annotate, OCR text boxes are outlined and labelled with the coordinates to pass to move and click.",
	Args:  cobra.NoArgs,
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(layoutCmd, textCmd, screenshotCmd)
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	screenshotCmd.Flags().Float64("scale", screen.DefaultScreenshotScale, "Scale factor in (0, 1]")
	screenshotCmd.Flags().Bool("annotate", false, "Overlay OCR boxes and click coordinates")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	scale, _ := cmd.Flags().GetFloat64("scale")
	annotate, _ := cmd.Flags().GetBool("annotate")

	svc, err := newService()
	if err != nil {
		return err
	}
	shot, err := svc.Screen.Screenshot(cmd.Context(), scale, annotate)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, shot.PNG, 0o644); err != nil {
			return fmt.Errorf("write screenshot: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Screenshot saved to %s (%dx%d)\n", outPath, shot.Width, shot.Height)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(shot.PNG))
	return nil
}
