package cmd

import (
	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/platform"
)

var screenSizeCmd = &cobra.Command{
	Use:   "screen-size",
	Short: "Print the screen size used for pointer input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd, svc.Input.ScreenSize())
	},
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the mouse pointer",
	Long:  "Move the mouse pointer to screenshot pixel coordinates. Coordinates are scaled to the display's point space.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		x, y := pointFlags(cmd)
		return printResult(cmd, svc.Input.Move(x, y))
	},
}

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at coordinates",
	Long:  "Click at screenshot pixel coordinates with the given button, once or twice.",
	Args:  cobra.NoArgs,
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(screenSizeCmd, moveCmd, clickCmd)
	addPointFlags(moveCmd)
	addPointFlags(clickCmd)
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	buttonName, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonName)
	if err != nil {
		return err
	}
	double, _ := cmd.Flags().GetBool("double")
	count := 1
	if double {
		count = 2
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	x, y := pointFlags(cmd)
	return printResult(cmd, svc.Input.Click(x, y, button, count))
}
