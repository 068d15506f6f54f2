package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automac-mcp/automac/internal/output"
	"github.com/automac-mcp/automac/internal/shortcut"
)

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into the focused element",
	Long:  "Type text into the focused element. Text can be passed as a positional argument or via --text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runType,
}

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll by pixel deltas",
	Long:  "Scroll at the pointer position. Positive --dy scrolls down, positive --dx scrolls right.",
	Args:  cobra.NoArgs,
	RunE:  runScroll,
}

var shortcutCmd = &cobra.Command{
	Use:   "shortcut [name]",
	Short: "Press a named keyboard shortcut",
	Long:  "Press one of the fixed keyboard shortcuts in the frontmost application. Use --list to see the names.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShortcut,
}

var beepCmd = &cobra.Command{
	Use:   "beep",
	Short: "Play the system bell to get the user's attention",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd, svc.Shortcuts.Beep(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(typeCmd, scrollCmd, shortcutCmd, beepCmd)
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
	scrollCmd.Flags().Int("dx", 0, "Horizontal delta (positive = right)")
	scrollCmd.Flags().Int("dy", 0, "Vertical delta (positive = down)")
	shortcutCmd.Flags().Bool("list", false, "List available shortcuts")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	// Positional arg overrides --text flag
	if len(args) > 0 {
		text = args[0]
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Input.TypeText(text)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runScroll(cmd *cobra.Command, args []string) error {
	dx, _ := cmd.Flags().GetInt("dx")
	dy, _ := cmd.Flags().GetInt("dy")

	svc, err := newService()
	if err != nil {
		return err
	}
	return printResult(cmd, svc.Input.Scroll(dx, dy))
}

// ShortcutInfo describes one catalog entry for --list.
type ShortcutInfo struct {
	Name      string `yaml:"name"      json:"name"`
	Tool      string `yaml:"tool"      json:"tool"`
	Keystroke string `yaml:"keystroke" json:"keystroke"`
	Label     string `yaml:"label"     json:"label"`
}

func runShortcut(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")
	if list {
		var infos []ShortcutInfo
		for _, a := range shortcut.All() {
			spec := a.Spec()
			infos = append(infos, ShortcutInfo{Name: spec.Name, Tool: a.ToolName(), Keystroke: spec.Keystroke, Label: spec.Label})
		}
		return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, output.PrettyOutput, infos)
	}

	if len(args) == 0 {
		return fmt.Errorf("specify a shortcut name or --list")
	}
	action, ok := shortcut.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown shortcut %q (see --list)", args[0])
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Shortcuts.Invoke(cmd.Context(), action)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
