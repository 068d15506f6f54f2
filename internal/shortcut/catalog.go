// Package shortcut issues a closed catalog of keyboard shortcuts through the
// System Events scripting bridge.
package shortcut

import "fmt"

// Action is one catalog entry.
type Action int

const (
	ReturnKey Action = iota
	EscapeKey
	TabKey
	SpaceKey
	DeleteKey
	ForwardDeleteKey
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	SelectAll
	Copy
	Paste
	Cut
	Undo
	Redo
	Save
	New
	Open
	Find
	CloseWindow
	QuitApp
	MinimizeWindow
	HideApp
	SwitchAppForward
	SwitchAppBackward
	SpotlightSearch
	ForceQuit
	Refresh

	numActions
)

// Spec describes how an Action is issued.
type Spec struct {
	// Name is the snake_case identifier used in tool names.
	Name string
	// Keystroke is the literal System Events command.
	Keystroke string
	// Label is the human-readable action, used in result messages.
	Label string
	// Description is shown to tool callers.
	Description string
}

var catalog = [numActions]Spec{
	ReturnKey:         {"return_key", `keystroke return`, "Return key", "Press the Return/Enter key."},
	EscapeKey:         {"escape_key", `key code 53`, "Escape key", "Press the Escape key."},
	TabKey:            {"tab_key", `keystroke tab`, "Tab key", "Press the Tab key."},
	SpaceKey:          {"space_key", `keystroke " "`, "Space key", "Press the Space key."},
	DeleteKey:         {"delete_key", `key code 51`, "Delete key", "Press the Delete key (backspace)."},
	ForwardDeleteKey:  {"forward_delete_key", `key code 117`, "Forward Delete key", "Press the Forward Delete key."},
	ArrowUp:           {"arrow_up", `key code 126`, "Up Arrow key", "Press the Up Arrow key."},
	ArrowDown:         {"arrow_down", `key code 125`, "Down Arrow key", "Press the Down Arrow key."},
	ArrowLeft:         {"arrow_left", `key code 123`, "Left Arrow key", "Press the Left Arrow key."},
	ArrowRight:        {"arrow_right", `key code 124`, "Right Arrow key", "Press the Right Arrow key."},
	SelectAll:         {"select_all", `keystroke "a" using {command down}`, "Select All (Cmd+A)", "Select all text (Cmd+A)."},
	Copy:              {"copy", `keystroke "c" using {command down}`, "Copy (Cmd+C)", "Copy selected content (Cmd+C)."},
	Paste:             {"paste", `keystroke "v" using {command down}`, "Paste (Cmd+V)", "Paste from clipboard (Cmd+V)."},
	Cut:               {"cut", `keystroke "x" using {command down}`, "Cut (Cmd+X)", "Cut selected content (Cmd+X)."},
	Undo:              {"undo", `keystroke "z" using {command down}`, "Undo (Cmd+Z)", "Undo last action (Cmd+Z)."},
	Redo:              {"redo", `keystroke "z" using {command down, shift down}`, "Redo (Cmd+Shift+Z)", "Redo last undone action (Cmd+Shift+Z)."},
	Save:              {"save", `keystroke "s" using {command down}`, "Save (Cmd+S)", "Save current document (Cmd+S)."},
	New:               {"new", `keystroke "n" using {command down}`, "New (Cmd+N)", "Create new document (Cmd+N)."},
	Open:              {"open", `keystroke "o" using {command down}`, "Open (Cmd+O)", "Open document (Cmd+O)."},
	Find:              {"find", `keystroke "f" using {command down}`, "Find (Cmd+F)", "Find in document (Cmd+F)."},
	CloseWindow:       {"close_window", `keystroke "w" using {command down}`, "Close Window (Cmd+W)", "Close current window (Cmd+W)."},
	QuitApp:           {"quit_app", `keystroke "q" using {command down}`, "Quit App (Cmd+Q)", "Quit current application (Cmd+Q)."},
	MinimizeWindow:    {"minimize_window", `keystroke "m" using {command down}`, "Minimize Window (Cmd+M)", "Minimize current window (Cmd+M)."},
	HideApp:           {"hide_app", `keystroke "h" using {command down}`, "Hide App (Cmd+H)", "Hide current application (Cmd+H)."},
	SwitchAppForward:  {"switch_app_forward", `keystroke tab using {command down}`, "Switch App Forward (Cmd+Tab)", "Switch to next application (Cmd+Tab)."},
	SwitchAppBackward: {"switch_app_backward", `keystroke tab using {command down, shift down}`, "Switch App Backward (Cmd+Shift+Tab)", "Switch to previous application (Cmd+Shift+Tab)."},
	SpotlightSearch:   {"spotlight_search", `keystroke " " using {command down}`, "Spotlight Search (Cmd+Space)", "Open Spotlight search (Cmd+Space)."},
	ForceQuit:         {"force_quit", `key code 53 using {command down, option down}`, "Force Quit (Cmd+Option+Esc)", "Open Force Quit dialog (Cmd+Option+Esc)."},
	Refresh:           {"refresh", `keystroke "r" using {command down}`, "Refresh (Cmd+R)", "Refresh/Reload (Cmd+R)."},
}

// ToolPrefix prefixes every shortcut's tool name.
const ToolPrefix = "keyboard_shortcut_"

// Spec returns the catalog entry for a.
func (a Action) Spec() Spec {
	if a < 0 || a >= numActions {
		return Spec{}
	}
	return catalog[a]
}

func (a Action) String() string {
	if s := a.Spec(); s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ToolName is the name a tool caller uses for a.
func (a Action) ToolName() string {
	return ToolPrefix + a.Spec().Name
}

// All returns every catalog action in declaration order.
func All() []Action {
	actions := make([]Action, numActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// Lookup resolves a catalog name, with or without ToolPrefix.
func Lookup(name string) (Action, bool) {
	if len(name) > len(ToolPrefix) && name[:len(ToolPrefix)] == ToolPrefix {
		name = name[len(ToolPrefix):]
	}
	for i, s := range catalog {
		if s.Name == name {
			return Action(i), true
		}
	}
	return 0, false
}
