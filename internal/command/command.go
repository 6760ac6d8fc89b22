// Package command defines the typed operations the application can run
// and the colon-prefixed command language that produces them.
//
// Command is a closed set of variants: every user-triggerable operation
// is one of the types below, producible both from a key binding and from
// parsed command text. Consumers dispatch with a type switch.
package command

import (
	"fmt"
	"strings"

	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/widget"
)

// Command is one application operation. Describe returns a stable,
// non-empty human-readable summary used in confirmation prompts and the
// options menu.
type Command interface {
	Describe() string
	isCommand()
}

// Confirm asks the user to confirm the inner command before running it.
type Confirm struct {
	Command Command
}

// ShowOutput displays a message in the prompt line.
type ShowOutput struct {
	Type    OutputType
	Message string
}

// ShowOptions opens the options menu popup.
type ShowOptions struct{}

// ShowHelp opens the key binding reference.
type ShowHelp struct{}

// ListKeys populates the table with keys of the given type.
type ListKeys struct {
	KeyType keyring.KeyType
}

// ImportKeys imports keys from the given files.
type ImportKeys struct {
	Paths []string
}

// ExportKeys exports the keys matching the patterns. Subkeys selects
// secret subkey export.
type ExportKeys struct {
	KeyType  keyring.KeyType
	Patterns []string
	Subkeys  bool
}

// DeleteKey removes a key from the keyring.
type DeleteKey struct {
	KeyType keyring.KeyType
	KeyID   string
}

// EditKey opens the key management dialog for a key.
type EditKey struct {
	KeyID string
}

// SignKey signs a key with the default secret key.
type SignKey struct {
	KeyID string
}

// SendKey uploads a key to the default keyserver.
type SendKey struct {
	KeyID string
}

// ReceiveKeys fetches keys from the default keyserver.
type ReceiveKeys struct {
	KeyIDs []string
}

// GenerateKey starts the key pair generation dialog.
type GenerateKey struct{}

// Copy places the given selection on the clipboard.
type Copy struct {
	Selection Selection
}

// ToggleDetail cycles the detail level of the selected key, or of all
// keys when All is set.
type ToggleDetail struct {
	All bool
}

// Scroll moves the table viewport, or the selected row's viewport when
// Row is set.
type Scroll struct {
	Direction widget.ScrollDirection
	Row       bool
}

// Set assigns a value to a named option.
type Set struct {
	Option string
	Value  string
}

// Get shows the value of a named option.
type Get struct {
	Option string
}

// SwitchMode changes the application mode.
type SwitchMode struct {
	Mode Mode
}

// Paste inserts the clipboard contents into the command prompt.
type Paste struct{}

// EnableInput activates the command prompt.
type EnableInput struct{}

// Search activates the search prompt, optionally pre-filled.
type Search struct {
	Query string
}

// NextTab selects the next key type tab.
type NextTab struct{}

// PreviousTab selects the previous key type tab.
type PreviousTab struct{}

// Minimize shrinks the keys table.
type Minimize struct{}

// Maximize restores the keys table size.
type Maximize struct{}

// Refresh resets the application state.
type Refresh struct{}

// RefreshKeys requests key updates from the keyserver.
type RefreshKeys struct{}

// Quit terminates the application.
type Quit struct{}

// None does nothing.
type None struct{}

func (Confirm) isCommand()      {}
func (ShowOutput) isCommand()   {}
func (ShowOptions) isCommand()  {}
func (ShowHelp) isCommand()     {}
func (ListKeys) isCommand()     {}
func (ImportKeys) isCommand()   {}
func (ExportKeys) isCommand()   {}
func (DeleteKey) isCommand()    {}
func (EditKey) isCommand()      {}
func (SignKey) isCommand()      {}
func (SendKey) isCommand()      {}
func (ReceiveKeys) isCommand()  {}
func (GenerateKey) isCommand()  {}
func (Copy) isCommand()         {}
func (ToggleDetail) isCommand() {}
func (Scroll) isCommand()       {}
func (Set) isCommand()          {}
func (Get) isCommand()          {}
func (SwitchMode) isCommand()   {}
func (Paste) isCommand()        {}
func (EnableInput) isCommand()  {}
func (Search) isCommand()       {}
func (NextTab) isCommand()      {}
func (PreviousTab) isCommand()  {}
func (Minimize) isCommand()     {}
func (Maximize) isCommand()     {}
func (Refresh) isCommand()      {}
func (RefreshKeys) isCommand()  {}
func (Quit) isCommand()         {}
func (None) isCommand()         {}

func (c Confirm) Describe() string {
	if c.Command == nil {
		return "close"
	}
	return c.Command.Describe()
}

func (c ShowOutput) Describe() string { return "show output" }
func (ShowOptions) Describe() string  { return "show options" }
func (ShowHelp) Describe() string     { return "show help" }

func (c ListKeys) Describe() string {
	return fmt.Sprintf("list keys (%s)", c.KeyType)
}

func (ImportKeys) Describe() string { return "import key(s) from file" }

func (c ExportKeys) Describe() string {
	if len(c.Patterns) == 0 {
		return fmt.Sprintf("export all the keys (%s)", c.KeyType)
	}
	return fmt.Sprintf("export the selected key (%s)", c.KeyType)
}

func (c DeleteKey) Describe() string {
	return fmt.Sprintf("delete the selected key (%s)", c.KeyType)
}

func (EditKey) Describe() string     { return "edit the selected key" }
func (SignKey) Describe() string     { return "sign the selected key" }
func (SendKey) Describe() string     { return "send the selected key to the keyserver" }
func (ReceiveKeys) Describe() string { return "receive key(s) from the keyserver" }
func (GenerateKey) Describe() string { return "generate a new key pair" }

func (c Copy) Describe() string {
	return "copy " + strings.ToLower(c.Selection.String())
}

func (c ToggleDetail) Describe() string {
	if c.All {
		return "toggle detail (all)"
	}
	return "toggle detail (selected)"
}

func (c Scroll) Describe() string {
	target := "table"
	if c.Row {
		target = "row"
	}
	return fmt.Sprintf("scroll the %s %s", target, c.Direction)
}

func (c Set) Describe() string {
	action := "disable"
	if c.Value == "true" {
		action = "enable"
	}
	switch c.Option {
	case "armor":
		return action + " armored output"
	case "colored":
		return action + " colors"
	case "margin":
		return "toggle table margin"
	case "prompt":
		switch c.Value {
		case ":import ":
			return "import key(s)"
		case ":receive ":
			return "receive key(s)"
		default:
			return fmt.Sprintf("set prompt text to %s", c.Value)
		}
	default:
		return fmt.Sprintf("set %s to %s", c.Option, c.Value)
	}
}

func (c Get) Describe() string { return "get " + c.Option }

func (c SwitchMode) Describe() string {
	return fmt.Sprintf("switch to %s mode", strings.ToLower(c.Mode.Name()))
}

func (Paste) Describe() string       { return "paste from clipboard" }
func (EnableInput) Describe() string { return "enable command input" }

func (c Search) Describe() string {
	if c.Query == "" {
		return "search"
	}
	return "search for " + c.Query
}

func (NextTab) Describe() string     { return "switch to next tab" }
func (PreviousTab) Describe() string { return "switch to previous tab" }
func (Minimize) Describe() string    { return "minimize the table" }
func (Maximize) Describe() string    { return "maximize the table" }
func (Refresh) Describe() string     { return "refresh the application" }
func (RefreshKeys) Describe() string { return "refresh the keyring" }
func (Quit) Describe() string        { return "quit the application" }
func (None) Describe() string        { return "close" }
