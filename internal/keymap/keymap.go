// Package keymap resolves key presses to commands. User-defined
// bindings are consulted first, then the built-in table; unmapped keys
// resolve to the no-op command so stray keystrokes are harmless.
package keymap

import (
	"github.com/keywarden/keywarden/internal/command"
	"github.com/keywarden/keywarden/internal/keychord"
	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/widget"
)

// CustomKeyBinding binds one or more key chords to a single command.
type CustomKeyBinding struct {
	Keys    []keychord.KeyChord
	Command command.Command
}

// Context is the application state a key press is resolved against.
// Resolution depends only on the pressed chord and these fields, so it
// stays a pure function.
type Context struct {
	Mode command.Mode
	// KeyType is the key type of the active tab.
	KeyType keyring.KeyType
	// SelectedKeyID is the ID of the selected key, empty when the
	// table is empty.
	SelectedKeyID string
	// OptionsShown reports whether the options menu is open.
	OptionsShown bool
	// Minimized reports whether the key table is minimized.
	Minimized bool
	// Armored is the current armor setting, used by the toggle key.
	Armored bool
	// Colored is the current style setting, used by the toggle key.
	Colored bool
}

// Resolver resolves key chords against custom bindings and the
// built-in table.
type Resolver struct {
	custom []CustomKeyBinding
}

// NewResolver returns a resolver with the given user bindings. The
// binding order is preserved; earlier bindings win.
func NewResolver(custom []CustomKeyBinding) *Resolver {
	return &Resolver{custom: custom}
}

// Resolve maps a key chord to a command. Custom bindings are scanned
// in declaration order before the built-in table so user configuration
// can override built-ins.
func (r *Resolver) Resolve(chord keychord.KeyChord, ctx Context) command.Command {
	for _, binding := range r.custom {
		for _, key := range binding.Keys {
			if key == chord {
				return binding.Command
			}
		}
	}
	return resolveBuiltin(chord, ctx)
}

func resolveBuiltin(chord keychord.KeyChord, ctx Context) command.Command {
	if ctx.OptionsShown {
		return resolveOptionsShown(chord)
	}
	switch chord.Mod {
	case keychord.ModControl:
		return resolveControl(chord, ctx)
	case keychord.ModAlt:
		return resolveAlt(chord)
	}

	switch chord.Code {
	case keychord.CodeUp:
		return scrollTable(widget.ScrollUp)
	case keychord.CodeDown:
		return scrollTable(widget.ScrollDown)
	case keychord.CodeLeft:
		return command.PreviousTab{}
	case keychord.CodeRight:
		return command.NextTab{}
	case keychord.CodePageUp:
		return scrollTable(widget.ScrollTop)
	case keychord.CodePageDown:
		return scrollTable(widget.ScrollBottom)
	case keychord.CodeTab:
		return command.ToggleDetail{All: true}
	case keychord.CodeEnter:
		return command.ShowOptions{}
	case keychord.CodeBackspace:
		return deleteSelected(ctx)
	case keychord.CodeEsc:
		if ctx.Mode != command.ModeNormal {
			return command.SwitchMode{Mode: command.ModeNormal}
		}
		return command.Quit{}
	case keychord.CodeF:
		if chord.FNum == 5 {
			return command.Refresh{}
		}
		return command.None{}
	case keychord.CodeChar:
		return resolveChar(chord.Char, ctx)
	}
	return command.None{}
}

// While the options menu is open only menu navigation and quit
// resolve; everything else is inert so menu input cannot trigger
// table actions underneath. Selection and closing keys are handled by
// the menu itself.
func resolveOptionsShown(chord keychord.KeyChord) command.Command {
	if chord.Mod == keychord.ModControl {
		if chord.Code == keychord.CodeChar && (chord.Char == 'c' || chord.Char == 'd') {
			return command.Quit{}
		}
		return command.None{}
	}
	if chord.Mod != keychord.ModNone {
		return command.None{}
	}
	switch chord.Code {
	case keychord.CodeUp:
		return scrollTable(widget.ScrollUp)
	case keychord.CodeDown:
		return scrollTable(widget.ScrollDown)
	case keychord.CodeChar:
		switch chord.Char {
		case 'k':
			return scrollTable(widget.ScrollUp)
		case 'j':
			return scrollTable(widget.ScrollDown)
		}
	}
	return command.None{}
}

func resolveControl(chord keychord.KeyChord, ctx Context) command.Command {
	if chord.Code == keychord.CodeUp {
		return scrollTable(widget.ScrollTop)
	}
	if chord.Code == keychord.CodeDown {
		return scrollTable(widget.ScrollBottom)
	}
	if chord.Code != keychord.CodeChar {
		return command.None{}
	}
	switch chord.Char {
	case 'c', 'd':
		return command.Quit{}
	case 'r':
		return command.RefreshKeys{}
	case 'v':
		return command.Paste{}
	case 's':
		return command.Set{Option: "colored", Value: boolValue(!ctx.Colored)}
	case 'k':
		return scrollTable(widget.ScrollTop)
	case 'j':
		return scrollTable(widget.ScrollBottom)
	}
	return command.None{}
}

// Alt-modified navigation keys scroll the selected row instead of the
// table.
func resolveAlt(chord keychord.KeyChord) command.Command {
	kind, ok := navKind(chord)
	if !ok {
		return command.None{}
	}
	return command.Scroll{
		Direction: widget.ScrollDirection{Kind: kind, Amount: 1},
		Row:       true,
	}
}

func navKind(chord keychord.KeyChord) (widget.ScrollKind, bool) {
	switch chord.Code {
	case keychord.CodeUp:
		return widget.ScrollUp, true
	case keychord.CodeDown:
		return widget.ScrollDown, true
	case keychord.CodeLeft:
		return widget.ScrollLeft, true
	case keychord.CodeRight:
		return widget.ScrollRight, true
	case keychord.CodeChar:
		switch chord.Char {
		case 'k':
			return widget.ScrollUp, true
		case 'j':
			return widget.ScrollDown, true
		case 'h':
			return widget.ScrollLeft, true
		case 'l':
			return widget.ScrollRight, true
		}
	}
	return widget.ScrollUp, false
}

func resolveChar(c rune, ctx Context) command.Command {
	if ctx.Mode == command.ModeCopy {
		if cmd, ok := copySelection(c); ok {
			return cmd
		}
	}
	switch c {
	case '?':
		return command.ShowHelp{}
	case 'o', ' ':
		return command.ShowOptions{}
	case 'k':
		return scrollTable(widget.ScrollUp)
	case 'j':
		return scrollTable(widget.ScrollDown)
	case 'h':
		return command.PreviousTab{}
	case 'l':
		return command.NextTab{}
	case 'n':
		return command.SwitchMode{Mode: command.ModeNormal}
	case 'v':
		return command.SwitchMode{Mode: command.ModeVisual}
	case 'c':
		return command.SwitchMode{Mode: command.ModeCopy}
	case 'p':
		return command.Paste{}
	case 'x':
		if ctx.SelectedKeyID == "" {
			return command.None{}
		}
		return command.ExportKeys{
			KeyType:  ctx.KeyType,
			Patterns: []string{ctx.SelectedKeyID},
		}
	case 's':
		return selectedKeyCommand(ctx, func(id string) command.Command {
			return command.SignKey{KeyID: id}
		})
	case 'e':
		return selectedKeyCommand(ctx, func(id string) command.Command {
			return command.EditKey{KeyID: id}
		})
	case 'i':
		return command.Set{Option: "prompt", Value: ":import "}
	case 'f':
		return command.Set{Option: "prompt", Value: ":receive "}
	case 'u':
		return selectedKeyCommand(ctx, func(id string) command.Command {
			return command.SendKey{KeyID: id}
		})
	case 'g':
		return command.GenerateKey{}
	case 'd':
		return deleteSelected(ctx)
	case 'a':
		return command.Set{Option: "armor", Value: boolValue(!ctx.Armored)}
	case '1':
		return command.Set{Option: "detail", Value: "minimum"}
	case '2':
		return command.Set{Option: "detail", Value: "standard"}
	case '3':
		return command.Set{Option: "detail", Value: "full"}
	case 't':
		return command.ToggleDetail{}
	case '`':
		return command.Set{Option: "margin", Value: "toggle"}
	case 'm':
		if ctx.Minimized {
			return command.Maximize{}
		}
		return command.Minimize{}
	case '/':
		return command.Search{}
	case ':':
		return command.EnableInput{}
	case 'r':
		return command.Refresh{}
	case 'q', 'Q':
		return command.Quit{}
	}
	return command.None{}
}

// copySelection maps the copy-mode keys to their clipboard targets.
func copySelection(c rune) (command.Command, bool) {
	switch c {
	case 'x':
		return command.Copy{Selection: command.SelectionKey}, true
	case 'i':
		return command.Copy{Selection: command.SelectionKeyID}, true
	case 'f':
		return command.Copy{Selection: command.SelectionKeyFingerprint}, true
	case 'u':
		return command.Copy{Selection: command.SelectionKeyUserID}, true
	case '1':
		return command.Copy{Selection: command.SelectionRow1}, true
	case '2':
		return command.Copy{Selection: command.SelectionRow2}, true
	}
	return nil, false
}

func deleteSelected(ctx Context) command.Command {
	if ctx.SelectedKeyID == "" {
		return command.None{}
	}
	return command.Confirm{Command: command.DeleteKey{
		KeyType: ctx.KeyType,
		KeyID:   ctx.SelectedKeyID,
	}}
}

func selectedKeyCommand(ctx Context, build func(id string) command.Command) command.Command {
	if ctx.SelectedKeyID == "" {
		return command.None{}
	}
	return build(ctx.SelectedKeyID)
}

func scrollTable(kind widget.ScrollKind) command.Command {
	return command.Scroll{Direction: widget.ScrollDirection{Kind: kind, Amount: 1}}
}

func boolValue(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
