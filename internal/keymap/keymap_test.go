package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keywarden/keywarden/internal/command"
	"github.com/keywarden/keywarden/internal/keychord"
	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/widget"
)

func TestResolveBuiltin(t *testing.T) {
	resolver := NewResolver(nil)
	ctx := Context{SelectedKeyID: "0xTEST"}

	assert.Equal(t, command.ShowHelp{}, resolver.Resolve(keychord.Chr('?'), ctx))
	assert.Equal(t, command.ShowOptions{}, resolver.Resolve(keychord.Chr('o'), ctx))
	assert.Equal(t, command.ShowOptions{}, resolver.Resolve(keychord.Chr(' '), ctx))
	assert.Equal(t, command.ShowOptions{}, resolver.Resolve(keychord.Key(keychord.CodeEnter), ctx))
	assert.Equal(t, command.Quit{}, resolver.Resolve(keychord.Chr('q'), ctx))
	assert.Equal(t, command.Quit{}, resolver.Resolve(keychord.Ctrl('c'), ctx))
	assert.Equal(t, command.Quit{}, resolver.Resolve(keychord.Ctrl('d'), ctx))
	assert.Equal(t, command.Refresh{}, resolver.Resolve(keychord.Chr('r'), ctx))
	assert.Equal(t, command.Refresh{}, resolver.Resolve(keychord.F(5), ctx))
	assert.Equal(t, command.RefreshKeys{}, resolver.Resolve(keychord.Ctrl('r'), ctx))
	assert.Equal(t, command.GenerateKey{}, resolver.Resolve(keychord.Chr('g'), ctx))
	assert.Equal(t, command.Search{}, resolver.Resolve(keychord.Chr('/'), ctx))
	assert.Equal(t, command.EnableInput{}, resolver.Resolve(keychord.Chr(':'), ctx))
	assert.Equal(t, command.Paste{}, resolver.Resolve(keychord.Chr('p'), ctx))
	assert.Equal(t, command.Paste{}, resolver.Resolve(keychord.Ctrl('v'), ctx))
}

func TestResolveNavigation(t *testing.T) {
	resolver := NewResolver(nil)
	ctx := Context{}

	up := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollUp, Amount: 1}}
	down := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollDown, Amount: 1}}
	assert.Equal(t, up, resolver.Resolve(keychord.Chr('k'), ctx))
	assert.Equal(t, up, resolver.Resolve(keychord.Key(keychord.CodeUp), ctx))
	assert.Equal(t, down, resolver.Resolve(keychord.Chr('j'), ctx))
	assert.Equal(t, down, resolver.Resolve(keychord.Key(keychord.CodeDown), ctx))

	assert.Equal(t, command.PreviousTab{}, resolver.Resolve(keychord.Chr('h'), ctx))
	assert.Equal(t, command.NextTab{}, resolver.Resolve(keychord.Chr('l'), ctx))
	assert.Equal(t, command.PreviousTab{}, resolver.Resolve(keychord.Key(keychord.CodeLeft), ctx))
	assert.Equal(t, command.NextTab{}, resolver.Resolve(keychord.Key(keychord.CodeRight), ctx))

	top := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollTop, Amount: 1}}
	bottom := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollBottom, Amount: 1}}
	assert.Equal(t, top, resolver.Resolve(keychord.Key(keychord.CodePageUp), ctx))
	assert.Equal(t, bottom, resolver.Resolve(keychord.Key(keychord.CodePageDown), ctx))
	assert.Equal(t, top, resolver.Resolve(keychord.Ctrl('k'), ctx))
	assert.Equal(t, bottom, resolver.Resolve(keychord.Ctrl('j'), ctx))

	// Alt routes the scroll to the selected row.
	rowLeft := command.Scroll{
		Direction: widget.ScrollDirection{Kind: widget.ScrollLeft, Amount: 1},
		Row:       true,
	}
	assert.Equal(t, rowLeft, resolver.Resolve(keychord.Alt('h'), ctx))
	assert.Equal(t, rowLeft, resolver.Resolve(
		keychord.KeyChord{Mod: keychord.ModAlt, Code: keychord.CodeLeft}, ctx))
}

func TestResolveModeConditional(t *testing.T) {
	resolver := NewResolver(nil)
	normal := Context{Mode: command.ModeNormal, KeyType: keyring.Public, SelectedKeyID: "0xTEST"}
	copyMode := normal
	copyMode.Mode = command.ModeCopy

	assert.Equal(t,
		command.ExportKeys{KeyType: keyring.Public, Patterns: []string{"0xTEST"}},
		resolver.Resolve(keychord.Chr('x'), normal))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionKey},
		resolver.Resolve(keychord.Chr('x'), copyMode))

	assert.Equal(t,
		command.Set{Option: "prompt", Value: ":import "},
		resolver.Resolve(keychord.Chr('i'), normal))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionKeyID},
		resolver.Resolve(keychord.Chr('i'), copyMode))

	assert.Equal(t,
		command.Set{Option: "prompt", Value: ":receive "},
		resolver.Resolve(keychord.Chr('f'), normal))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionKeyFingerprint},
		resolver.Resolve(keychord.Chr('f'), copyMode))

	assert.Equal(t,
		command.SendKey{KeyID: "0xTEST"},
		resolver.Resolve(keychord.Chr('u'), normal))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionKeyUserID},
		resolver.Resolve(keychord.Chr('u'), copyMode))

	assert.Equal(t,
		command.Set{Option: "detail", Value: "minimum"},
		resolver.Resolve(keychord.Chr('1'), normal))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionRow1},
		resolver.Resolve(keychord.Chr('1'), copyMode))
	assert.Equal(t,
		command.Copy{Selection: command.SelectionRow2},
		resolver.Resolve(keychord.Chr('2'), copyMode))
}

func TestResolveContextConditional(t *testing.T) {
	resolver := NewResolver(nil)

	ctx := Context{KeyType: keyring.Secret, SelectedKeyID: "0xTEST"}
	assert.Equal(t,
		command.Confirm{Command: command.DeleteKey{KeyType: keyring.Secret, KeyID: "0xTEST"}},
		resolver.Resolve(keychord.Chr('d'), ctx))
	assert.Equal(t,
		command.Confirm{Command: command.DeleteKey{KeyType: keyring.Secret, KeyID: "0xTEST"}},
		resolver.Resolve(keychord.Key(keychord.CodeBackspace), ctx))

	// Selection-dependent keys are harmless on an empty table.
	empty := Context{KeyType: keyring.Secret}
	for _, chord := range []keychord.KeyChord{
		keychord.Chr('d'), keychord.Chr('x'), keychord.Chr('s'),
		keychord.Chr('e'), keychord.Chr('u'),
	} {
		assert.Equal(t, command.None{}, resolver.Resolve(chord, empty), "chord %s", chord)
	}

	assert.Equal(t, command.Minimize{}, resolver.Resolve(keychord.Chr('m'), Context{}))
	assert.Equal(t, command.Maximize{}, resolver.Resolve(keychord.Chr('m'), Context{Minimized: true}))

	assert.Equal(t,
		command.Set{Option: "armor", Value: "true"},
		resolver.Resolve(keychord.Chr('a'), Context{}))
	assert.Equal(t,
		command.Set{Option: "armor", Value: "false"},
		resolver.Resolve(keychord.Chr('a'), Context{Armored: true}))

	assert.Equal(t,
		command.SwitchMode{Mode: command.ModeNormal},
		resolver.Resolve(keychord.Key(keychord.CodeEsc), Context{Mode: command.ModeVisual}))
	assert.Equal(t,
		command.Quit{},
		resolver.Resolve(keychord.Key(keychord.CodeEsc), Context{Mode: command.ModeNormal}))
}

func TestResolveOptionsShown(t *testing.T) {
	resolver := NewResolver(nil)
	ctx := Context{KeyType: keyring.Secret, SelectedKeyID: "0xTEST", OptionsShown: true}

	up := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollUp, Amount: 1}}
	down := command.Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollDown, Amount: 1}}
	assert.Equal(t, up, resolver.Resolve(keychord.Chr('k'), ctx))
	assert.Equal(t, up, resolver.Resolve(keychord.Key(keychord.CodeUp), ctx))
	assert.Equal(t, down, resolver.Resolve(keychord.Chr('j'), ctx))
	assert.Equal(t, down, resolver.Resolve(keychord.Key(keychord.CodeDown), ctx))
	assert.Equal(t, command.Quit{}, resolver.Resolve(keychord.Ctrl('c'), ctx))

	// Table actions stay inert while the menu is open.
	for _, chord := range []keychord.KeyChord{
		keychord.Chr('d'), keychord.Chr('x'), keychord.Chr('g'),
		keychord.Chr('r'), keychord.Ctrl('r'), keychord.Alt('j'),
	} {
		assert.Equal(t, command.None{}, resolver.Resolve(chord, ctx), "chord %s", chord)
	}
}

func TestResolveCustomBindingPrecedence(t *testing.T) {
	resolver := NewResolver([]CustomKeyBinding{
		{
			Keys:    []keychord.KeyChord{keychord.Chr('q'), keychord.Ctrl('x')},
			Command: command.Refresh{},
		},
		{
			Keys:    []keychord.KeyChord{keychord.Chr('q')},
			Command: command.Quit{},
		},
	})

	// The first matching binding wins over later ones and built-ins.
	assert.Equal(t, command.Refresh{}, resolver.Resolve(keychord.Chr('q'), Context{}))
	assert.Equal(t, command.Refresh{}, resolver.Resolve(keychord.Ctrl('x'), Context{}))
	// Unbound chords still hit the built-in table.
	assert.Equal(t, command.ShowHelp{}, resolver.Resolve(keychord.Chr('?'), Context{}))
}

func TestResolveUnmapped(t *testing.T) {
	resolver := NewResolver(nil)
	for _, chord := range []keychord.KeyChord{
		keychord.Chr('z'),
		keychord.Ctrl('z'),
		keychord.Alt('z'),
		keychord.F(9),
		keychord.Key(keychord.CodeInsert),
	} {
		assert.Equal(t, command.None{}, resolver.Resolve(chord, Context{}), "chord %s", chord)
	}
}

func TestKeyBindingsReference(t *testing.T) {
	assert.NotEmpty(t, KeyBindings)
	for _, binding := range KeyBindings {
		assert.NotEmpty(t, binding.Key)
		assert.NotEmpty(t, binding.Action)
		assert.NotEmpty(t, binding.Title())
		assert.NotEmpty(t, binding.DescriptionLines())
	}
}
