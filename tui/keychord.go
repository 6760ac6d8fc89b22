package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keywarden/keywarden/internal/keychord"
)

// chordFromKey converts a bubbletea key message into the chord form
// the resolver works with. Unknown keys return ok=false and are
// dropped.
func chordFromKey(msg tea.KeyMsg) (keychord.KeyChord, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return keychord.KeyChord{}, false
		}
		if msg.Alt {
			return keychord.Alt(msg.Runes[0]), true
		}
		return keychord.Chr(msg.Runes[0]), true
	case tea.KeySpace:
		return keychord.Chr(' '), true
	case tea.KeyEnter:
		return keychord.Key(keychord.CodeEnter), true
	case tea.KeyEsc:
		return keychord.Key(keychord.CodeEsc), true
	case tea.KeyTab:
		return keychord.Key(keychord.CodeTab), true
	case tea.KeyBackspace:
		return keychord.Key(keychord.CodeBackspace), true
	case tea.KeyDelete:
		return keychord.Key(keychord.CodeDelete), true
	case tea.KeyInsert:
		return keychord.Key(keychord.CodeInsert), true
	case tea.KeyHome:
		return keychord.Key(keychord.CodeHome), true
	case tea.KeyEnd:
		return keychord.Key(keychord.CodeEnd), true
	case tea.KeyPgUp:
		return keychord.Key(keychord.CodePageUp), true
	case tea.KeyPgDown:
		return keychord.Key(keychord.CodePageDown), true
	case tea.KeyUp:
		return withMod(keychord.CodeUp, msg.Alt), true
	case tea.KeyDown:
		return withMod(keychord.CodeDown, msg.Alt), true
	case tea.KeyLeft:
		return withMod(keychord.CodeLeft, msg.Alt), true
	case tea.KeyRight:
		return withMod(keychord.CodeRight, msg.Alt), true
	case tea.KeyCtrlUp:
		return keychord.KeyChord{Mod: keychord.ModControl, Code: keychord.CodeUp}, true
	case tea.KeyCtrlDown:
		return keychord.KeyChord{Mod: keychord.ModControl, Code: keychord.CodeDown}, true
	}
	// Ctrl-letter key types are contiguous; tab and enter alias ctrl+i
	// and ctrl+m and are matched above.
	if t := msg.Type; t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ {
		return keychord.Ctrl(rune('a' + int(t-tea.KeyCtrlA))), true
	}
	// Function key types count down from KeyF1.
	if t := msg.Type; t <= tea.KeyF1 && t >= tea.KeyF20 {
		return keychord.F(int(tea.KeyF1-t) + 1), true
	}
	return keychord.KeyChord{}, false
}

func withMod(code keychord.Code, alt bool) keychord.KeyChord {
	chord := keychord.Key(code)
	if alt {
		chord.Mod = keychord.ModAlt
	}
	return chord
}
