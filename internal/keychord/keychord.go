// Package keychord parses human-readable key tokens such as "C-c", "f5"
// or "enter" into modifier + key code pairs used for binding lookups.
package keychord

import (
	"fmt"
	"strings"
	"unicode"
)

// Modifier is a bit set of the modifier keys held during a key press.
type Modifier uint8

const (
	ModNone    Modifier = 0
	ModControl Modifier = 1 << iota
	ModAlt
	ModShift
)

func (m Modifier) String() string {
	var parts []string
	if m&ModControl != 0 {
		parts = append(parts, "C")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "A")
	}
	if m&ModShift != 0 {
		parts = append(parts, "S")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}

// Code identifies a key. Printable characters use CodeChar with the rune
// stored in KeyChord.Char, function keys use CodeF with KeyChord.FNum.
type Code uint8

const (
	CodeNone Code = iota
	CodeChar
	CodeF
	CodeEnter
	CodeEsc
	CodeTab
	CodeBackspace
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodePageUp
	CodePageDown
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
)

var codeNames = map[string]Code{
	"Enter":     CodeEnter,
	"Esc":       CodeEsc,
	"Tab":       CodeTab,
	"Backspace": CodeBackspace,
	"Left":      CodeLeft,
	"Right":     CodeRight,
	"Up":        CodeUp,
	"Down":      CodeDown,
	"PageUp":    CodePageUp,
	"PageDown":  CodePageDown,
	"Delete":    CodeDelete,
	"Insert":    CodeInsert,
	"Home":      CodeHome,
	"End":       CodeEnd,
}

func (c Code) String() string {
	for name, code := range codeNames {
		if code == c {
			return name
		}
	}
	switch c {
	case CodeChar:
		return "Char"
	case CodeF:
		return "F"
	default:
		return "None"
	}
}

// KeyChord is a single key event: a modifier set plus a key code.
// Chord equality is used for binding lookups; the Char payload is
// case-sensitive, so 'q' and 'Q' are different chords.
type KeyChord struct {
	Mod  Modifier
	Code Code
	Char rune
	FNum int
}

// Chr returns a chord for a plain printable character.
func Chr(c rune) KeyChord {
	return KeyChord{Code: CodeChar, Char: c}
}

// Ctrl returns a chord for a control-modified character.
func Ctrl(c rune) KeyChord {
	return KeyChord{Mod: ModControl, Code: CodeChar, Char: c}
}

// Alt returns a chord for an alt-modified character.
func Alt(c rune) KeyChord {
	return KeyChord{Mod: ModAlt, Code: CodeChar, Char: c}
}

// F returns a chord for a function key.
func F(n int) KeyChord {
	return KeyChord{Code: CodeF, FNum: n}
}

// Key returns a chord for a named key.
func Key(code Code) KeyChord {
	return KeyChord{Code: code}
}

func (k KeyChord) String() string {
	var s string
	switch k.Code {
	case CodeChar:
		s = string(k.Char)
	case CodeF:
		s = fmt.Sprintf("f%d", k.FNum)
	default:
		s = strings.ToLower(k.Code.String())
	}
	switch k.Mod {
	case ModControl:
		return "C-" + s
	case ModAlt:
		return "A-" + s
	default:
		return s
	}
}

// ParseError reports a key token that did not match any chord rule.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid key token %q", e.Token)
}

// Parse converts a key token into a KeyChord. Recognized forms, in order:
//
//   - a single character ("q", "?", " ")
//   - a function key ("f5", "F0")
//   - a control/alt combination ("C-c", "a-3"); the prefix is matched
//     case-insensitively but the character keeps its case
//   - a named key ("enter", "esc", "pageup", "space", ...)
func Parse(token string) (KeyChord, error) {
	runes := []rune(token)
	switch {
	case len(runes) == 1:
		return Chr(runes[0]), nil
	case len(runes) == 2 && (runes[0] == 'f' || runes[0] == 'F') && unicode.IsDigit(runes[1]):
		return F(int(runes[1] - '0')), nil
	case len(runes) == 3 && runes[1] == '-':
		switch unicode.ToLower(runes[0]) {
		case 'c':
			return Ctrl(runes[2]), nil
		case 'a':
			return Alt(runes[2]), nil
		}
		return KeyChord{}, &ParseError{Token: token}
	default:
		name := capitalize(token)
		if name == "Space" {
			return Chr(' '), nil
		}
		if code, ok := namedKey(name); ok {
			return Key(code), nil
		}
		return KeyChord{}, &ParseError{Token: token}
	}
}

func namedKey(name string) (Code, bool) {
	for known, code := range codeNames {
		if strings.EqualFold(known, name) {
			return code, true
		}
	}
	return CodeNone, false
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
