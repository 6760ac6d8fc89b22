package command

import (
	"fmt"
	"strings"

	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/widget"
)

// ParseError reports command text that did not match any verb or whose
// arguments could not be coerced.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Input)
}

// Parse converts command text into a Command. At most one leading ':'
// is stripped and the input is lower-cased before the verb is matched
// against the alias table; import paths keep their original case.
//
// Tokens beyond what a command consumes are deliberately ignored by
// that command's own argument slicing.
func Parse(input string) (Command, error) {
	stripped := strings.Replace(input, ":", "", 1)
	fields := strings.Fields(strings.ToLower(stripped))
	verb := ""
	var args []string
	if len(fields) > 0 {
		verb = fields[0]
		args = fields[1:]
	}
	fail := func() (Command, error) {
		return nil, &ParseError{Input: input}
	}
	switch verb {
	case "confirm":
		if len(args) == 0 {
			return Confirm{Command: None{}}, nil
		}
		inner, err := Parse(strings.Join(args, " "))
		if err != nil {
			return fail()
		}
		return Confirm{Command: inner}, nil
	case "output", "out":
		msg := ""
		outputType := OutputNone
		if len(args) > 0 {
			outputType = OutputTypeFrom(args[0])
			msg = strings.Join(args[1:], " ")
		}
		return ShowOutput{Type: outputType, Message: msg}, nil
	case "options", "opt":
		return ShowOptions{}, nil
	case "help", "h", "?":
		return ShowHelp{}, nil
	case "list", "ls":
		keyType, err := keyTypeArg(args)
		if err != nil {
			return fail()
		}
		return ListKeys{KeyType: keyType}, nil
	case "import":
		// Re-split the unmodified input so paths keep their case.
		paths := strings.Fields(stripped)[1:]
		return ImportKeys{Paths: paths}, nil
	case "export", "exp":
		keyType, err := keyTypeArg(args)
		if err != nil {
			return fail()
		}
		var patterns []string
		if len(args) > 1 {
			patterns = args[1:]
		}
		subkeys := false
		if n := len(patterns); n > 0 && patterns[n-1] == "subkey" {
			subkeys = true
			patterns = patterns[:n-1]
		}
		return ExportKeys{KeyType: keyType, Patterns: patterns, Subkeys: subkeys}, nil
	case "delete", "del":
		keyType, err := keyTypeArg(args)
		if err != nil {
			return fail()
		}
		keyID := ""
		if len(args) > 1 {
			keyID = args[1]
		}
		if rest, ok := strings.CutPrefix(keyID, "0x"); ok {
			keyID = "0x" + strings.ToUpper(rest)
		}
		return DeleteKey{KeyType: keyType, KeyID: keyID}, nil
	case "edit":
		if len(args) == 0 {
			return fail()
		}
		return EditKey{KeyID: args[0]}, nil
	case "sign":
		if len(args) == 0 {
			return fail()
		}
		return SignKey{KeyID: args[0]}, nil
	case "send":
		if len(args) == 0 {
			return fail()
		}
		return SendKey{KeyID: args[0]}, nil
	case "receive", "recv":
		return ReceiveKeys{KeyIDs: args}, nil
	case "generate", "gen":
		return GenerateKey{}, nil
	case "copy", "c":
		if len(args) == 0 {
			return SwitchMode{Mode: ModeCopy}, nil
		}
		selection, err := ParseSelection(args[0])
		if err != nil {
			return fail()
		}
		return Copy{Selection: selection}, nil
	case "toggle", "t":
		return ToggleDetail{All: len(args) > 0 && args[0] == "all"}, nil
	case "scroll":
		row := len(args) > 0 && args[0] == "row"
		rest := args
		if row {
			rest = args[1:]
		}
		direction, err := widget.ParseScrollDirection(strings.Join(rest, " "))
		if err != nil {
			direction = widget.ScrollDirection{Kind: widget.ScrollDown, Amount: 1}
		}
		return Scroll{Direction: direction, Row: row}, nil
	case "set", "s":
		option, value := "", ""
		if len(args) > 0 {
			option = args[0]
		}
		if len(args) > 1 {
			value = args[1]
		}
		return Set{Option: option, Value: value}, nil
	case "get", "g":
		option := ""
		if len(args) > 0 {
			option = args[0]
		}
		return Get{Option: option}, nil
	case "mode", "m":
		if len(args) == 0 {
			return fail()
		}
		mode, err := ParseMode(args[0])
		if err != nil {
			return fail()
		}
		return SwitchMode{Mode: mode}, nil
	case "normal", "n":
		return SwitchMode{Mode: ModeNormal}, nil
	case "visual", "v":
		return SwitchMode{Mode: ModeVisual}, nil
	case "paste", "p":
		return Paste{}, nil
	case "input":
		return EnableInput{}, nil
	case "search":
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		return Search{Query: query}, nil
	case "next":
		return NextTab{}, nil
	case "previous", "prev":
		return PreviousTab{}, nil
	case "minimize", "min":
		return Minimize{}, nil
	case "maximize", "max":
		return Maximize{}, nil
	case "refresh", "r":
		if len(args) > 0 && args[0] == "keys" {
			return RefreshKeys{}, nil
		}
		return Refresh{}, nil
	case "quit", "q", "q!":
		return Quit{}, nil
	case "none":
		return None{}, nil
	default:
		return fail()
	}
}

func keyTypeArg(args []string) (keyring.KeyType, error) {
	if len(args) == 0 {
		return keyring.Public, nil
	}
	return keyring.ParseKeyType(args[0])
}
