package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/widget"
)

func mustParse(t *testing.T, input string) Command {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err, "input %q", input)
	return cmd
}

func TestParseAliases(t *testing.T) {
	for want, inputs := range map[Command][]string{
		ListKeys{KeyType: keyring.Public}:   {":list", ":list pub", ":ls", ":ls pub"},
		ListKeys{KeyType: keyring.Secret}:   {":list sec", ":ls sec"},
		ShowOptions{}:                       {":options", ":opt"},
		ShowHelp{}:                          {":help", ":h", ":?"},
		GenerateKey{}:                       {":generate", ":gen"},
		ToggleDetail{All: true}:             {":toggle all", ":t all"},
		ToggleDetail{}:                      {":toggle", ":t"},
		SwitchMode{Mode: ModeNormal}:        {":normal", ":n", ":mode normal", ":m n"},
		SwitchMode{Mode: ModeVisual}:        {":visual", ":v", ":mode visual"},
		SwitchMode{Mode: ModeCopy}:          {":copy", ":c", ":mode copy"},
		Paste{}:                             {":paste", ":p"},
		EnableInput{}:                       {":input"},
		NextTab{}:                           {":next"},
		PreviousTab{}:                       {":previous", ":prev"},
		Minimize{}:                          {":minimize", ":min"},
		Maximize{}:                          {":maximize", ":max"},
		Refresh{}:                           {":refresh", ":r"},
		RefreshKeys{}:                       {":refresh keys", ":r keys"},
		Quit{}:                              {":quit", ":q", ":q!"},
		None{}:                              {":none"},
	} {
		for _, input := range inputs {
			assert.Equal(t, want, mustParse(t, input), "input %q", input)
		}
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	assert.Equal(t, Refresh{}, mustParse(t, ":REFRESH"))
	assert.Equal(t, Quit{}, mustParse(t, "Quit"))
}

func TestParseConfirm(t *testing.T) {
	assert.Equal(t, Confirm{Command: None{}}, mustParse(t, ":confirm none"))
	assert.Equal(t, Confirm{Command: None{}}, mustParse(t, ":confirm"))
	assert.Equal(t,
		Confirm{Command: DeleteKey{KeyType: keyring.Public, KeyID: "xyz"}},
		mustParse(t, ":confirm delete pub xyz"))
	_, err := Parse(":confirm bogus")
	assert.Error(t, err)
}

func TestParseShowOutput(t *testing.T) {
	assert.Equal(t,
		ShowOutput{Type: OutputSuccess, Message: "operation successful"},
		mustParse(t, ":out success operation successful"))
	assert.Equal(t,
		ShowOutput{Type: OutputNone, Message: "hmm"},
		mustParse(t, ":output bogus hmm"))
}

func TestParseImportPreservesCase(t *testing.T) {
	assert.Equal(t,
		ImportKeys{Paths: []string{"Test1", "Test2", "tesT3"}},
		mustParse(t, ":import Test1 Test2 tesT3"))
}

func TestParseExport(t *testing.T) {
	for _, input := range []string{":export", ":export pub", ":exp", ":exp pub"} {
		assert.Equal(t,
			ExportKeys{KeyType: keyring.Public},
			mustParse(t, input), "input %q", input)
	}
	assert.Equal(t,
		ExportKeys{KeyType: keyring.Public, Patterns: []string{"test1", "test2"}},
		mustParse(t, ":export pub test1 test2"))
	assert.Equal(t,
		ExportKeys{KeyType: keyring.Secret, Patterns: []string{"test3", "test4"}, Subkeys: true},
		mustParse(t, ":export sec test3 test4 subkey"))
	_, err := Parse(":export bogus")
	assert.Error(t, err)
}

func TestParseDelete(t *testing.T) {
	for _, input := range []string{":delete pub xyz", ":del pub xyz"} {
		assert.Equal(t,
			DeleteKey{KeyType: keyring.Public, KeyID: "xyz"},
			mustParse(t, input), "input %q", input)
	}
	assert.Equal(t,
		DeleteKey{KeyType: keyring.Secret, KeyID: "0xABC123"},
		mustParse(t, ":delete sec 0xabc123"))
}

func TestParseKeyOperations(t *testing.T) {
	assert.Equal(t, EditKey{KeyID: "xyz"}, mustParse(t, ":edit xyz"))
	assert.Equal(t, SignKey{KeyID: "xyz"}, mustParse(t, ":sign xyz"))
	assert.Equal(t, SendKey{KeyID: "xyz"}, mustParse(t, ":send xyz"))
	assert.Equal(t, ReceiveKeys{KeyIDs: []string{"a", "b"}}, mustParse(t, ":receive a b"))
	for _, input := range []string{":edit", ":sign", ":send"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseCopy(t *testing.T) {
	assert.Equal(t, Copy{Selection: SelectionRow1}, mustParse(t, ":copy row1"))
	assert.Equal(t, Copy{Selection: SelectionRow2}, mustParse(t, ":c 2"))
	assert.Equal(t, Copy{Selection: SelectionKey}, mustParse(t, ":copy key"))
	assert.Equal(t, Copy{Selection: SelectionKeyID}, mustParse(t, ":copy id"))
	assert.Equal(t, Copy{Selection: SelectionKeyFingerprint}, mustParse(t, ":copy fingerprint"))
	assert.Equal(t, Copy{Selection: SelectionKeyUserID}, mustParse(t, ":copy user"))
	_, err := Parse(":copy bogus")
	assert.Error(t, err)
}

func TestParseScroll(t *testing.T) {
	for _, input := range []string{":scroll up 1", ":scroll u 1"} {
		assert.Equal(t,
			Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollUp, Amount: 1}},
			mustParse(t, input), "input %q", input)
	}
	assert.Equal(t,
		Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollLeft, Amount: 5}, Row: true},
		mustParse(t, ":scroll row left 5"))
	assert.Equal(t,
		Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollTop}},
		mustParse(t, ":scroll top"))
	// Unparsable directions fall back to scrolling down one line.
	assert.Equal(t,
		Scroll{Direction: widget.ScrollDirection{Kind: widget.ScrollDown, Amount: 1}},
		mustParse(t, ":scroll sideways"))
}

func TestParseSetGet(t *testing.T) {
	for _, input := range []string{":set armor true", ":s armor true"} {
		assert.Equal(t, Set{Option: "armor", Value: "true"}, mustParse(t, input))
	}
	assert.Equal(t, Set{Option: "test", Value: "_"}, mustParse(t, ":set test _"))
	for _, input := range []string{":get armor", ":g armor"} {
		assert.Equal(t, Get{Option: "armor"}, mustParse(t, input))
	}
}

func TestParseSearch(t *testing.T) {
	assert.Equal(t, Search{Query: "q"}, mustParse(t, ":search q"))
	assert.Equal(t, Search{}, mustParse(t, ":search"))
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", ":", "test", ":bogus", ":mode bogus", ":list bogus"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Contains(t, parseErr.Error(), "invalid command")
	}
}

func TestDescribeStableAndNonEmpty(t *testing.T) {
	commands := []Command{
		Confirm{Command: None{}}, ShowOutput{}, ShowOptions{}, ShowHelp{},
		ListKeys{}, ImportKeys{}, ExportKeys{}, ExportKeys{Patterns: []string{"x"}},
		DeleteKey{}, EditKey{}, SignKey{}, SendKey{}, ReceiveKeys{}, GenerateKey{},
		Copy{Selection: SelectionKeyID}, ToggleDetail{}, ToggleDetail{All: true},
		Scroll{}, Set{Option: "armor", Value: "true"}, Get{Option: "armor"},
		SwitchMode{Mode: ModeVisual}, Paste{}, EnableInput{}, Search{},
		NextTab{}, PreviousTab{}, Minimize{}, Maximize{}, Refresh{},
		RefreshKeys{}, Quit{}, None{},
	}
	for _, cmd := range commands {
		first := cmd.Describe()
		assert.NotEmpty(t, first, "%T", cmd)
		assert.Equal(t, first, cmd.Describe(), "%T", cmd)
	}
}

func TestDescribeSamples(t *testing.T) {
	assert.Equal(t, "export all the keys (pub)", ExportKeys{}.Describe())
	assert.Equal(t, "export the selected key (sec)",
		ExportKeys{KeyType: keyring.Secret, Patterns: []string{"x"}}.Describe())
	assert.Equal(t, "enable armored output", Set{Option: "armor", Value: "true"}.Describe())
	assert.Equal(t, "disable armored output", Set{Option: "armor", Value: "false"}.Describe())
	assert.Equal(t, "import key(s)", Set{Option: "prompt", Value: ":import "}.Describe())
	assert.Equal(t, "switch to visual mode", SwitchMode{Mode: ModeVisual}.Describe())
	assert.Equal(t, "copy key fingerprint", Copy{Selection: SelectionKeyFingerprint}.Describe())
	assert.Equal(t, "delete the selected key (pub)", DeleteKey{KeyType: keyring.Public}.Describe())
	assert.Equal(t, "close", Confirm{Command: None{}}.Describe())
}
