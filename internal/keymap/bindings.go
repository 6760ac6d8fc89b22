package keymap

import "strings"

// KeyBinding documents one built-in binding for the help screen.
type KeyBinding struct {
	// Key lists the bound keys, comma separated.
	Key string
	// Action is a brief description of what the binding does.
	Action string
	// Description is the full help text. Lines starting with ':' are
	// commands and rendered highlighted.
	Description string
}

// Title renders the key list and action for the help list.
func (b KeyBinding) Title() string {
	keys := ""
	for _, key := range strings.Split(b.Key, ",") {
		keys += "[" + key + "] "
	}
	return keys + "\n └─" + b.Action
}

// DescriptionLines returns the trimmed help text lines.
func (b KeyBinding) DescriptionLines() []string {
	var lines []string
	for _, line := range strings.Split(b.Description, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// KeyBindings is the built-in binding reference shown on the help
// screen.
var KeyBindings = []KeyBinding{
	{
		Key:    "?",
		Action: "show help",
		Description: `Use arrow keys / hjkl to navigate through the key bindings.
			Corresponding commands and additional information will be shown here.
			:help`,
	},
	{
		Key:    "o,space,enter",
		Action: "show options",
		Description: `Shows the options menu for the current tab.
			:options`,
	},
	{
		Key:    "hjkl,arrows,pgkeys",
		Action: "navigate",
		Description: `Scrolls the current widget or selects the next/previous tab.
			A-<key>: scroll the table rows
			C-<key>,pgup,pgdown: scroll to top/bottom
			:scroll (row) up/down/left/right <amount>`,
	},
	{
		Key:    "n",
		Action: "switch to normal mode",
		Description: `Resets the application mode.
			:normal`,
	},
	{
		Key:    "v",
		Action: "switch to visual mode",
		Description: `Disables the mouse capture.
			:visual`,
	},
	{
		Key:    "c",
		Action: "switch to copy mode",
		Description: `x: Copy the exported key
			i: Copy the key id
			f: Copy the key fingerprint
			u: Copy the user id
			1,2: Copy the content of the row
			:copy`,
	},
	{
		Key:         "p,C-v",
		Action:      "paste from clipboard",
		Description: ":paste",
	},
	{
		Key:    "x",
		Action: "export key",
		Description: `Exports the selected key to the output directory.
			:export <pub/sec> <keyids>`,
	},
	{
		Key:    "s",
		Action: "sign key",
		Description: `Signs the key with the default secret key.
			Same as 'gpg --sign-key'
			:sign <keyid>`,
	},
	{
		Key:    "e",
		Action: "edit key",
		Description: `Presents a menu for key management.
			Same as 'gpg --edit-key'
			:edit <keyid>`,
	},
	{
		Key:    "i",
		Action: "import key(s)",
		Description: `Imports the keys from given files.
			:import <file1> <file2>`,
	},
	{
		Key:    "f",
		Action: "receive key",
		Description: `Imports the keys with the given key IDs from the keyserver.
			Same as 'gpg --receive-keys'
			:receive <keyids>`,
	},
	{
		Key:    "u",
		Action: "send key",
		Description: `Sends the key to the default keyserver.
			:send <keyid>`,
	},
	{
		Key:    "g",
		Action: "generate key",
		Description: `Generates a new key pair with dialogs for all options.
			Same as 'gpg --full-generate-key'
			:generate`,
	},
	{
		Key:    "d,backspace",
		Action: "delete key",
		Description: `Removes the public/secret key from the keyring.
			:delete <pub/sec> <keyid>`,
	},
	{
		Key:    "C-r",
		Action: "refresh keys",
		Description: `Requests updates for keys on the local keyring.
			Same as 'gpg --refresh-keys'
			:refresh keys`,
	},
	{
		Key:    "a",
		Action: "toggle armored output",
		Description: `Toggles ASCII armored output.
			The default is to create the binary OpenPGP format.
			:set armor <true/false>`,
	},
	{
		Key:    "1,2,3",
		Action: "set detail level",
		Description: `1: Minimum
			2: Standard
			3: Full
			:set detail <level>`,
	},
	{
		Key:         "t,tab",
		Action:      "toggle detail (all/selected)",
		Description: ":toggle detail (all)",
	},
	{
		Key:         "`",
		Action:      "toggle table margin",
		Description: ":set margin <0/1>",
	},
	{
		Key:         "m",
		Action:      "toggle table size",
		Description: ":minimize / :maximize",
	},
	{
		Key:         "C-s",
		Action:      "toggle style",
		Description: ":set colored <true/false>",
	},
	{
		Key:         "/",
		Action:      "search",
		Description: ":search <query>",
	},
	{
		Key:         ":",
		Action:      "run command",
		Description: "Switches to command mode for running commands.",
	},
	{
		Key:         "r,f5",
		Action:      "refresh application",
		Description: ":refresh",
	},
	{
		Key:         "q,C-c/d,escape",
		Action:      "quit application",
		Description: ":quit",
	},
}
