package tui

import _ "embed"

// keyArt is the ASCII art key on the splash screen. The splash ticks
// fade it in through splashFadeStyles.
//
//go:embed key.txt
var keyArt string
