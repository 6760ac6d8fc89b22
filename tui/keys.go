package tui

// Key bindings reference:
//
// Global:
//   ctrl+c    Quit the application
//
// Splash screen:
//   any key   Skip to the keys table
//
// Keys screen:
//   hjkl/arrows  Navigate the table
//   alt+<nav>    Scroll the selected row
//   o/space      Show the options menu
//   :            Command prompt
//   /            Search
//   ?            Show help
//   q/esc        Quit
//
// The full binding table lives in internal/keymap; ':' commands are
// documented on the help screen.
//
// Help screen:
//   j/down    Next binding
//   k/up      Previous binding
//   esc/q     Back to the keys table
