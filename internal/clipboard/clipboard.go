// Package clipboard wraps the system clipboard behind a small
// interface so copy/paste can be faked in tests.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard reads and writes the system clipboard. Both operations are
// fallible; failures surface as prompt messages and never stop the
// application.
type Clipboard interface {
	Get() (string, error)
	Set(text string) error
}

// System is the OS clipboard.
type System struct{}

// New returns the system clipboard.
func New() System {
	return System{}
}

func (System) Get() (string, error) {
	return clipboard.ReadAll()
}

func (System) Set(text string) error {
	return clipboard.WriteAll(text)
}
