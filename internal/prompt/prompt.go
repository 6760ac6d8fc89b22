// Package prompt implements the status line at the bottom of the
// interface: command input, live search, confirmation of destructive
// commands and transient output messages.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keywarden/keywarden/internal/command"
)

const (
	// CommandPrefix starts command input.
	CommandPrefix = ':'
	// SearchPrefix starts search input.
	SearchPrefix = '/'
)

// MessageDuration is how long output messages stay visible.
const MessageDuration = time.Second

// Prompt handles user input, shows command output and asks for
// confirmation before destructive commands run.
type Prompt struct {
	// Text is the input/output text including the prefix.
	Text string
	// OutputType is the severity of the shown output.
	OutputType command.OutputType
	// Clock tracks how long the current output has been shown. A zero
	// clock means no output is pending expiry.
	Clock time.Time
	// Command is the pending command awaiting confirmation.
	Command command.Command
	// History holds previously submitted command texts.
	History []string
	// HistoryIndex is the offset of the selected history entry,
	// counted from the newest entry. Zero means no selection.
	HistoryIndex int
}

// New returns an idle prompt.
func New() *Prompt {
	return &Prompt{}
}

// enable switches the prompt into input state with the given prefix.
// In-progress text is kept and re-prefixed so Tab can toggle between
// command input and search without losing the typed text; expired
// output is discarded instead.
func (p *Prompt) enable(prefix rune) {
	if p.Text == "" || !p.Clock.IsZero() {
		p.Text = string(prefix)
	} else {
		p.Text = string(prefix) + p.Text[1:]
	}
	p.OutputType = command.OutputNone
	p.Clock = time.Time{}
	p.Command = nil
	p.HistoryIndex = 0
}

// EnableCommandInput switches to command input.
func (p *Prompt) EnableCommandInput() {
	p.enable(CommandPrefix)
}

// EnableSearch switches to search input.
func (p *Prompt) EnableSearch() {
	p.enable(SearchPrefix)
}

// IsEnabled reports whether the prompt is accepting input.
func (p *Prompt) IsEnabled() bool {
	return p.Text != "" && p.Clock.IsZero() && p.Command == nil
}

// IsCommandInputEnabled reports whether the text is command input.
func (p *Prompt) IsCommandInputEnabled() bool {
	return strings.HasPrefix(p.Text, string(CommandPrefix))
}

// IsSearchEnabled reports whether the text is a search query.
func (p *Prompt) IsSearchEnabled() bool {
	return strings.HasPrefix(p.Text, string(SearchPrefix))
}

// SetOutput shows an output message and starts the expiry clock. The
// message is also written to the log at a level matching its severity.
func (p *Prompt) SetOutput(outputType command.OutputType, message string) {
	logrus.StandardLogger().Log(outputType.LogLevel(), message)
	p.OutputType = outputType
	p.Text = message
	p.Clock = time.Now()
}

// SetCommand asks for confirmation of the given command.
func (p *Prompt) SetCommand(cmd command.Command) {
	p.Text = fmt.Sprintf("press 'y' to %s", cmd.Describe())
	p.OutputType = command.OutputAction
	p.Command = cmd
	p.Clock = time.Now()
}

// Expired reports whether the output message has outlived its display
// duration at the given time.
func (p *Prompt) Expired(now time.Time) bool {
	return !p.Clock.IsZero() && now.Sub(p.Clock) > MessageDuration
}

// Next selects the next (more recent) history entry. Moving past the
// newest entry resets the text to a bare command prefix.
func (p *Prompt) Next() {
	switch {
	case p.HistoryIndex > 1:
		p.HistoryIndex--
		p.Text = p.History[len(p.History)-p.HistoryIndex]
	case p.HistoryIndex == 1:
		p.Text = string(CommandPrefix)
		p.HistoryIndex = 0
	}
}

// Previous selects the previous (older) history entry.
func (p *Prompt) Previous() {
	if len(p.History) > p.HistoryIndex {
		p.Text = p.History[len(p.History)-(p.HistoryIndex+1)]
		p.HistoryIndex++
	}
}

// Clear resets the prompt to its idle state.
func (p *Prompt) Clear() {
	p.Text = ""
	p.OutputType = command.OutputNone
	p.Clock = time.Time{}
	p.Command = nil
	p.HistoryIndex = 0
}
