package prompt

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keywarden/keywarden/internal/command"
)

func TestPromptInput(t *testing.T) {
	p := New()
	p.EnableCommandInput()
	assert.True(t, p.IsCommandInputEnabled())
	assert.Equal(t, ":", p.Text)

	// Switching to search keeps the typed text.
	p.Text = ":expo"
	p.EnableSearch()
	assert.True(t, p.IsSearchEnabled())
	assert.Equal(t, "/expo", p.Text)
	assert.True(t, p.IsEnabled())
}

func TestPromptOutput(t *testing.T) {
	p := New()
	p.SetOutput(command.OutputSuccess, "Test")
	assert.Equal(t, "Test", p.Text)
	assert.Equal(t, command.OutputSuccess, p.OutputType)
	assert.False(t, p.Clock.IsZero())
	assert.False(t, p.IsEnabled())

	assert.False(t, p.Expired(p.Clock.Add(MessageDuration)))
	assert.True(t, p.Expired(p.Clock.Add(MessageDuration+time.Millisecond)))

	// Enabling input after output discards the expired text.
	p.EnableCommandInput()
	assert.Equal(t, ":", p.Text)

	p.Clear()
	assert.Equal(t, "", p.Text)
	assert.True(t, p.Clock.IsZero())
	assert.Equal(t, command.OutputNone, p.OutputType)
}

func TestPromptConfirmation(t *testing.T) {
	p := New()
	p.SetCommand(command.DeleteKey{KeyID: "0xTEST"})
	assert.Equal(t, "press 'y' to delete the selected key (pub)", p.Text)
	assert.Equal(t, command.OutputAction, p.OutputType)
	assert.Equal(t, command.DeleteKey{KeyID: "0xTEST"}, p.Command)
	assert.False(t, p.IsEnabled())

	p.Clear()
	assert.Nil(t, p.Command)
}

func TestPromptHistory(t *testing.T) {
	p := New()
	p.History = []string{"0", "1", "2"}
	for i := 0; i < len(p.History); i++ {
		p.Previous()
		assert.Equal(t, strconv.Itoa(len(p.History)-i-1), p.Text)
	}
	// Walking back past the oldest entry stays put.
	p.Previous()
	assert.Equal(t, "0", p.Text)

	for i := 1; i < len(p.History); i++ {
		p.Next()
		assert.Equal(t, strconv.Itoa(i), p.Text)
	}
	// Moving past the newest entry resets to a bare prefix.
	p.Next()
	assert.Equal(t, ":", p.Text)
	assert.Equal(t, 0, p.HistoryIndex)

	// Next without a selection is a no-op.
	p.Text = ":x"
	p.Next()
	assert.Equal(t, ":x", p.Text)
}
