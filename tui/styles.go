package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/keywarden/keywarden/internal/command"
)

// Colors
var (
	colorAmber   = lipgloss.Color("#D7AF5F")
	colorDarkBg  = lipgloss.Color("#1C1C1C")
	colorLightFg = textColor()
	colorMuted   = lipgloss.Color("#808080")
	colorRed     = lipgloss.Color("#D75F5F")
	colorGreen   = lipgloss.Color("#87AF87")
	colorYellow  = lipgloss.Color("#D7D787")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorAmber).
			Foreground(colorDarkBg).
			Bold(true).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	rowNormalStyle = lipgloss.NewStyle().
			Foreground(colorLightFg)

	successMsgStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warningMsgStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	actionMsgStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	optionSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	optionNormalStyle = lipgloss.NewStyle().
				Foreground(colorLightFg)

	optionsBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAmber).
				Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	helpCommandStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// splashFadeStyles brighten the splash art one step per tick.
	splashFadeStyles = [4]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#949494")),
		lipgloss.NewStyle().Foreground(colorAmber),
	}
)

// textColor picks the plain text color for the terminal background.
func textColor() lipgloss.Color {
	if termenv.HasDarkBackground() {
		return lipgloss.Color("#E4E4E4")
	}
	return lipgloss.Color("#262626")
}

// outputStyle maps a prompt severity to its render style.
func outputStyle(outputType command.OutputType) lipgloss.Style {
	switch outputType {
	case command.OutputSuccess:
		return successMsgStyle
	case command.OutputWarning:
		return warningMsgStyle
	case command.OutputFailure:
		return errorMsgStyle
	default:
		return actionMsgStyle
	}
}
