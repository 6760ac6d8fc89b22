package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splashTickMsg time.Time

// SplashModel displays the animated key splash screen.
type SplashModel struct {
	frame  int
	ticks  int
	width  int
	height int
}

func NewSplashModel() SplashModel {
	return SplashModel{}
}

func (m SplashModel) Init() tea.Cmd {
	return splashTickCmd()
}

func splashTickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

func (m SplashModel) Update(msg tea.Msg) (SplashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case splashTickMsg:
		m.ticks++
		if m.ticks >= 6 {
			return m, func() tea.Msg { return switchScreenMsg{target: screenKeys} }
		}
		if m.frame < len(splashFadeStyles)-1 {
			m.frame++
		}
		return m, splashTickCmd()

	case tea.KeyMsg:
		return m, func() tea.Msg { return switchScreenMsg{target: screenKeys} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m SplashModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	art := splashFadeStyles[m.frame].Render(keyArt)
	brand := brandStyle.Render("k  e  y  w  a  r  d  e  n")
	content := lipgloss.JoinVertical(lipgloss.Center, art, "", brand)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
