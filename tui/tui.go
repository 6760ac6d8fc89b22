package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keywarden/keywarden/internal/clipboard"
	"github.com/keywarden/keywarden/internal/config"
	"github.com/keywarden/keywarden/internal/keyring"
)

type screen int

const (
	screenSplash screen = iota
	screenKeys
	screenHelp
)

type switchScreenMsg struct {
	target screen
}

// MainModel routes between the splash, keys and help screens.
type MainModel struct {
	currentScreen screen
	width         int
	height        int
	splash        SplashModel
	keys          KeysModel
	help          HelpModel
}

// NewMainModel wires the screens around the given keyring backend.
func NewMainModel(ring keyring.Keyring, cfg *config.Config) (MainModel, error) {
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return MainModel{}, err
	}

	keys := NewKeysModel(ring, clipboard.System{}, cfg, bindings)
	if history, err := loadHistory(); err == nil {
		keys.prompt.History = history
	}

	initial := screenSplash
	if !cfg.General.Splash {
		initial = screenKeys
	}

	return MainModel{
		currentScreen: initial,
		splash:        NewSplashModel(),
		keys:          keys,
		help:          NewHelpModel(),
	}, nil
}

func (m MainModel) Init() tea.Cmd {
	if m.currentScreen == screenSplash {
		return tea.Batch(m.splash.Init(), m.keys.Init())
	}
	return m.keys.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splash, _ = m.splash.Update(msg)
		m.keys, _ = m.keys.Update(msg)
		m.help, _ = m.help.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case switchScreenMsg:
		m.currentScreen = msg.target
		return m, nil

	case keysLoadedMsg, opDoneMsg, editorDoneMsg, promptTickMsg:
		// Background results always reach the keys screen, even while
		// the splash or help screen is up.
		var cmd tea.Cmd
		m.keys, cmd = m.keys.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case screenKeys:
		m.keys, cmd = m.keys.Update(msg)
	case screenHelp:
		m.help, cmd = m.help.Update(msg)
	}

	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case screenSplash:
		return m.splash.View()
	case screenKeys:
		return m.keys.View()
	case screenHelp:
		return m.help.View()
	default:
		return ""
	}
}

// History exposes the prompt history for persistence on shutdown.
func (m MainModel) History() []string {
	return m.keys.prompt.History
}
