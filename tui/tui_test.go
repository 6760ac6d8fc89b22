package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keywarden/keywarden/internal/config"
	"github.com/keywarden/keywarden/internal/keyring"
)

func newTestMainModel(t *testing.T, splash bool) MainModel {
	t.Helper()
	ring := &fakeKeyring{
		keys: map[keyring.KeyType][]*keyring.Key{
			keyring.Public: testKeys(keyring.Public, "AAAA11112222"),
		},
	}
	cfg := config.Default()
	cfg.General.Splash = splash
	m, err := NewMainModel(ring, cfg)
	if err != nil {
		t.Fatalf("NewMainModel: %v", err)
	}
	return m
}

func TestMainModelStartsOnKeysWithoutSplash(t *testing.T) {
	m := newTestMainModel(t, false)
	if m.currentScreen != screenKeys {
		t.Errorf("expected keys screen, got %d", m.currentScreen)
	}
}

func TestMainModelStartsOnSplash(t *testing.T) {
	m := newTestMainModel(t, true)
	if m.currentScreen != screenSplash {
		t.Errorf("expected splash screen, got %d", m.currentScreen)
	}
}

func TestMainModelInit(t *testing.T) {
	m := newTestMainModel(t, false)
	if m.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestMainModelWindowSize(t *testing.T) {
	m := newTestMainModel(t, false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	result := updated.(MainModel)

	if result.width != 80 || result.height != 24 {
		t.Errorf("expected 80x24, got %dx%d", result.width, result.height)
	}
}

func TestMainModelCtrlCQuits(t *testing.T) {
	m := newTestMainModel(t, false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected Quit command from ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestSwitchScreenToHelp(t *testing.T) {
	m := newTestMainModel(t, false)
	updated, _ := m.Update(switchScreenMsg{target: screenHelp})
	result := updated.(MainModel)

	if result.currentScreen != screenHelp {
		t.Errorf("expected help screen, got %d", result.currentScreen)
	}
}

func TestBackgroundMessagesReachKeysScreen(t *testing.T) {
	m := newTestMainModel(t, true)

	keys := testKeys(keyring.Public, "DDDD77778888")
	updated, _ := m.Update(keysLoadedMsg{keyType: keyring.Public, keys: keys})
	result := updated.(MainModel)

	if result.currentScreen != screenSplash {
		t.Error("expected to stay on splash")
	}
	if len(result.keys.tables[keyring.Public].Items) != 1 {
		t.Error("expected keys loaded behind the splash")
	}
}
