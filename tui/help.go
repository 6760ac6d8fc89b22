package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/keywarden/keywarden/internal/keymap"
	"github.com/keywarden/keywarden/internal/widget"
)

// HelpModel shows the key binding reference: the bindings on the left,
// the description of the selected one on the right.
type HelpModel struct {
	width    int
	height   int
	bindings *widget.StatefulList[keymap.KeyBinding]
	renderer *glamour.TermRenderer
}

func NewHelpModel() HelpModel {
	return HelpModel{
		bindings: widget.NewStatefulList(keymap.KeyBindings),
	}
}

func (m HelpModel) Init() tea.Cmd {
	return nil
}

func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer = nil
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.bindings.Next()
		case "k", "up":
			m.bindings.Previous()
		case "g", "home":
			m.bindings.Selected = 0
		case "G", "end":
			m.bindings.Selected = len(m.bindings.Items) - 1
		case "q", "esc", "?", "enter":
			return m, func() tea.Msg { return switchScreenMsg{target: screenKeys} }
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m HelpModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerStyle.Render(" help ") +
		statusBarStyle.Render("j/k: navigate | esc: back")

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	list := m.viewList(listWidth, bodyHeight)
	desc := m.viewDescription(m.width-listWidth-1, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", desc)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m HelpModel) viewList(width, height int) string {
	// Each entry takes two lines; window around the selection.
	perEntry := 3
	visible := height / perEntry
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.bindings.Selected >= visible {
		start = m.bindings.Selected - visible + 1
	}

	var b strings.Builder
	for i := start; i < len(m.bindings.Items) && i < start+visible; i++ {
		binding := m.bindings.Items[i]
		keyStyle, actionStyle := helpKeyStyle, optionNormalStyle
		if i == m.bindings.Selected {
			keyStyle, actionStyle = optionSelectedStyle, optionSelectedStyle
		}
		lines := strings.SplitN(binding.Title(), "\n", 2)
		b.WriteString(keyStyle.Render(lines[0]))
		b.WriteString("\n")
		if len(lines) > 1 {
			b.WriteString(actionStyle.Render(lines[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *HelpModel) viewDescription(width, height int) string {
	binding, ok := m.bindings.SelectedItem()
	if !ok {
		return ""
	}

	// Command lines are styled directly; prose goes through glamour.
	var b strings.Builder
	var commands []string
	for _, line := range binding.DescriptionLines() {
		if strings.HasPrefix(line, ":") {
			commands = append(commands, helpCommandStyle.Render(line))
			continue
		}
		b.WriteString(line + "\n\n")
	}

	rendered := b.String()
	if r := m.descriptionRenderer(width); r != nil {
		if out, err := r.Render(rendered); err == nil {
			rendered = out
		}
	}
	text := strings.TrimSpace(rendered)
	if len(commands) > 0 {
		text += "\n\n" + strings.Join(commands, "\n")
	}
	box := optionsBorderStyle.Width(width - 4).Render(strings.TrimSpace(text))
	return lipgloss.NewStyle().Width(width).Height(height).Render(box)
}

func (m *HelpModel) descriptionRenderer(width int) *glamour.TermRenderer {
	if m.renderer != nil {
		return m.renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-6),
	)
	if err != nil {
		return nil
	}
	m.renderer = r
	return r
}
