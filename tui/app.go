package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/keywarden/keywarden/internal/clipboard"
	"github.com/keywarden/keywarden/internal/command"
	"github.com/keywarden/keywarden/internal/config"
	"github.com/keywarden/keywarden/internal/keymap"
	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/internal/prompt"
	"github.com/keywarden/keywarden/internal/widget"
)

const opTimeout = 30 * time.Second

// minimizeThreshold is the terminal width below which the table
// auto-minimizes.
const minimizeThreshold = 90

type keysLoadedMsg struct {
	keyType keyring.KeyType
	keys    []*keyring.Key
	err     error
}

type opDoneMsg struct {
	outputType command.OutputType
	message    string
	reload     bool
}

type editorDoneMsg struct{ err error }

type promptTickMsg time.Time

// optionItem is one entry of the options menu.
type optionItem struct {
	label string
	cmd   command.Command
}

// KeysModel is the main screen: the key table for the active tab, the
// prompt line and the options overlay.
type KeysModel struct {
	width  int
	height int

	ring     keyring.Keyring
	clip     clipboard.Clipboard
	resolver *keymap.Resolver

	mode          command.Mode
	tab           keyring.KeyType
	tables        map[keyring.KeyType]*widget.StatefulTable[*keyring.Key]
	size          widget.TableSize
	autoMinimized bool
	detail        keyring.Detail
	margin        int

	colored  bool
	tickRate time.Duration

	prompt      *prompt.Prompt
	input       textinput.Model
	options     *widget.StatefulList[optionItem]
	showOptions bool
}

// NewKeysModel builds the main screen around the given key store.
func NewKeysModel(ring keyring.Keyring, clip clipboard.Clipboard, cfg *config.Config, bindings []keymap.CustomKeyBinding) KeysModel {
	ti := textinput.New()
	ti.Prompt = string(prompt.CommandPrefix)
	ti.CharLimit = 256

	return KeysModel{
		ring:     ring,
		clip:     clip,
		resolver: keymap.NewResolver(bindings),
		tab:      keyring.Public,
		tables: map[keyring.KeyType]*widget.StatefulTable[*keyring.Key]{
			keyring.Public: widget.NewStatefulTable[*keyring.Key](nil),
			keyring.Secret: widget.NewStatefulTable[*keyring.Key](nil),
		},
		detail:   cfg.Detail(),
		colored:  cfg.General.Colored,
		tickRate: cfg.TickRate(),
		prompt:   prompt.New(),
		input:    ti,
	}
}

func (m KeysModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadKeys(keyring.Public),
		m.loadKeys(keyring.Secret),
		m.promptTick(),
		textinput.Blink,
	)
}

func (m KeysModel) promptTick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return promptTickMsg(t)
	})
}

func (m KeysModel) loadKeys(keyType keyring.KeyType) tea.Cmd {
	ring := m.ring
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		keys, err := ring.List(ctx, keyType, nil)
		return keysLoadedMsg{keyType: keyType, keys: keys, err: err}
	}
}

// opCmd runs a keyring operation off the update loop and reports the
// outcome as a prompt message.
func (m KeysModel) opCmd(success string, reload bool, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			return opDoneMsg{outputType: command.OutputFailure, message: err.Error()}
		}
		return opDoneMsg{outputType: command.OutputSuccess, message: success, reload: reload}
	}
}

func (m KeysModel) table() *widget.StatefulTable[*keyring.Key] {
	return m.tables[m.tab]
}

func (m KeysModel) selectedKey() *keyring.Key {
	key, ok := m.table().SelectedItem()
	if !ok {
		return nil
	}
	return key
}

func (m KeysModel) context() keymap.Context {
	ctx := keymap.Context{
		Mode:         m.mode,
		KeyType:      m.tab,
		OptionsShown: m.showOptions,
		Minimized:    m.size == widget.SizeMinimized,
		Armored:      m.ring.Armor(),
		Colored:      m.colored,
	}
	if key := m.selectedKey(); key != nil {
		ctx.SelectedKeyID = key.ID()
	}
	return ctx
}

func (m KeysModel) Update(msg tea.Msg) (KeysModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 4
		if m.width < minimizeThreshold {
			if m.size == widget.SizeNormal {
				m.size = widget.SizeMinimized
				m.autoMinimized = true
			}
		} else if m.autoMinimized {
			m.size = widget.SizeNormal
			m.autoMinimized = false
		}
		return m, nil

	case promptTickMsg:
		if m.prompt.Expired(time.Time(msg)) {
			m.prompt.Clear()
		}
		return m, m.promptTick()

	case keysLoadedMsg:
		if msg.err != nil {
			m.prompt.SetOutput(command.OutputFailure, msg.err.Error())
			return m, nil
		}
		for _, key := range msg.keys {
			key.Detail = m.detail
		}
		m.tables[msg.keyType].SetItems(msg.keys)
		return m, nil

	case opDoneMsg:
		m.prompt.SetOutput(msg.outputType, msg.message)
		if msg.reload {
			return m, tea.Batch(m.loadKeys(keyring.Public), m.loadKeys(keyring.Secret))
		}
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			m.prompt.SetOutput(command.OutputFailure, msg.err.Error())
			return m, nil
		}
		return m, tea.Batch(m.loadKeys(keyring.Public), m.loadKeys(keyring.Secret))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m KeysModel) handleKey(msg tea.KeyMsg) (KeysModel, tea.Cmd) {
	if m.prompt.IsEnabled() {
		return m.handleInputKey(msg)
	}
	if m.prompt.Command != nil {
		return m.handleConfirmKey(msg)
	}
	if m.showOptions {
		if model, cmd, handled := m.handleOptionsKey(msg); handled {
			return model, cmd
		}
	}

	chord, ok := chordFromKey(msg)
	if !ok {
		return m, nil
	}
	return m.runCommand(m.resolver.Resolve(chord, m.context()))
}

// handleInputKey feeds key presses into the prompt while command or
// search input is active.
func (m KeysModel) handleInputKey(msg tea.KeyMsg) (KeysModel, tea.Cmd) {
	search := m.prompt.IsSearchEnabled()

	switch msg.Type {
	case tea.KeyEsc:
		m.prompt.Clear()
		m.input.Reset()
		m.input.Blur()
		if search {
			m.table().ResetState()
		}
		return m, nil

	case tea.KeyTab:
		// Toggle between command input and search, keeping the text.
		if search {
			m.prompt.EnableCommandInput()
		} else {
			m.prompt.EnableSearch()
			m.applySearch()
		}
		m.syncInput()
		return m, nil

	case tea.KeyEnter:
		if search {
			m.prompt.Clear()
			m.input.Reset()
			m.input.Blur()
			m.table().ResetState()
			return m, nil
		}
		text := m.prompt.Text
		m.prompt.History = append(m.prompt.History, text)
		cmd, err := command.Parse(text)
		if err != nil {
			m.prompt.SetOutput(command.OutputFailure, err.Error())
			m.input.Blur()
			return m, nil
		}
		m.prompt.Clear()
		m.input.Reset()
		m.input.Blur()
		return m.runCommand(cmd)

	case tea.KeyUp:
		if !search {
			m.prompt.Previous()
			m.syncInput()
		}
		return m, nil

	case tea.KeyDown:
		if !search {
			m.prompt.Next()
			m.syncInput()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.prompt.Text = m.input.Prompt + m.input.Value()
	if m.prompt.IsSearchEnabled() {
		m.applySearch()
	}
	return m, cmd
}

// handleConfirmKey resolves a pending confirmation.
func (m KeysModel) handleConfirmKey(msg tea.KeyMsg) (KeysModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pending := m.prompt.Command
		m.prompt.Clear()
		return m.runCommand(pending)
	case "n", "N", "esc":
		m.prompt.Clear()
		return m, nil
	}
	return m, nil
}

// handleOptionsKey covers selecting and closing the menu; navigation
// falls through to the resolver, which routes scrolls back to the menu
// while it is open.
func (m KeysModel) handleOptionsKey(msg tea.KeyMsg) (KeysModel, tea.Cmd, bool) {
	switch msg.String() {
	case "enter", " ":
		item, ok := m.options.SelectedItem()
		m.showOptions = false
		if !ok {
			return m, nil, true
		}
		model, cmd := m.runCommand(item.cmd)
		return model, cmd, true
	case "esc", "q", "o":
		m.showOptions = false
		return m, nil, true
	}
	return m, nil, false
}

// syncInput mirrors the prompt text into the input widget after a
// history move or a sigil toggle.
func (m *KeysModel) syncInput() {
	text := m.prompt.Text
	if text == "" {
		m.input.Reset()
		return
	}
	m.input.Prompt = string(text[0])
	m.input.SetValue(text[1:])
	m.input.CursorEnd()
	m.input.Focus()
}

// applySearch live-filters the table on the current search term.
func (m *KeysModel) applySearch() {
	term := strings.ToLower(strings.TrimPrefix(m.prompt.Text, string(prompt.SearchPrefix)))
	table := m.table()
	if term == "" {
		table.Filter(table.DefaultItems)
		return
	}
	minimized := m.size == widget.SizeMinimized
	var matched []*keyring.Key
	for _, key := range table.DefaultItems {
		haystack := strings.ToLower(
			strings.Join(key.SubkeyInfo(minimized), "\n") + "\n" +
				strings.Join(key.UserInfo(minimized), "\n"),
		)
		if strings.Contains(haystack, term) {
			matched = append(matched, key)
		}
	}
	table.Filter(matched)
}

func (m KeysModel) runCommand(cmd command.Command) (KeysModel, tea.Cmd) {
	switch cmd := cmd.(type) {
	case nil, command.None:
		return m, nil

	case command.Confirm:
		if cmd.Command == nil {
			return m, nil
		}
		if _, none := cmd.Command.(command.None); none {
			return m, nil
		}
		m.prompt.SetCommand(cmd.Command)
		return m, nil

	case command.ShowOutput:
		m.prompt.SetOutput(cmd.Type, cmd.Message)
		return m, nil

	case command.ShowOptions:
		m.options = widget.NewStatefulList(m.optionItems())
		m.showOptions = true
		return m, nil

	case command.ShowHelp:
		return m, func() tea.Msg { return switchScreenMsg{target: screenHelp} }

	case command.ListKeys:
		m.tab = cmd.KeyType
		return m, m.loadKeys(cmd.KeyType)

	case command.ImportKeys:
		if len(cmd.Paths) == 0 {
			m.prompt.SetOutput(command.OutputFailure, "no files given")
			return m, nil
		}
		return m, m.opCmd("imported key(s) from file(s)", true, func(ctx context.Context) error {
			return m.ring.Import(ctx, cmd.Paths)
		})

	case command.ExportKeys:
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			defer cancel()
			path, err := m.ring.Export(ctx, cmd.KeyType, cmd.Patterns, cmd.Subkeys)
			if err != nil {
				return opDoneMsg{outputType: command.OutputFailure, message: err.Error()}
			}
			return opDoneMsg{outputType: command.OutputSuccess, message: "export: " + path}
		}

	case command.DeleteKey:
		return m, m.opCmd("deleted "+cmd.KeyID, true, func(ctx context.Context) error {
			return m.ring.Delete(ctx, cmd.KeyType, cmd.KeyID)
		})

	case command.SignKey:
		return m, m.opCmd("signed "+cmd.KeyID, true, func(ctx context.Context) error {
			return m.ring.Sign(ctx, cmd.KeyID)
		})

	case command.EditKey:
		return m, tea.ExecProcess(m.ring.EditCommand(cmd.KeyID), func(err error) tea.Msg {
			return editorDoneMsg{err: err}
		})

	case command.SendKey:
		return m, m.opCmd("sent "+cmd.KeyID+" to the keyserver", false, func(ctx context.Context) error {
			return m.ring.Send(ctx, cmd.KeyID)
		})

	case command.ReceiveKeys:
		return m, m.opCmd("received key(s) from the keyserver", true, func(ctx context.Context) error {
			return m.ring.Receive(ctx, cmd.KeyIDs)
		})

	case command.GenerateKey:
		return m, tea.ExecProcess(m.ring.GenerateCommand(), func(err error) tea.Msg {
			return editorDoneMsg{err: err}
		})

	case command.Copy:
		return m.copySelection(cmd.Selection)

	case command.ToggleDetail:
		if cmd.All {
			m.detail.Increase()
			for _, table := range m.tables {
				for _, key := range table.DefaultItems {
					key.Detail = m.detail
				}
			}
		} else if key := m.selectedKey(); key != nil {
			key.Detail.Increase()
		}
		return m, nil

	case command.Scroll:
		return m.scroll(cmd), nil

	case command.Set:
		return m.setOption(cmd.Option, cmd.Value)

	case command.Get:
		return m.getOption(cmd.Option), nil

	case command.SwitchMode:
		m.mode = cmd.Mode
		m.prompt.SetOutput(command.OutputAction, cmd.Mode.String())
		return m, nil

	case command.Paste:
		text, err := m.clip.Get()
		if err != nil {
			m.prompt.SetOutput(command.OutputFailure, "clipboard: "+err.Error())
			return m, nil
		}
		m.prompt.EnableCommandInput()
		m.prompt.Text = string(prompt.CommandPrefix) + text
		m.syncInput()
		return m, textinput.Blink

	case command.EnableInput:
		m.prompt.EnableCommandInput()
		m.syncInput()
		return m, textinput.Blink

	case command.Search:
		m.prompt.EnableSearch()
		m.prompt.Text = string(prompt.SearchPrefix) + cmd.Query
		m.syncInput()
		m.applySearch()
		return m, textinput.Blink

	case command.NextTab, command.PreviousTab:
		if m.tab == keyring.Public {
			m.tab = keyring.Secret
		} else {
			m.tab = keyring.Public
		}
		return m, nil

	case command.Minimize:
		m.size = widget.SizeMinimized
		m.autoMinimized = false
		return m, nil

	case command.Maximize:
		m.size = widget.SizeMaximized
		m.autoMinimized = false
		return m, nil

	case command.Refresh:
		m.prompt.Clear()
		m.showOptions = false
		m.mode = command.ModeNormal
		for _, table := range m.tables {
			table.ResetState()
		}
		return m, tea.Batch(m.loadKeys(keyring.Public), m.loadKeys(keyring.Secret))

	case command.RefreshKeys:
		return m, m.opCmd("refreshed the keyring", true, func(ctx context.Context) error {
			return m.ring.RefreshKeys(ctx)
		})

	case command.Quit:
		return m, tea.Quit
	}
	return m, nil
}

// scroll routes a scroll command to the options menu, the selected row
// or the table selection.
func (m KeysModel) scroll(cmd command.Scroll) KeysModel {
	if cmd.Row {
		m.table().ScrollRow(cmd.Direction)
		return m
	}
	switch cmd.Direction.Kind {
	case widget.ScrollUp:
		if m.showOptions {
			m.options.Previous()
		} else {
			m.table().Previous()
		}
	case widget.ScrollDown:
		if m.showOptions {
			m.options.Next()
		} else {
			m.table().Next()
		}
	case widget.ScrollTop:
		m.table().SelectFirst()
	case widget.ScrollBottom:
		m.table().SelectLast()
	}
	return m
}

func (m KeysModel) setOption(option, value string) (KeysModel, tea.Cmd) {
	switch option {
	case "prompt":
		m.prompt.EnableCommandInput()
		m.prompt.Text = value
		m.syncInput()
		return m, textinput.Blink
	case "mode":
		mode, err := command.ParseMode(value)
		if err != nil {
			m.prompt.SetOutput(command.OutputFailure, "invalid mode")
			return m, nil
		}
		m.mode = mode
		m.prompt.SetOutput(command.OutputSuccess, "mode: "+mode.Name())
		return m, nil
	case "armor":
		armor := value == "true"
		if value != "true" && value != "false" {
			m.prompt.SetOutput(command.OutputFailure, "usage: set armor <true/false>")
			return m, nil
		}
		m.ring.SetArmor(armor)
		m.prompt.SetOutput(command.OutputSuccess, "armor: "+value)
		return m, nil
	case "colored":
		if value != "true" && value != "false" {
			m.prompt.SetOutput(command.OutputFailure, "usage: set colored <true/false>")
			return m, nil
		}
		m.colored = value == "true"
		m.prompt.SetOutput(command.OutputSuccess, "colored: "+value)
		return m, nil
	case "detail":
		detail, err := keyring.ParseDetail(value)
		if err != nil {
			m.prompt.SetOutput(command.OutputFailure, err.Error())
			return m, nil
		}
		m.detail = detail
		for _, table := range m.tables {
			for _, key := range table.DefaultItems {
				key.Detail = detail
			}
		}
		m.prompt.SetOutput(command.OutputSuccess, "detail: "+detail.String())
		return m, nil
	case "margin":
		if value == "toggle" {
			m.margin = 1 - m.margin
		} else if value == "1" {
			m.margin = 1
		} else {
			m.margin = 0
		}
		m.prompt.SetOutput(command.OutputSuccess, fmt.Sprintf("margin: %d", m.margin))
		return m, nil
	}
	m.prompt.SetOutput(command.OutputFailure, "unknown option: "+option)
	return m, nil
}

func (m KeysModel) getOption(option string) KeysModel {
	var value string
	switch option {
	case "mode":
		value = m.mode.Name()
	case "armor":
		value = fmt.Sprintf("%v", m.ring.Armor())
	case "colored":
		value = fmt.Sprintf("%v", m.colored)
	case "detail":
		value = m.detail.String()
	case "margin":
		value = fmt.Sprintf("%d", m.margin)
	default:
		m.prompt.SetOutput(command.OutputFailure, "unknown option: "+option)
		return m
	}
	m.prompt.SetOutput(command.OutputSuccess, option+": "+value)
	return m
}

func (m KeysModel) copySelection(selection command.Selection) (KeysModel, tea.Cmd) {
	key := m.selectedKey()
	if key == nil {
		m.prompt.SetOutput(command.OutputFailure, "no key selected")
		return m, nil
	}
	minimized := m.size == widget.SizeMinimized

	var text string
	switch selection {
	case command.SelectionRow1:
		text = strings.Join(key.SubkeyInfo(minimized), "\n")
	case command.SelectionRow2:
		text = strings.Join(key.UserInfo(minimized), "\n")
	case command.SelectionKeyID:
		text = key.ID()
	case command.SelectionKeyFingerprint:
		text = key.Fingerprint()
	case command.SelectionKeyUserID:
		text = key.PrimaryUserID()
	case command.SelectionKey:
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		data, err := m.ring.ExportBytes(ctx, key.Type, []string{key.ID()})
		if err != nil {
			m.prompt.SetOutput(command.OutputFailure, err.Error())
			return m, nil
		}
		text = string(data)
	}

	if err := m.clip.Set(text); err != nil {
		m.prompt.SetOutput(command.OutputFailure, "clipboard: "+err.Error())
		return m, nil
	}
	m.mode = command.ModeNormal
	m.prompt.SetOutput(command.OutputSuccess, selection.String()+" copied to clipboard")
	return m, nil
}

// optionItems builds the options menu for the current selection.
func (m KeysModel) optionItems() []optionItem {
	sizeCmd := command.Command(command.Minimize{})
	sizeLabel := "minimize the table"
	if m.size == widget.SizeMinimized {
		sizeCmd = command.Maximize{}
		sizeLabel = "maximize the table"
	}
	modeCmd := command.SwitchMode{Mode: command.ModeVisual}
	if m.mode != command.ModeNormal {
		modeCmd = command.SwitchMode{Mode: command.ModeNormal}
	}

	items := []optionItem{
		{label: "show help", cmd: command.ShowHelp{}},
		{label: "refresh application", cmd: command.Refresh{}},
		{label: "refresh the keyring", cmd: command.RefreshKeys{}},
		{label: "generate a new key pair", cmd: command.GenerateKey{}},
		{label: "import key(s)", cmd: command.Set{Option: "prompt", Value: ":import "}},
		{label: "receive key(s)", cmd: command.Set{Option: "prompt", Value: ":receive "}},
		{label: command.ExportKeys{KeyType: m.tab}.Describe(), cmd: command.ExportKeys{KeyType: m.tab}},
		{label: "paste from clipboard", cmd: command.Paste{}},
		{label: "toggle detail (all)", cmd: command.ToggleDetail{All: true}},
		{label: "toggle armored output", cmd: command.Set{Option: "armor", Value: fmt.Sprintf("%v", !m.ring.Armor())}},
		{label: "toggle table margin", cmd: command.Set{Option: "margin", Value: "toggle"}},
		{label: sizeLabel, cmd: sizeCmd},
		{label: modeCmd.Describe(), cmd: modeCmd},
		{label: "quit", cmd: command.Quit{}},
	}
	key := m.selectedKey()
	if key == nil {
		return items
	}
	id := key.ID()
	selected := []optionItem{
		{
			label: command.ExportKeys{KeyType: m.tab, Patterns: []string{id}}.Describe(),
			cmd:   command.ExportKeys{KeyType: m.tab, Patterns: []string{id}},
		},
		{label: "sign the selected key", cmd: command.SignKey{KeyID: id}},
		{label: "edit the selected key", cmd: command.EditKey{KeyID: id}},
		{label: "send the selected key to the keyserver", cmd: command.SendKey{KeyID: id}},
		{
			label: command.DeleteKey{KeyType: m.tab, KeyID: id}.Describe(),
			cmd:   command.Confirm{Command: command.DeleteKey{KeyType: m.tab, KeyID: id}},
		},
		{label: "copy the key ID", cmd: command.Copy{Selection: command.SelectionKeyID}},
		{label: "copy the key fingerprint", cmd: command.Copy{Selection: command.SelectionKeyFingerprint}},
	}
	return append(items, selected...)
}

func (m KeysModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader()
	status := m.renderStatus()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.showOptions {
		body = m.renderOptions(bodyHeight)
	} else {
		body = m.renderTable(bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Width(m.width).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m KeysModel) renderHeader() string {
	title := headerStyle.Render(" keywarden ")

	pubTab := tabInactiveStyle.Render("pub")
	secTab := tabInactiveStyle.Render("sec")
	if m.tab == keyring.Public {
		pubTab = tabActiveStyle.Render("[pub]")
	} else {
		secTab = tabActiveStyle.Render("[sec]")
	}
	tabs := " " + pubTab + " " + secTab

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(tabs)
	if gap < 0 {
		gap = 0
	}
	return title + tabs + strings.Repeat(" ", gap)
}

func (m KeysModel) renderTable(height int) string {
	table := m.table()
	if len(table.Items) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 2).
			Render("No keys found. Press 'g' to generate a key pair or 'i' to import one.")
	}

	minimized := m.size == widget.SizeMinimized
	maxRowHeight := height
	if minimized {
		maxRowHeight = 1
	}

	// First column width follows the widest subkey line.
	col1Width := 0
	blocks := make([][2][]string, len(table.Items))
	for i, key := range table.Items {
		scroll := widget.ScrollAmount{}
		if i == table.State.Selected {
			scroll = table.State.Scroll
		}
		keysRow := widget.NewRowItem(key.SubkeyInfo(minimized), 0, maxRowHeight, scroll)
		for _, line := range keysRow.Data {
			if w := runewidth.StringWidth(line); w > col1Width {
				col1Width = w
			}
		}
		blocks[i] = [2][]string{keysRow.Data, nil}
		col2Width := m.width - col1Width - 4
		if col2Width < 8 {
			col2Width = 8
		}
		usersRow := widget.NewRowItem(key.UserInfo(minimized), col2Width, maxRowHeight, scroll)
		blocks[i][1] = usersRow.Data
	}

	// Window the rows so the selection stays visible, anchoring it at
	// the bottom when the table overflows.
	heights := make([]int, len(blocks))
	for i, block := range blocks {
		h := len(block[0])
		if len(block[1]) > h {
			h = len(block[1])
		}
		heights[i] = h + m.margin
	}
	start := table.State.Selected
	used := heights[start]
	for i := start - 1; i >= 0 && used+heights[i] <= height; i-- {
		start = i
		used += heights[i]
	}

	var b strings.Builder
	lines := 0
	for i := start; i < len(blocks) && lines < height; i++ {
		style := rowNormalStyle
		if i == table.State.Selected && m.colored {
			style = rowSelectedStyle
		}
		prefix := "  "
		if i == table.State.Selected {
			prefix = "> "
		}
		rowHeight := heights[i] - m.margin
		for l := 0; l < rowHeight && lines < height; l++ {
			left, right := "", ""
			if l < len(blocks[i][0]) {
				left = blocks[i][0][l]
			}
			if l < len(blocks[i][1]) {
				right = blocks[i][1][l]
			}
			pad := col1Width - runewidth.StringWidth(left)
			if pad < 0 {
				pad = 0
			}
			line := prefix + left + strings.Repeat(" ", pad) + "  " + right
			b.WriteString(style.Render(line))
			b.WriteString("\n")
			lines++
			if l == 0 {
				prefix = "  "
			}
		}
		for sp := 0; sp < m.margin && lines < height; sp++ {
			b.WriteString("\n")
			lines++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m KeysModel) renderOptions(height int) string {
	var b strings.Builder
	for i, item := range m.options.Items {
		style := optionNormalStyle
		cursor := "  "
		if i == m.options.Selected {
			style = optionSelectedStyle
			cursor = "> "
		}
		b.WriteString(style.Render(cursor + item.label))
		b.WriteString("\n")
	}
	box := optionsBorderStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m KeysModel) renderStatus() string {
	var left string
	switch {
	case m.prompt.IsEnabled():
		left = m.input.View()
	case m.prompt.Text != "":
		style := outputStyle(m.prompt.OutputType)
		left = style.Render(m.prompt.OutputType.String() + m.prompt.Text)
	default:
		left = statusBarStyle.Render(m.mode.String())
	}

	table := m.table()
	position := fmt.Sprintf("%s (%d/%d)", m.tab, min(table.State.Selected+1, len(table.Items)), len(table.Items))
	right := statusBarStyle.Render(position)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}
