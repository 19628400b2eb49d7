// Package tui implements the interactive menu console.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/domain"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePicker
	ModeInput
	ModeConfirm
	ModeResult
)

// page identifies which menu is shown.
type page int

const (
	pageMain page = iota
	pageLogcat
)

const appPadding = 4

// menuEntry is one selectable row. A submenu entry opens the logcat lab
// instead of running an operation.
type menuEntry struct {
	title   string
	op      domain.Operation
	submenu bool
}

func mainEntries() []menuEntry {
	var entries []menuEntry
	for _, op := range domain.MainMenu() {
		entries = append(entries, menuEntry{title: op.Title(), op: op})
		if op == domain.OpForegroundApp {
			entries = append(entries, menuEntry{title: "Logcat lab ...", submenu: true})
		}
	}
	return entries
}

func logcatEntries() []menuEntry {
	var entries []menuEntry
	for _, op := range domain.LogcatMenu() {
		entries = append(entries, menuEntry{title: op.Title(), op: op})
	}
	return entries
}

// result is the rendered outcome of the last operation.
type result struct {
	Title   string
	Body    string
	Warning string
}

// Model is the console TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	c *app.Container

	// State
	session domain.Session
	version string
	err     error

	entries []menuEntry
	serials []string
	result  result

	// Components
	keys   KeyMap
	styles Styles
	input  textinput.Model

	// Numeric state
	cursor       int
	pickerCursor int
	width        int
	height       int
	pendingOp    domain.Operation
	page         page
	mode         Mode

	// Pending input collected before the operation runs
	pendingValue string
	inputHint    string // shown when the input dialog rejects a value

	// Boolean state
	inputDone bool // the pending input prompt has been answered
	pickOnly  bool // the picker was opened directly, not for an operation
	busy      bool
}

// New creates a new console model.
func New(c *app.Container, session domain.Session, version string) *Model {
	in := textinput.New()
	in.CharLimit = 500

	return &Model{
		c:       c,
		session: session,
		version: version,
		entries: mainEntries(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		input:   in,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgResult:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			m.mode = ModeMenu
			return m, nil
		}
		m.err = nil
		m.result = result{Title: msg.Title, Body: msg.Body, Warning: msg.Warning}
		m.mode = ModeResult
		return m, nil

	case MsgDevices:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			m.mode = ModeMenu
			return m, nil
		}
		if len(msg.Serials) == 0 {
			m.err = domain.ErrNoDevices
			m.mode = ModeMenu
			return m, nil
		}
		// A single usable device is selected without a menu.
		if len(msg.Serials) == 1 {
			m.session.Serial = msg.Serials[0]
			if m.pickOnly {
				m.pickOnly = false
				m.mode = ModeMenu
				return m, nil
			}
			return m.continueOp()
		}
		m.serials = msg.Serials
		m.pickerCursor = 0
		m.mode = ModePicker
		return m, nil

	case MsgFollowExited:
		m.busy = false
		m.err = msg.Err
		m.mode = ModeMenu
		return m, nil
	}

	return m, nil
}

// handleKey handles key events.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		// Only allow bailing out while an operation runs.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode { //nolint:exhaustive // ModeMenu handled in default
	case ModePicker:
		return m.handlePickerKey(msg)
	case ModeInput:
		return m.handleInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeResult:
		return m.handleResultKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

// handleMenuKey handles keys in the menu.
func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.page == pageLogcat {
			m.toMainMenu()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.page == pageLogcat {
			m.toMainMenu()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.DryRun):
		m.session.DryRun = !m.session.DryRun
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		m.pickOnly = true
		m.busy = true
		return m, m.loadDevices()

	case key.Matches(msg, m.keys.Enter):
		entry := m.entries[m.cursor]
		if entry.submenu {
			m.page = pageLogcat
			m.entries = logcatEntries()
			m.cursor = 0
			return m, nil
		}
		return m.selectOp(entry.op)
	}

	return m, nil
}

// toMainMenu returns from the logcat lab to the main menu.
func (m *Model) toMainMenu() {
	m.page = pageMain
	m.entries = mainEntries()
	m.cursor = 0
}

// selectOp starts the select → pick → input → confirm → run pipeline.
func (m *Model) selectOp(op domain.Operation) (tea.Model, tea.Cmd) {
	m.pendingOp = op
	m.pendingValue = ""
	m.inputDone = false
	m.inputHint = ""
	m.err = nil

	if op.Info().NeedsSerial && m.session.Serial == "" {
		m.busy = true
		return m, m.loadDevices()
	}
	return m.continueOp()
}

// continueOp advances the pending operation to its next stage.
func (m *Model) continueOp() (tea.Model, tea.Cmd) {
	info := m.pendingOp.Info()

	if info.Input != domain.InputNone && !m.inputDone {
		m.mode = ModeInput
		m.input.Placeholder = m.promptFor(m.pendingOp)
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	}
	if info.Confirm && m.mode != ModeConfirm {
		m.mode = ModeConfirm
		return m, nil
	}
	return m.run()
}

// promptFor returns the input prompt for an operation, filling in values
// the static operation table cannot know, like the configured recording
// duration.
func (m *Model) promptFor(op domain.Operation) string {
	if op == domain.OpScreenRecord {
		return fmt.Sprintf("Duration seconds (max %d, default %d)",
			domain.RecordDurationMax, m.c.Config.Record.DurationSeconds)
	}
	return op.Info().Prompt
}

// run launches the pending operation.
func (m *Model) run() (tea.Model, tea.Cmd) {
	op, value := m.pendingOp, m.pendingValue
	m.mode = ModeMenu

	// A live follow hands the terminal to the child instead of capturing.
	if op.Info().Streamed && !m.session.DryRun {
		return m, m.execFollow()
	}

	m.busy = true
	return m, m.runOp(op, value)
}

// handlePickerKey handles keys in the device picker.
func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.pickOnly = false
		m.mode = ModeMenu
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(m.serials)-1 {
			m.pickerCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.pickerCursor < len(m.serials) {
			m.session.Serial = m.serials[m.pickerCursor]
		}
		m.mode = ModeMenu
		if m.pickOnly {
			m.pickOnly = false
			return m, nil
		}
		return m.continueOp()
	}

	return m, nil
}

// handleInputKey handles keys in the input dialog.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" && m.pendingOp.Info().Input != domain.InputDuration {
			// Keep prompting; every other input is mandatory.
			m.inputHint = "A value is required."
			return m, nil
		}
		m.inputHint = ""
		m.pendingValue = value
		m.inputDone = true
		m.input.Blur()
		m.mode = ModeMenu
		return m.continueOp()

	case "esc":
		m.inputHint = ""
		m.input.Blur()
		m.mode = ModeMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKey handles keys in the confirmation dialog.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.run()
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeMenu
		return m, nil
	}
	return m, nil
}

// handleResultKey returns to the menu from the result view.
func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.mode = ModeMenu
	return m, nil
}

// View renders the console.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var base string
	switch m.mode { //nolint:exhaustive // ModeMenu handled in default
	case ModePicker:
		base = m.viewPicker()
	case ModeInput:
		base = m.viewInputDialog()
	case ModeConfirm:
		base = m.viewConfirmDialog()
	case ModeResult:
		base = m.viewResult()
	default:
		base = m.viewMenu()
	}

	return m.styles.App.Render(base)
}

// viewMenu renders the current menu page.
func (m *Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.busy {
		b.WriteString(m.styles.Busy.Render("Running..."))
		b.WriteString("\n")
	} else {
		for i, entry := range m.entries {
			b.WriteString(m.renderEntry(entry, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title line with the session state.
func (m *Model) viewHeader() string {
	title := "Android Workbench"
	if m.page == pageLogcat {
		title = "Logcat Lab"
	}

	serial := m.session.Serial
	if serial == "" {
		serial = "(no device)"
	}
	header := m.styles.Title.Render(title) + "  " + m.styles.Badge.Render(serial)
	if m.session.DryRun {
		header += "  " + m.styles.DryRun.Render("[dry-run]")
	}
	header += "  " + m.styles.Muted.Render(m.version)
	return header
}

// renderEntry renders a single menu row.
func (m *Model) renderEntry(entry menuEntry, selected bool) string {
	cursor := "  "
	style := m.styles.Normal
	if selected {
		cursor = m.styles.Selected.Render("▸") + " "
		style = m.styles.Selected
	}
	line := cursor + style.Render(entry.title)
	if w := m.contentWidth(); w > 0 {
		line = truncate.StringWithTail(line, uint(w), "…")
	}
	return line
}

// viewFooter renders the key hints.
func (m *Model) viewFooter() string {
	keyStyle := m.styles.FooterKey

	hints := keyStyle.Render("j/k") + " nav  " +
		keyStyle.Render("enter") + " run  " +
		keyStyle.Render("s") + " device  " +
		keyStyle.Render("d") + " dry-run  "
	if m.page == pageLogcat {
		hints += keyStyle.Render("esc") + " back  "
	}
	hints += keyStyle.Render("q") + " quit"

	return m.styles.Footer.Render(hints)
}

// viewPicker renders the device picker.
func (m *Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Select a device"))
	b.WriteString("\n\n")
	for i, serial := range m.serials {
		if i == m.pickerCursor {
			b.WriteString(m.styles.Selected.Render("▸ " + serial))
		} else {
			b.WriteString("  " + serial)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.styles.FooterKey.Render("enter") + " select  " +
		m.styles.FooterKey.Render("esc") + " cancel"))
	return b.String()
}

// viewInputDialog renders the input prompt for the pending operation.
func (m *Model) viewInputDialog() string {
	info := m.pendingOp.Info()
	content := m.styles.Title.Render(info.Title) + "\n\n" +
		m.styles.DialogText.Render(m.promptFor(m.pendingOp)) + "\n" +
		m.styles.Input.Render(m.input.View()) + "\n"
	if m.inputHint != "" {
		content += m.styles.Warning.Render(m.inputHint) + "\n"
	}
	content += "\n" + m.styles.Footer.Render(m.styles.FooterKey.Render("enter")+" ok  "+
		m.styles.FooterKey.Render("esc")+" cancel")
	return m.styles.Dialog.Render(content)
}

// viewConfirmDialog renders the confirmation prompt.
func (m *Model) viewConfirmDialog() string {
	info := m.pendingOp.Info()
	subject := info.Title
	if m.pendingValue != "" {
		subject += " (" + m.pendingValue + ")"
	}
	content := m.styles.Title.Render("Confirm") + "\n\n" +
		m.styles.DialogText.Render(subject) + "\n\n" +
		m.styles.Footer.Render(m.styles.FooterKey.Render("y")+" confirm  "+
			m.styles.FooterKey.Render("n")+" cancel")
	return m.styles.Dialog.Render(content)
}

// viewResult renders the outcome of the last operation.
func (m *Model) viewResult() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.result.Title))
	b.WriteString("\n\n")
	if m.result.Body != "" {
		b.WriteString(m.result.Body)
		b.WriteString("\n")
	}
	if m.result.Warning != "" {
		b.WriteString(m.styles.Warning.Render("warning: " + m.result.Warning))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to return"))
	return b.String()
}

// contentWidth returns the available content width.
func (m *Model) contentWidth() int {
	w := m.width - appPadding
	if w < 0 {
		w = 0
	}
	return w
}
