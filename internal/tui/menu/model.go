// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     menu
// Description: Bubbletea model for the interactive calculation menu
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package menu is the interactive front end: inputs are collected per
// category, "Complete" lists what can be calculated or, failing that, the
// closest calculations with the fields they still need.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/format"
	"github.com/msto63/mFIN/internal/inputs"
	"github.com/msto63/mFIN/internal/session"
)

// screen is the menu page being shown
type screen int

const (
	screenMain screen = iota
	screenCategory
	screenEntry
	screenCalculations
	screenSuggestions
	screenResult
)

// Main menu entries after the categories
const (
	itemComplete = "Complete"
	itemQuit     = "Quit"
)

// Config holds menu configuration
type Config struct {
	Session   *session.Session
	Formatter *format.Formatter
	Logger    *mfinlog.Logger
	// ShowDetails adds secondary values below results
	ShowDetails bool
}

// Model is the main Bubbletea model for the menu
type Model struct {
	// Collaborators
	session   *session.Session
	formatter *format.Formatter
	logger    *mfinlog.Logger

	// Configuration
	showDetails bool
	categories  []catalog.Category

	// State
	screen   screen
	cursor   int
	category catalog.Category
	field    catalog.Field
	back     screen
	quitting bool
	// digits holds a partly typed entry number
	digits int

	// Components
	input textinput.Model

	// Completion state
	computable []string
	matches    []dispatch.Match
	result     string

	status string
	err    error
}

// New creates a new menu model
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mfinlog.Discard()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = format.New(cfg.Logger)
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "

	return Model{
		session:     cfg.Session,
		formatter:   cfg.Formatter,
		logger:      cfg.Logger.WithName("menu"),
		showDetails: cfg.ShowDetails,
		categories:  catalog.Categories(),
		input:       ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case calculatedMsg:
		m.showResult(msg)
		return m, nil
	}

	if m.screen == screenEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenEntry:
		switch msg.Type {
		case tea.KeyEnter:
			m.storeEntry()
			return m, nil
		case tea.KeyEsc:
			m.input.Blur()
			m.err = nil
			m.screen = m.back
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case screenResult:
		m.screen = screenMain
		m.cursor = 0
		return m, nil
	}

	key := msg.String()
	if d := digit(key); d >= 0 {
		return m.typeDigit(d)
	}
	m.digits = 0

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(m.cursor)
	case "esc", "backspace":
		if m.screen != screenMain {
			m.screen = screenMain
			m.cursor = 0
			m.err = nil
		}
	case "q":
		if m.screen == screenMain {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// typeDigit extends the entry number being typed. Entries are numbered
// from 1; an entry is chosen as soon as no further digit could extend its
// number, otherwise enter chooses it.
func (m Model) typeDigit(d int) (tea.Model, tea.Cmd) {
	count := len(m.items())
	n := m.digits*10 + d
	if n < 1 || n > count {
		m.digits = 0
		if d < 1 || d > count {
			return m, nil
		}
		n = d
	}

	m.cursor = n - 1
	if n*10 > count {
		m.digits = 0
		return m.choose(n - 1)
	}
	m.digits = n
	return m, nil
}

func digit(key string) int {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return int(key[0] - '0')
	}
	return -1
}

// items returns the entries of the current list screen
func (m Model) items() []string {
	switch m.screen {
	case screenMain:
		items := make([]string, 0, len(m.categories)+2)
		for _, c := range m.categories {
			items = append(items, c.Name)
		}
		return append(items, itemComplete, itemQuit)

	case screenCategory:
		in := m.session.Inputs()
		items := make([]string, len(m.category.Fields))
		for i, f := range m.category.Fields {
			items[i] = f.Name()
			if v, ok := in.Get(f); ok {
				items[i] += " = " + ValueStyle.Render(m.formatter.Value(v, f.Kind()))
			}
		}
		return items

	case screenCalculations:
		return m.computable

	case screenSuggestions:
		items := make([]string, len(m.matches))
		for i, match := range m.matches {
			items[i] = fmt.Sprintf("%s (%s present), missing: %s",
				match.Name,
				mathx.FormatPercent(mathx.RoundTo(match.Fraction, 4)),
				MissingStyle.Render(catalog.NameList(match.Missing)))
		}
		return items
	}
	return nil
}

// choose acts on the i-th entry of the current list screen
func (m Model) choose(i int) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMain:
		switch {
		case i < len(m.categories):
			m.category = m.categories[i]
			m.screen = screenCategory
			m.cursor = 0
		case i == len(m.categories):
			m.complete()
		default:
			m.quitting = true
			return m, tea.Quit
		}

	case screenCategory:
		if i < len(m.category.Fields) {
			cmd := m.startEntry(m.category.Fields[i], screenCategory)
			return m, cmd
		}

	case screenCalculations:
		if i < len(m.computable) {
			return m, m.invoke(m.computable[i])
		}

	case screenSuggestions:
		if i < len(m.matches) && len(m.matches[i].Missing) > 0 {
			cmd := m.startEntry(m.matches[i].Missing[0], screenSuggestions)
			return m, cmd
		}
	}
	return m, nil
}

// complete shows the computable calculations, or the closest ones when
// nothing can be calculated yet
func (m *Model) complete() {
	m.err = nil
	m.cursor = 0

	if m.computable = m.session.ListComputable(); len(m.computable) > 0 {
		m.screen = screenCalculations
		return
	}

	matches, err := m.session.RankClosest()
	if err != nil {
		m.err = err
		m.screen = screenMain
		return
	}
	m.matches = matches
	m.screen = screenSuggestions
}

func (m *Model) startEntry(f catalog.Field, back screen) tea.Cmd {
	m.field = f
	m.back = back
	m.err = nil
	m.input.Reset()
	m.input.Placeholder = f.Spec().Prompt
	m.screen = screenEntry
	return m.input.Focus()
}

// storeEntry parses the typed text into the field being edited. A rejected
// entry keeps the prompt open with the reason.
func (m *Model) storeEntry() {
	v, err := inputs.ParseEntry(m.field, m.input.Value())
	if err == nil {
		err = m.session.Put(m.field, v)
	}
	if err != nil {
		m.err = err
		return
	}

	m.status = m.field.Name() + " set to " + m.formatter.Value(v, m.field.Kind())
	m.input.Blur()
	if m.back == screenSuggestions {
		m.complete()
		return
	}
	m.screen = m.back
}

// invoke runs a calculation as a command
func (m Model) invoke(name string) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		spec, err := s.Spec(name)
		if err != nil {
			return calculatedMsg{err: err}
		}
		result, err := s.Invoke(name)
		return calculatedMsg{spec: spec, result: result, err: err}
	}
}

func (m *Model) showResult(msg calculatedMsg) {
	m.screen = screenResult
	if msg.err != nil {
		m.logger.Debug("calculation failed", mfinlog.Err(msg.err))
		m.err = msg.err
		m.result = ""
		return
	}

	m.err = nil
	r := msg.result
	if !m.showDetails {
		r.Details = nil
	}
	m.result = m.formatter.Result(msg.spec, r)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(Logo) + " " + HeaderStyle.Render(m.title()))
	b.WriteString("\n\n")

	switch m.screen {
	case screenEntry:
		b.WriteString(SubHeaderStyle.Render(m.field.Spec().Prompt))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case screenResult:
		if m.result != "" {
			b.WriteString(ResultPanelStyle.Render(m.result))
			b.WriteString("\n")
		}
		b.WriteString(m.renderInputs())

	default:
		b.WriteString(m.renderList())
		if m.screen == screenMain {
			b.WriteString(m.renderInputs())
		}
	}

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" && m.screen != screenResult {
		b.WriteString("\n" + StatusStyle.Render(m.status) + "\n")
	}

	b.WriteString(HelpStyle.Render(m.help()))
	return b.String()
}

func (m Model) title() string {
	switch m.screen {
	case screenCategory:
		return m.category.Name
	case screenEntry:
		return "Enter " + m.field.Name()
	case screenCalculations:
		return "Calculations available"
	case screenSuggestions:
		return "Nothing to calculate yet, closest calculations"
	case screenResult:
		return "Result"
	default:
		return "Financial Calculations"
	}
}

func (m Model) renderList() string {
	var b strings.Builder
	for i, item := range m.items() {
		number := ItemNumberStyle.Render(fmt.Sprintf("%2d.", i+1))
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render("> ") + number + " " + SelectedItemStyle.Render(item))
		} else {
			b.WriteString("  " + number + " " + ItemStyle.Render(item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderInputs renders the current information panel
func (m Model) renderInputs() string {
	text := m.formatter.Inputs(m.session.Inputs())
	if text == "" {
		return ""
	}
	return "\n" + InfoPanelStyle.Render("Current Information\n"+text) + "\n"
}

func (m Model) help() string {
	switch m.screen {
	case screenEntry:
		return RenderKeyHint("enter", "store") + "  " + RenderKeyHint("esc", "cancel")
	case screenResult:
		return RenderKeyHint("any key", "back to menu")
	case screenMain:
		return m.numberHint() + RenderKeyHint("enter", "select") + "  " + RenderKeyHint("q", "quit")
	default:
		return m.numberHint() + RenderKeyHint("enter", "select") + "  " + RenderKeyHint("esc", "back")
	}
}

// numberHint names the range of entry numbers that can be typed
func (m Model) numberHint() string {
	count := len(m.items())
	switch {
	case count == 0:
		return ""
	case count == 1:
		return RenderKeyHint("1", "choose") + "  "
	default:
		return RenderKeyHint(fmt.Sprintf("1-%d", count), "choose") + "  "
	}
}
