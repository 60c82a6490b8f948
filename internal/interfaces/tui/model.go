package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/domain"
)

const inputsPerRow = 3

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#F7931A")).
			Padding(0, 1)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#F7931A"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Model is the seed phrase entry screen. Every keystroke is reflected into
// the phrase, the focused slot drives the autocompletion list.
type Model struct {
	qrSvc     application.QRService
	phrase    *domain.SeedPhrase
	inputs    []textinput.Model
	focus     int
	selection *domain.Selection
	err       error

	confirmed bool
	quitting  bool
}

func NewModel(qrSvc application.QRService, phrase *domain.SeedPhrase) *Model {
	m := &Model{
		qrSvc:     qrSvc,
		phrase:    phrase,
		selection: domain.NewSelection(nil),
	}
	m.resetInputs()
	return m
}

// Confirmed reports whether the user left the screen with a complete phrase.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

func (m *Model) Phrase() *domain.SeedPhrase {
	return m.phrase
}

func (m *Model) Focus() int {
	return m.focus
}

func (m *Model) Suggestions() []string {
	return m.selection.Suggestions()
}

func (m *Model) Highlighted() int {
	return m.selection.Highlighted()
}

func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if keyMsg.Paste {
		m.paste(string(keyMsg.Runes))
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.selection.IsEmpty() {
			m.setFocus(m.focus - 1)
		} else {
			m.selection.Previous()
		}
		return m, nil

	case "down":
		if m.selection.IsEmpty() {
			m.setFocus(m.focus + 1)
		} else {
			m.selection.Next()
		}
		return m, nil

	case "tab":
		if m.selection.IsEmpty() {
			m.setFocus(m.focus + 1)
		} else {
			m.commit()
		}
		return m, nil

	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil

	case " ":
		if m.inputs[m.focus].Value() != "" {
			m.setFocus(m.focus + 1)
		}
		return m, nil

	case "ctrl+l":
		m.phrase.Clear()
		m.err = nil
		m.resetInputs()
		return m, nil

	case "enter":
		if !m.selection.IsEmpty() {
			m.commit()
			return m, nil
		}
		return m, m.confirm()
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.phrase.SetWord(m.focus, after)
		m.selection = domain.NewSelection(m.qrSvc.Suggest(strings.TrimSpace(after)))
		m.err = nil
	}
	return cmd
}

func (m *Model) commit() {
	next, err := domain.CommitSuggestion(m.phrase, m.focus, m.selection)
	if err != nil {
		m.err = err
		return
	}
	m.inputs[m.focus].SetValue(m.phrase.Word(m.focus))
	m.setFocus(next)
}

func (m *Model) paste(text string) {
	if err := m.phrase.PasteBulk(text, m.focus); err != nil {
		m.err = err
		return
	}
	m.err = nil
	for i := range m.inputs {
		m.inputs[i].SetValue(m.phrase.Word(i))
	}
	m.selection = domain.NewSelection(nil)
	if m.phrase.IsComplete() {
		m.setFocus(m.phrase.WordCount() - 1)
	}
}

func (m *Model) confirm() tea.Cmd {
	if res := m.phrase.Validate(); !res.Ok {
		m.err = res.Err
		return nil
	}
	m.confirmed = true
	return tea.Quit
}

func (m *Model) setFocus(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(m.inputs) {
		i = len(m.inputs) - 1
	}
	if i == m.focus {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	m.inputs[m.focus].CursorEnd()
	m.selection = domain.NewSelection(nil)
}

func (m *Model) resetInputs() {
	m.inputs = make([]textinput.Model, m.phrase.WordCount())
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%2d. ", i+1)
		ti.Placeholder = "word"
		ti.CharLimit = 16
		ti.Width = 10
		ti.SetValue(m.phrase.Word(i))
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.selection = domain.NewSelection(nil)
}

func (m *Model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Seed phrase"))
	b.WriteString(" ")
	b.WriteString(progressStyle.Render(fmt.Sprintf(
		"%d / %d words", m.phrase.FilledCount(), m.phrase.WordCount(),
	)))
	b.WriteString("\n\n")

	for row := 0; row < len(m.inputs); row += inputsPerRow {
		cells := make([]string, 0, inputsPerRow)
		for i := row; i < row+inputsPerRow && i < len(m.inputs); i++ {
			cells = append(cells, m.inputs[i].View()+"  ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, s := range m.selection.Suggestions() {
		if i == m.selection.Highlighted() {
			b.WriteString(selectedStyle.Render("> " + s))
		} else {
			b.WriteString(suggestionStyle.Render("  " + s))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(application.UserMessage(m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(warningStyle.Render(
		"Never share your seed phrase. Make sure nobody is watching your screen.",
	))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"↑/↓ select • tab/enter complete • shift+tab back • ctrl+l clear • enter confirm • esc quit",
	))

	return b.String()
}
