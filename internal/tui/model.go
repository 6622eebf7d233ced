// Package tui provides the Bubble Tea flashcard interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanaflash/internal/model"
	statsPkg "github.com/verte-zerg/kanaflash/internal/stats"
	"github.com/verte-zerg/kanaflash/internal/study"
)

type phase int

const (
	phaseAnswer phase = iota
	phaseReveal
	phaseFeedback
	phaseConfirmLeave
	phaseComplete
)

// Model implements the Bubble Tea study UI.
type Model struct {
	run   *study.Run
	input textinput.Model

	width  int
	height int

	phase     phase
	prevPhase phase
	last      model.Kana
	lastOK    bool
	lastInput string
	correct   int

	summary study.Summary
	// pending holds the result of the last card until its feedback is dismissed.
	pending *study.Summary
	err     error

	allCorrect int
	allTotal   int
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 4).
			Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a study TUI for a started run. history feeds the
// all-time accuracy in the footer.
func NewModel(run *study.Run, history []model.StudySession) *Model {
	in := textinput.New()
	in.Placeholder = "romaji"
	in.CharLimit = 8
	in.Width = 10
	in.Prompt = "> "
	in.Focus()

	m := &Model{run: run, input: in}
	for _, s := range history {
		m.allCorrect += s.CorrectAnswers
		m.allTotal += s.CardsReviewed
	}
	return m
}

// Summary returns the outcome once the run has ended.
func (m *Model) Summary() (study.Summary, bool) {
	return m.summary, m.phase == phaseComplete
}

// Err returns the last run error, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			switch {
			case m.pending != nil:
				m.next()
			case !m.run.Finished():
				m.leave()
			}
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	if m.phase == phaseAnswer {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseAnswer:
		switch msg.Type {
		case tea.KeyEsc:
			m.askLeave()
			return m, nil
		case tea.KeyTab:
			m.phase = phaseReveal
			return m, nil
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case phaseReveal:
		switch {
		case msg.Type == tea.KeyEsc:
			m.askLeave()
		case isKey(msg, "y"):
			m.answer(true, "")
		case isKey(msg, "n"):
			m.answer(false, "")
		}
		return m, nil
	case phaseFeedback:
		switch {
		case msg.Type == tea.KeyEsc && m.pending == nil:
			m.askLeave()
		case msg.Type == tea.KeyEsc, msg.Type == tea.KeyEnter, msg.Type == tea.KeySpace:
			m.next()
		}
		return m, nil
	case phaseConfirmLeave:
		switch {
		case isKey(msg, "y"):
			m.leave()
		case isKey(msg, "n"), msg.Type == tea.KeyEsc:
			m.phase = m.prevPhase
		}
		return m, nil
	case phaseComplete:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc || isKey(msg, "q") {
			return m, tea.Quit
		}
	}
	return m, nil
}

func isKey(msg tea.KeyMsg, s string) bool {
	return msg.Type == tea.KeyRunes && strings.EqualFold(string(msg.Runes), s)
}

func (m *Model) submit() {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return
	}
	k, ok := m.run.Current()
	if !ok {
		return
	}
	m.answer(study.CheckAnswer(k, value), value)
}

func (m *Model) answer(correct bool, input string) {
	k, ok := m.run.Current()
	if !ok {
		return
	}
	summary, done, err := m.run.Answer(correct)
	if err != nil {
		m.err = err
		return
	}
	m.last = k
	m.lastOK = correct
	m.lastInput = input
	if correct {
		m.correct++
	}
	m.input.Reset()
	if done {
		m.pending = &summary
	}
	m.phase = phaseFeedback
}

func (m *Model) next() {
	if m.pending != nil {
		summary := *m.pending
		m.pending = nil
		m.complete(summary)
		return
	}
	m.phase = phaseAnswer
	m.input.Focus()
}

func (m *Model) askLeave() {
	m.prevPhase = m.phase
	m.phase = phaseConfirmLeave
}

func (m *Model) leave() {
	summary, err := m.run.Leave()
	if err != nil {
		m.err = err
		return
	}
	m.complete(summary)
}

func (m *Model) complete(summary study.Summary) {
	m.summary = summary
	m.phase = phaseComplete
	m.allCorrect += summary.Correct
	m.allTotal += summary.Total
	m.input.Blur()
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footerLine
}

func (m *Model) renderBody() string {
	switch m.phase {
	case phaseComplete:
		lines := []string{
			titleStyle.Render(m.summary.Title()),
			"",
			m.summary.Message(),
		}
		if m.summary.Left {
			lines = append(lines, hintStyle.Render("Unanswered characters were marked as incorrect."))
		}
		lines = append(lines, "", hintStyle.Render("enter: close"))
		return lipgloss.JoinVertical(lipgloss.Center, lines...)
	case phaseConfirmLeave:
		return lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Leave Study Session?"),
			"",
			"Your progress will be saved, but unanswered characters will be marked as incorrect.",
			"",
			hintStyle.Render("y: leave  n: cancel"),
		)
	case phaseFeedback:
		hint := "enter: next card  esc: leave"
		if m.pending != nil {
			hint = "enter: see results"
		}
		return lipgloss.JoinVertical(lipgloss.Center,
			cardStyle.Render(m.last.Character),
			"",
			m.renderFeedback(),
			"",
			hintStyle.Render(hint),
		)
	}

	k, ok := m.run.Current()
	if !ok {
		return "Loading..."
	}
	if m.phase == phaseReveal {
		return lipgloss.JoinVertical(lipgloss.Center,
			cardStyle.Render(k.Character),
			"",
			titleStyle.Render(k.Romaji),
			"",
			hintStyle.Render("Did you know it? y: yes  n: no"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		cardStyle.Render(k.Character),
		"",
		m.input.View(),
		"",
		hintStyle.Render("enter: check  tab: reveal  esc: leave"),
	)
}

func (m *Model) renderFeedback() string {
	if m.lastOK {
		return correctStyle.Render(fmt.Sprintf("Correct! %s is %s", m.last.Character, m.last.Romaji))
	}
	if m.lastInput == "" {
		return incorrectStyle.Render(fmt.Sprintf("%s is %s", m.last.Character, m.last.Romaji))
	}
	return incorrectStyle.Render(fmt.Sprintf("Not quite: %s is %s, not %s", m.last.Character, m.last.Romaji, m.lastInput))
}

func (m *Model) renderFooter() string {
	pos, total := m.run.Position()
	if pos > total {
		pos = total
	}
	segments := []string{
		fmt.Sprintf("Card %d/%d", pos, total),
		fmt.Sprintf("Correct %d", m.correct),
	}
	if m.allTotal > 0 {
		segments = append(segments, fmt.Sprintf("All-time %d%%", statsPkg.Accuracy(m.allCorrect, m.allTotal)))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
