// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanaflash/internal/kana"
	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
	"github.com/verte-zerg/kanaflash/internal/stats"
)

const (
	tabOverview = iota
	tabCharTable
	tabSessions
)

const weakestCount = 5

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Source is the state the stats UI reads.
type Source interface {
	Snapshot() session.State
	SessionsByType(kanaType model.KanaType) []model.StudySession
}

// Model implements the Bubble Tea stats UI.
type Model struct {
	src    Source
	filter model.KanaType

	report stats.Report

	tabs      []string
	activeTab int
	viewports []viewport.Model
	charTable table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(src Source) *Model {
	m := &Model{
		src:  src,
		tabs: []string{"Overview", "Characters", "Sessions"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.charTable = table.New(
		table.WithColumns(charColumns()),
		table.WithHeight(1),
	)
	m.charTable.SetStyles(charTableStyles())
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "s":
			m.filter = nextFilter(m.filter)
			m.refreshReport()
			return m, nil
		case "r":
			m.refreshReport()
			return m, nil
		case "g", "home":
			if m.activeTab == tabCharTable {
				m.charTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabCharTable {
				m.charTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabCharTable {
				var cmd tea.Cmd
				m.charTable, cmd = m.charTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func nextFilter(f model.KanaType) model.KanaType {
	switch f {
	case "":
		return model.Hiragana
	case model.Hiragana:
		return model.Katakana
	default:
		return ""
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.report.Error != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.charTable.SetWidth(m.width)
	m.charTable.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabCharTable {
		m.charTable.Focus()
	} else {
		m.charTable.Blur()
	}
}

func (m *Model) refreshReport() {
	st := m.src.Snapshot()
	dataset := kana.All()
	if m.filter != "" {
		st.Sessions = m.src.SessionsByType(m.filter)
		dataset = kana.ForType(m.filter)
	}
	m.report = stats.BuildReport(st, dataset)
	m.charTable.SetRows(charRows(m.report.Ranking))
	m.updateLayout()
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, width))
	m.viewports[tabSessions].SetContent(renderSessions(m.report.Sessions))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	script := "all"
	if m.filter != "" {
		script = string(m.filter)
	}
	summary := truncateLine(fmt.Sprintf("Script: %s  Sessions: %d", script, len(m.report.Sessions)), m.width)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Script: s  Reload: r  Quit: q")
	if m.report.Error != "" {
		return help + "\n" + errorStyle.Render(m.report.Error)
	}
	return help
}

func (m *Model) renderBody() string {
	if m.activeTab == tabCharTable {
		if len(m.report.Ranking) == 0 {
			return "No characters studied yet."
		}
		return tableMutedStyle.Render(m.charTable.View())
	}
	return m.viewports[m.activeTab].View()
}

func renderOverview(r stats.Report, width int) string {
	ov := r.Overview
	cards := []string{
		metricCard("Study Time", stats.FormatDuration(ov.TotalStudyTime)),
		metricCard("Cards Reviewed", fmt.Sprintf("%d", ov.TotalCardsReviewed)),
		metricCard("Correct", fmt.Sprintf("%d", ov.TotalCorrectAnswers)),
		metricCard("Accuracy", fmt.Sprintf("%d%%", ov.Accuracy)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	lines := []string{summary, ""}
	if len(r.Trend) > 1 {
		lines = append(lines, fmt.Sprintf("Accuracy trend: [%s]", stats.Sparkline(r.Trend)), "")
	}
	weak := stats.WeakestCharacters(r.Ranking, weakestCount)
	if len(weak) > 0 {
		lines = append(lines, cardTitleStyle.Render("Needs practice"))
		for _, w := range weak {
			lines = append(lines, fmt.Sprintf("  %s  %d%% of %d", stats.KanaLabel(w.Kana), w.Accuracy, w.Total))
		}
		lines = append(lines, "")
	}
	lines = append(lines, cardTitleStyle.Render("Recent Sessions"))
	if len(ov.RecentSessions) == 0 {
		lines = append(lines, "No study sessions yet.")
	}
	for _, s := range ov.RecentSessions {
		lines = append(lines, "  "+stats.SessionLabel(s))
	}
	return strings.Join(lines, "\n")
}

func renderSessions(sessions []model.StudySession) string {
	if len(sessions) == 0 {
		return "No study sessions yet."
	}
	lines := make([]string, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		lines = append(lines, stats.SessionLabel(sessions[i]))
	}
	return strings.Join(lines, "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func charColumns() []table.Column {
	return []table.Column{
		{Title: "Char", Width: 10},
		{Title: "Accuracy", Width: 9},
		{Title: "Correct", Width: 7},
		{Title: "Incorrect", Width: 9},
		{Title: "Total", Width: 6},
		{Title: "Last Reviewed", Width: 16},
	}
}

func charRows(ranks []stats.CharRank) []table.Row {
	rows := make([]table.Row, 0, len(ranks))
	for _, r := range ranks {
		last := ""
		if t, err := model.ParseTime(r.Progress.LastReviewed); err == nil {
			last = t.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			stats.KanaLabel(r.Kana),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%d", r.Progress.CorrectCount),
			fmt.Sprintf("%d", r.Progress.IncorrectCount),
			fmt.Sprintf("%d", r.Total),
			last,
		})
	}
	return rows
}

func charTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
