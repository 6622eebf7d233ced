package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
)

// DefaultTop is the number of characters shown in the progress list.
const DefaultTop = 10

// Report contains precomputed data for stats rendering.
type Report struct {
	Overview Overview
	Ranking  []CharRank
	Trend    []float64
	Sessions []model.StudySession
	// Error carries the load error of the underlying state, if any.
	Error string
}

// BuildReport derives everything the stats views show from a state snapshot.
func BuildReport(st session.State, dataset []model.Kana) Report {
	return Report{
		Overview: Compute(st.Sessions),
		Ranking:  RankCharacters(dataset, st.KanaProgress),
		Trend:    SessionAccuracies(st.Sessions),
		Sessions: st.Sessions,
		Error:    st.Error,
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// RenderOptions tune RenderReport.
type RenderOptions struct {
	Top   int
	Color bool
}

// RenderReport prints the overview, recent sessions and character progress.
func RenderReport(w io.Writer, r Report, opts RenderOptions) error {
	p := &printer{w: w, color: opts.Color}
	if r.Error != "" {
		p.line(p.style(badStyle, "Warning: "+r.Error))
	}
	if err := renderOverview(p, r); err != nil {
		return err
	}
	renderRecent(p, r.Overview.RecentSessions)
	top := opts.Top
	if top == 0 {
		top = DefaultTop
	}
	renderRanking(p, TopCharacters(r.Ranking, top))
	return p.err
}

// SessionLabel renders a one-line description of a session.
func SessionLabel(s model.StudySession) string {
	date := s.StartTime
	if t, err := model.ParseTime(s.StartTime); err == nil {
		date = t.Local().Format("2006-01-02 15:04")
	}
	label := fmt.Sprintf("%s %s: %d cards, %d correct, %d incorrect",
		s.KanaType.Title(), date, s.CardsReviewed, s.CorrectAnswers, s.IncorrectAnswers)
	if s.EndTime != "" {
		label += ", duration " + FormatDuration(s.Duration())
	}
	return label
}

// KanaLabel renders a character with its romaji.
func KanaLabel(k model.Kana) string {
	return fmt.Sprintf("%s (%s)", k.Character, k.Romaji)
}

func renderOverview(p *printer, r Report) error {
	ov := r.Overview
	p.line(p.style(headingStyle, "Overall"))
	p.line(fmt.Sprintf("Study time: %s", FormatDuration(ov.TotalStudyTime)))
	p.line(fmt.Sprintf("Cards reviewed: %d", ov.TotalCardsReviewed))
	p.line(fmt.Sprintf("Correct answers: %d", ov.TotalCorrectAnswers))
	p.line(fmt.Sprintf("Accuracy: %d%%", ov.Accuracy))
	if len(r.Trend) > 1 {
		p.line(fmt.Sprintf("Trend: [%s]", Sparkline(r.Trend)))
	}
	p.line("")
	return p.err
}

func renderRecent(p *printer, sessions []model.StudySession) {
	p.line(p.style(headingStyle, "Recent Sessions"))
	if len(sessions) == 0 {
		p.line("No study sessions yet.")
		p.line("")
		return
	}
	for _, s := range sessions {
		p.line(SessionLabel(s))
	}
	p.line("")
}

func renderRanking(p *printer, ranks []CharRank) {
	p.line(p.style(headingStyle, "Character Progress"))
	if len(ranks) == 0 {
		p.line("No characters studied yet.")
		p.line("")
		return
	}
	headers := []string{"Char", "Correct", "Incorrect", "Total", "Accuracy"}
	rows := make([][]string, 0, len(ranks))
	for _, r := range ranks {
		rows = append(rows, []string{
			KanaLabel(r.Kana),
			fmt.Sprintf("%d", r.Progress.CorrectCount),
			fmt.Sprintf("%d", r.Progress.IncorrectCount),
			fmt.Sprintf("%d", r.Total),
			fmt.Sprintf("%d%%", r.Accuracy),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	lines := FormatTable(headers, rows, rightAlign)
	for i, line := range lines {
		if i > 0 && p.color {
			if ranks[i-1].Accuracy >= 80 {
				line = p.style(goodStyle, line)
			} else if ranks[i-1].Accuracy < 50 {
				line = p.style(badStyle, line)
			}
		}
		p.line(line)
	}
	p.line("")
}

// ShouldUseColor reports whether w is a terminal that accepts colour.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, strings.TrimRight(s, " "))
}

func (p *printer) style(st lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return st.Render(s)
}
