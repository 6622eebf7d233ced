package statsui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
	"github.com/verte-zerg/kanaflash/internal/store"
)

func seededStore(t *testing.T) *session.Store {
	t.Helper()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	st := session.New(store.NewMemory(), session.WithClock(func() time.Time { return now }))
	st.StartSession(model.Katakana, nil)
	p := model.StudyProgress{KanaID: "k1", IsCorrect: true, Timestamp: model.FormatTime(now)}
	st.AddProgress(p)
	st.EndSession(session.EndPayload{EndTime: now.Add(time.Minute), Progress: []model.StudyProgress{p}})
	return st
}

func TestOverviewShowsTotals(t *testing.T) {
	m := NewModel(seededStore(t))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	for _, want := range []string{"Overview", "Study Time", "1m 0s", "100%", "Katakana"} {
		if !strings.Contains(out, want) {
			t.Fatalf("overview missing %q:\n%s", want, out)
		}
	}
}

func TestScriptFilterCycles(t *testing.T) {
	m := NewModel(seededStore(t))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.filter != model.Hiragana {
		t.Fatalf("expected hiragana filter, got %q", m.filter)
	}
	if len(m.report.Sessions) != 0 || len(m.report.Ranking) != 0 {
		t.Fatalf("expected no hiragana data, got %+v", m.report)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.filter != model.Katakana || len(m.report.Ranking) != 1 {
		t.Fatalf("expected one katakana rank, got %+v", m.report.Ranking)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.filter != "" {
		t.Fatalf("expected filter reset, got %q", m.filter)
	}
}

func TestCharacterTab(t *testing.T) {
	m := NewModel(seededStore(t))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabCharTable {
		t.Fatalf("expected char tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "ア (a)") {
		t.Fatalf("expected katakana row:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(seededStore(t))
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("expected quit command")
	}
}
