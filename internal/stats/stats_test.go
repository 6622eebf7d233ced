package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanaflash/internal/kana"
	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
)

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func endedSession(id string, offset, length time.Duration, reviewed, correct int) model.StudySession {
	start := base.Add(offset)
	return model.StudySession{
		ID:               id,
		KanaType:         model.Hiragana,
		StartTime:        model.FormatTime(start),
		EndTime:          model.FormatTime(start.Add(length)),
		CardsReviewed:    reviewed,
		CorrectAnswers:   correct,
		IncorrectAnswers: reviewed - correct,
	}
}

func TestComputeTotals(t *testing.T) {
	sessions := []model.StudySession{
		endedSession("a", 0, 2*time.Minute, 10, 8),
		endedSession("b", time.Hour, 67*time.Second, 5, 2),
	}

	ov := Compute(sessions)
	assert.Equal(t, 2*time.Minute+67*time.Second, ov.TotalStudyTime)
	assert.Equal(t, 15, ov.TotalCardsReviewed)
	assert.Equal(t, 10, ov.TotalCorrectAnswers)
	assert.Equal(t, 67, ov.Accuracy)
	require.Len(t, ov.RecentSessions, 2)
	assert.Equal(t, "b", ov.RecentSessions[0].ID)
	assert.Equal(t, "a", ov.RecentSessions[1].ID)
}

func TestComputeEmpty(t *testing.T) {
	ov := Compute(nil)
	assert.Zero(t, ov.TotalStudyTime)
	assert.Zero(t, ov.Accuracy)
	assert.Empty(t, ov.RecentSessions)
}

func TestComputeRecentLimit(t *testing.T) {
	var sessions []model.StudySession
	for i := 0; i < 8; i++ {
		sessions = append(sessions, endedSession(string(rune('a'+i)), time.Duration(i)*time.Hour, time.Minute, 1, 1))
	}
	ov := Compute(sessions)
	require.Len(t, ov.RecentSessions, RecentLimit)
	assert.Equal(t, "h", ov.RecentSessions[0].ID)
	assert.Equal(t, "d", ov.RecentSessions[4].ID)
}

func TestAccuracyBounds(t *testing.T) {
	assert.Equal(t, 0, Accuracy(0, 0))
	assert.Equal(t, 0, Accuracy(3, 0))
	assert.Equal(t, 100, Accuracy(4, 4))
	assert.Equal(t, 100, Accuracy(5, 4))
	assert.Equal(t, 33, Accuracy(1, 3))
	assert.Equal(t, 67, Accuracy(2, 3))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m 0s", FormatDuration(0))
	assert.Equal(t, "3m 7s", FormatDuration(3*time.Minute+7*time.Second+400*time.Millisecond))
	assert.Equal(t, "75m 0s", FormatDuration(75*time.Minute))
	assert.Equal(t, "0m 0s", FormatDuration(-time.Second))
}

func TestRankCharactersOrdersByTotal(t *testing.T) {
	dataset := kana.Hiragana()
	progress := model.ProgressMap{
		"h3": {CorrectCount: 1, IncorrectCount: 1},
		"h1": {CorrectCount: 1, IncorrectCount: 1},
		"h2": {CorrectCount: 5},
		"h4": {},
	}

	ranks := RankCharacters(dataset, progress)
	require.Len(t, ranks, 3)
	assert.Equal(t, "h2", ranks[0].Kana.ID)
	assert.Equal(t, "h1", ranks[1].Kana.ID)
	assert.Equal(t, "h3", ranks[2].Kana.ID)
	assert.Equal(t, 100, ranks[0].Accuracy)
	assert.Equal(t, 50, ranks[1].Accuracy)
}

func TestRankCharactersIgnoresUnknownIDs(t *testing.T) {
	ranks := RankCharacters(kana.Hiragana(), model.ProgressMap{"zz": {CorrectCount: 3}})
	assert.Empty(t, ranks)
}

func TestTopAndWeakest(t *testing.T) {
	ranks := RankCharacters(kana.Hiragana(), model.ProgressMap{
		"h1": {CorrectCount: 9, IncorrectCount: 1},
		"h2": {CorrectCount: 1, IncorrectCount: 4},
		"h3": {CorrectCount: 2, IncorrectCount: 2},
	})

	top := TopCharacters(ranks, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "h1", top[0].Kana.ID)
	assert.Len(t, TopCharacters(ranks, 0), 3)

	weak := WeakestCharacters(ranks, 2)
	require.Len(t, weak, 2)
	assert.Equal(t, "h2", weak[0].Kana.ID)
	assert.Equal(t, "h3", weak[1].Kana.ID)
	assert.Nil(t, WeakestCharacters(nil, 3))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "+++", Sparkline([]float64{5, 5, 5}))
	assert.Equal(t, " @", Sparkline([]float64{0, 100}))
}

func TestRenderReportPlain(t *testing.T) {
	st := session.State{
		Sessions: []model.StudySession{endedSession("a", 0, 3*time.Minute+7*time.Second, 4, 3)},
		KanaProgress: model.ProgressMap{
			"h1": {CorrectCount: 3, IncorrectCount: 1},
		},
	}
	r := BuildReport(st, kana.All())

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{}))
	out := buf.String()
	assert.Contains(t, out, "Study time: 3m 7s")
	assert.Contains(t, out, "Cards reviewed: 4")
	assert.Contains(t, out, "Accuracy: 75%")
	assert.Contains(t, out, "あ (a)")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderReportEmpty(t *testing.T) {
	r := BuildReport(session.State{Error: "failed to load data: boom"}, kana.All())

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{}))
	out := buf.String()
	assert.Contains(t, out, "Warning: failed to load data: boom")
	assert.Contains(t, out, "No study sessions yet.")
	assert.Contains(t, out, "No characters studied yet.")
}
