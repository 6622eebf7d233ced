package study

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanaflash/internal/generator"
	"github.com/verte-zerg/kanaflash/internal/kana"
	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
	"github.com/verte-zerg/kanaflash/internal/store"
)

func intPtr(v int) *int { return &v }

func ids(cards []model.Kana) []string {
	out := make([]string, len(cards))
	for i, k := range cards {
		out[i] = k.ID
	}
	return out
}

func TestParseOptions(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want model.StudyOptions
	}{
		{name: "empty", raw: "", want: model.StudyOptions{IsShuffled: true}},
		{name: "malformed", raw: "{isShuffled:", want: model.StudyOptions{IsShuffled: true}},
		{name: "wrong type", raw: `{"characterCount":"ten"}`, want: model.StudyOptions{IsShuffled: true}},
		{name: "ordered", raw: `{"isShuffled":false}`, want: model.StudyOptions{IsShuffled: false}},
		{name: "count", raw: `{"isShuffled":true,"characterCount":10}`, want: model.StudyOptions{IsShuffled: true, CharacterCount: intPtr(10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseOptions(tc.raw))
		})
	}
}

func TestBuildRunList(t *testing.T) {
	all := kana.Hiragana()
	gen := generator.NewWithSeed(1)

	ordered := BuildRunList(all, model.StudyOptions{IsShuffled: false, CharacterCount: intPtr(5)}, gen)
	assert.Equal(t, ids(all), ids(ordered), "ordered runs ignore the count")

	limited := BuildRunList(all, model.StudyOptions{IsShuffled: true, CharacterCount: intPtr(5)}, gen)
	assert.Len(t, limited, 5)
	seen := map[string]bool{}
	for _, k := range limited {
		assert.False(t, seen[k.ID], "duplicate %s", k.ID)
		seen[k.ID] = true
	}

	for _, count := range []*int{nil, intPtr(-1), intPtr(0), intPtr(1000)} {
		full := BuildRunList(all, model.StudyOptions{IsShuffled: true, CharacterCount: count}, gen)
		assert.ElementsMatch(t, ids(all), ids(full))
	}
}

func TestCheckAnswer(t *testing.T) {
	shi := model.Kana{ID: "h12", Character: "し", Romaji: "shi", Type: model.Hiragana}
	assert.True(t, CheckAnswer(shi, "shi"))
	assert.True(t, CheckAnswer(shi, " SHI "))
	assert.True(t, CheckAnswer(shi, "si"))
	assert.False(t, CheckAnswer(shi, "su"))
	assert.False(t, CheckAnswer(shi, ""))
}

type harness struct {
	st    *session.Store
	kv    *store.Memory
	p     *session.Persister
	clock time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{kv: store.NewMemory(), clock: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	h.st = session.New(h.kv, session.WithClock(h.now))
	h.p = session.NewPersister(h.kv, nil)
	t.Cleanup(h.p.Close)
	return h
}

func (h *harness) now() time.Time {
	return h.clock
}

func (h *harness) tick(d time.Duration) {
	h.clock = h.clock.Add(d)
}

func (h *harness) newRun(t *testing.T, cards []model.Kana, opts model.StudyOptions) *Run {
	t.Helper()
	run, err := NewRun(h.st, Config{
		KanaType:  model.Hiragana,
		Cards:     cards,
		Options:   opts,
		Generator: generator.NewWithSeed(3),
		Writer:    h.p,
		Clock:     h.now,
	})
	require.NoError(t, err)
	return run
}

func TestRunCompletes(t *testing.T) {
	h := newHarness(t)
	cards := kana.Hiragana()[:3]
	run := h.newRun(t, cards, model.StudyOptions{IsShuffled: false})

	cur := h.st.Snapshot().CurrentSession
	require.NotNil(t, cur)
	require.NotNil(t, cur.StudyOptions)
	assert.False(t, cur.StudyOptions.IsShuffled)

	outcomes := []bool{true, false, true}
	var summary Summary
	for i, ok := range outcomes {
		k, has := run.Current()
		require.True(t, has)
		assert.Equal(t, cards[i].ID, k.ID)
		pos, total := run.Position()
		assert.Equal(t, i+1, pos)
		assert.Equal(t, 3, total)

		h.tick(1500 * time.Millisecond)
		var done bool
		var err error
		summary, done, err = run.Answer(ok)
		require.NoError(t, err)
		assert.Equal(t, i == len(outcomes)-1, done)
	}

	assert.True(t, run.Finished())
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, "Hiragana Study Complete!", summary.Title())
	assert.Equal(t, "You got 2 out of 3 correct!", summary.Message())
	for _, p := range run.Progress() {
		assert.Equal(t, int64(1500), p.ResponseTime)
	}

	snap := h.st.Snapshot()
	assert.Nil(t, snap.CurrentSession)
	require.Len(t, snap.Sessions, 1)
	assert.Equal(t, 3, snap.Sessions[0].CardsReviewed)
	assert.Equal(t, 2, snap.Sessions[0].CorrectAnswers)
	assert.Equal(t, 4500*time.Millisecond, snap.Sessions[0].Duration())
	assert.Equal(t, 1, snap.KanaProgress["h1"].CorrectCount)
	assert.Equal(t, 1, snap.KanaProgress["h2"].IncorrectCount)
	assert.Equal(t, 1, snap.KanaProgress["h3"].Total())

	_, _, err := run.Answer(true)
	assert.ErrorIs(t, err, ErrFinished)
	_, err = run.Leave()
	assert.ErrorIs(t, err, ErrFinished)

	require.NoError(t, h.p.Flush(context.Background()))
	reloaded := session.New(h.kv)
	require.NoError(t, reloaded.LoadStoredData(context.Background()))
	assert.Equal(t, snap.Sessions, reloaded.Snapshot().Sessions)
	assert.Equal(t, snap.KanaProgress, reloaded.Snapshot().KanaProgress)
}

func TestRunLeaveMarksRemainingIncorrect(t *testing.T) {
	h := newHarness(t)
	cards := kana.Katakana()[:5]
	run := h.newRun(t, cards, model.StudyOptions{IsShuffled: false})

	_, _, err := run.Answer(true)
	require.NoError(t, err)
	_, _, err = run.Answer(true)
	require.NoError(t, err)

	h.tick(time.Minute)
	summary, err := run.Leave()
	require.NoError(t, err)
	assert.True(t, summary.Left)
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 5, summary.Total)

	progress := run.Progress()
	require.Len(t, progress, 5)
	for _, p := range progress[2:] {
		assert.False(t, p.IsCorrect)
		assert.Zero(t, p.ResponseTime)
		assert.Equal(t, model.FormatTime(h.clock), p.Timestamp)
	}

	snap := h.st.Snapshot()
	require.Len(t, snap.Sessions, 1)
	sess := snap.Sessions[0]
	assert.Equal(t, 5, sess.CardsReviewed)
	assert.Equal(t, 2, sess.CorrectAnswers)
	assert.Equal(t, 3, sess.IncorrectAnswers)
	for i, k := range cards {
		got := snap.KanaProgress[k.ID]
		assert.Equal(t, 1, got.Total(), k.ID)
		if i < 2 {
			assert.Equal(t, 1, got.CorrectCount)
		} else {
			assert.Equal(t, 1, got.IncorrectCount)
		}
	}
}

func TestRunLeaveImmediately(t *testing.T) {
	h := newHarness(t)
	run := h.newRun(t, kana.Hiragana(), model.StudyOptions{IsShuffled: true, CharacterCount: intPtr(4)})
	summary, err := run.Leave()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Correct)
	assert.Equal(t, 4, summary.Total)
	assert.Len(t, h.st.Snapshot().KanaProgress, 4)
}

func TestRunFallbackCount(t *testing.T) {
	h := newHarness(t)
	all := kana.Hiragana()
	run := h.newRun(t, all, model.StudyOptions{IsShuffled: true, CharacterCount: intPtr(-1)})
	assert.ElementsMatch(t, ids(all), ids(run.Cards()))
}

func TestNewRunWithoutCards(t *testing.T) {
	h := newHarness(t)
	_, err := NewRun(h.st, Config{KanaType: model.Hiragana, Options: DefaultOptions()})
	assert.ErrorIs(t, err, ErrNoCards)
	assert.Nil(t, h.st.Snapshot().CurrentSession)
}
