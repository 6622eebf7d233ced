package study

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/kanaflash/internal/generator"
	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
)

var (
	// ErrNoCards is returned when a run would have nothing to study.
	ErrNoCards = errors.New("no cards to study")
	// ErrFinished is returned when a finished run receives more input.
	ErrFinished = errors.New("study run already finished")
)

// Recorder is the part of the session store a run dispatches to.
type Recorder interface {
	StartSession(kanaType model.KanaType, opts *model.StudyOptions) model.StudySession
	AddProgress(p model.StudyProgress)
	EndSession(payload session.EndPayload) (model.StudySession, bool)
	Snapshot() session.State
}

// Writer persists state snapshots without blocking the caller.
type Writer interface {
	Enqueue(st session.State, what session.Collection)
}

// Config describes a run.
type Config struct {
	KanaType  model.KanaType
	Cards     []model.Kana
	Options   model.StudyOptions
	Generator *generator.Generator
	// Writer is optional; without it nothing is persisted.
	Writer Writer
	Clock  func() time.Time
}

// Summary reports the outcome of a finished run.
type Summary struct {
	KanaType model.KanaType
	Correct  int
	Total    int
	Left     bool
	Session  model.StudySession
}

// Title returns the completion heading.
func (s Summary) Title() string {
	return fmt.Sprintf("%s Study Complete!", s.KanaType.Title())
}

// Message returns the completion message.
func (s Summary) Message() string {
	return fmt.Sprintf("You got %d out of %d correct!", s.Correct, s.Total)
}

// Run walks through one run list, one answer per card.
type Run struct {
	rec    Recorder
	writer Writer
	now    func() time.Time

	kanaType model.KanaType
	cards    []model.Kana
	idx      int
	progress []model.StudyProgress
	shownAt  time.Time

	finished bool
	summary  Summary
}

// NewRun builds the run list and starts a session.
func NewRun(rec Recorder, cfg Config) (*Run, error) {
	gen := cfg.Generator
	if gen == nil {
		gen = generator.New()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	cards := BuildRunList(cfg.Cards, cfg.Options, gen)
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	opts := cfg.Options
	rec.StartSession(cfg.KanaType, &opts)
	return &Run{
		rec:      rec,
		writer:   cfg.Writer,
		now:      now,
		kanaType: cfg.KanaType,
		cards:    cards,
		shownAt:  now(),
	}, nil
}

// Cards returns the run list.
func (r *Run) Cards() []model.Kana {
	out := make([]model.Kana, len(r.cards))
	copy(out, r.cards)
	return out
}

// Current returns the card awaiting an answer.
func (r *Run) Current() (model.Kana, bool) {
	if r.finished || r.idx >= len(r.cards) {
		return model.Kana{}, false
	}
	return r.cards[r.idx], true
}

// Position returns the 1-based index of the current card and the run length.
func (r *Run) Position() (int, int) {
	return r.idx + 1, len(r.cards)
}

// Progress returns the answers given so far.
func (r *Run) Progress() []model.StudyProgress {
	out := make([]model.StudyProgress, len(r.progress))
	copy(out, r.progress)
	return out
}

// Finished reports whether the run has ended.
func (r *Run) Finished() bool {
	return r.finished
}

// Summary returns the outcome once the run has ended.
func (r *Run) Summary() Summary {
	return r.summary
}

// Answer records the outcome for the current card and advances. After the
// last card the session is ended and done is true.
func (r *Run) Answer(correct bool) (Summary, bool, error) {
	k, ok := r.Current()
	if !ok {
		return Summary{}, false, ErrFinished
	}
	now := r.now()
	p := model.StudyProgress{
		KanaID:       k.ID,
		IsCorrect:    correct,
		ResponseTime: now.Sub(r.shownAt).Milliseconds(),
		Timestamp:    model.FormatTime(now),
	}
	r.record(p)
	r.idx++
	r.shownAt = now
	if r.idx < len(r.cards) {
		return Summary{}, false, nil
	}
	return r.finish(now, false), true, nil
}

// Leave ends the run early. Every unanswered card is recorded as incorrect.
func (r *Run) Leave() (Summary, error) {
	if r.finished {
		return Summary{}, ErrFinished
	}
	now := r.now()
	ts := model.FormatTime(now)
	for _, k := range r.cards[r.idx:] {
		r.record(model.StudyProgress{
			KanaID:       k.ID,
			IsCorrect:    false,
			ResponseTime: 0,
			Timestamp:    ts,
		})
	}
	r.idx = len(r.cards)
	return r.finish(now, true), nil
}

func (r *Run) record(p model.StudyProgress) {
	r.rec.AddProgress(p)
	r.progress = append(r.progress, p)
	r.persist(session.CollectProgress)
}

func (r *Run) finish(now time.Time, left bool) Summary {
	done, _ := r.rec.EndSession(session.EndPayload{EndTime: now, Progress: r.Progress()})
	r.persist(session.CollectSessions)
	correct := 0
	for _, p := range r.progress {
		if p.IsCorrect {
			correct++
		}
	}
	r.finished = true
	r.summary = Summary{
		KanaType: r.kanaType,
		Correct:  correct,
		Total:    len(r.progress),
		Left:     left,
		Session:  done,
	}
	return r.summary
}

func (r *Run) persist(what session.Collection) {
	if r.writer == nil {
		return
	}
	r.writer.Enqueue(r.rec.Snapshot(), what)
}
