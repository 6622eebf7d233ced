// Package session holds the study-session state container.
package session

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/store"
)

// MaxSessions is the number of completed sessions kept in history.
const MaxSessions = 10

// State is the in-memory study state.
type State struct {
	Sessions       []model.StudySession
	CurrentSession *model.StudySession
	KanaProgress   model.ProgressMap
	IsLoading      bool
	Error          string
}

// EndPayload finishes the current session.
type EndPayload struct {
	EndTime  time.Time
	Progress []model.StudyProgress
}

// Store owns the State and applies transitions to it. All transitions are
// synchronous and never touch the KV store; only LoadStoredData and the
// Save* methods do I/O.
type Store struct {
	mu    sync.Mutex
	state State

	kv  store.KV
	log *slog.Logger
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New returns an empty Store backed by kv.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		state: State{
			Sessions:     []model.StudySession{},
			KanaProgress: model.ProgressMap{},
		},
		kv:  kv,
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SessionsByType returns completed sessions of one script.
func (s *Store) SessionsByType(kanaType model.KanaType) []model.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.StudySession
	for _, sess := range s.state.Sessions {
		if sess.KanaType == kanaType {
			out = append(out, sess)
		}
	}
	return out
}

// StartSession makes a new session current, discarding any unfinished one.
func (s *Store) StartSession(kanaType model.KanaType, opts *model.StudyOptions) model.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := model.StudySession{
		ID:           newSessionID(now),
		KanaType:     kanaType,
		StartTime:    model.FormatTime(now),
		StudyOptions: cloneOptions(opts),
	}
	s.state.CurrentSession = &sess
	return sess
}

// AddProgress records one answer. It must be called exactly once per answer.
func (s *Store) AddProgress(p model.StudyProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur := s.state.CurrentSession; cur != nil {
		cur.CardsReviewed++
		if p.IsCorrect {
			cur.CorrectAnswers++
		} else {
			cur.IncorrectAnswers++
		}
	}
	if s.state.KanaProgress == nil {
		s.state.KanaProgress = model.ProgressMap{}
	}
	entry := s.state.KanaProgress[p.KanaID]
	if p.IsCorrect {
		entry.CorrectCount++
	} else {
		entry.IncorrectCount++
	}
	entry.LastReviewed = p.Timestamp
	s.state.KanaProgress[p.KanaID] = entry
}

// EndSession moves the current session into history with counters derived
// from payload.Progress. Kana progress is left alone: those answers are
// expected to have gone through AddProgress already. Without a current
// session it does nothing and reports false.
func (s *Store) EndSession(payload EndPayload) (model.StudySession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.CurrentSession
	if cur == nil {
		return model.StudySession{}, false
	}
	correct := 0
	for _, p := range payload.Progress {
		if p.IsCorrect {
			correct++
		}
	}
	done := *cur
	done.EndTime = model.FormatTime(payload.EndTime)
	done.CardsReviewed = len(payload.Progress)
	done.CorrectAnswers = correct
	done.IncorrectAnswers = len(payload.Progress) - correct

	s.state.Sessions = capSessions(append(s.state.Sessions, done))
	s.state.CurrentSession = nil
	return done, true
}

// ClearSessions drops history and kana progress. The current session and
// persisted data are untouched.
func (s *Store) ClearSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sessions = []model.StudySession{}
	s.state.KanaProgress = model.ProgressMap{}
}

// SetError records or clears (empty msg) the error message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = msg
}

func capSessions(sessions []model.StudySession) []model.StudySession {
	if len(sessions) <= MaxSessions {
		return sessions
	}
	out := make([]model.StudySession, MaxSessions)
	copy(out, sessions[len(sessions)-MaxSessions:])
	return out
}

func newSessionID(now time.Time) string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	return id.String()
}

func cloneOptions(opts *model.StudyOptions) *model.StudyOptions {
	if opts == nil {
		return nil
	}
	out := *opts
	if opts.CharacterCount != nil {
		n := *opts.CharacterCount
		out.CharacterCount = &n
	}
	return &out
}

func (st State) clone() State {
	out := State{
		Sessions:     make([]model.StudySession, len(st.Sessions)),
		KanaProgress: st.KanaProgress.Clone(),
		IsLoading:    st.IsLoading,
		Error:        st.Error,
	}
	copy(out.Sessions, st.Sessions)
	if st.CurrentSession != nil {
		cur := *st.CurrentSession
		out.CurrentSession = &cur
	}
	return out
}
