package session

import (
	"context"
	"fmt"
	"regexp"

	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/store"
)

// Kana ids used to be plain numbers, which collide across scripts.
var legacyKanaID = regexp.MustCompile(`^\d+$`)

// LoadStoredData hydrates sessions and kana progress from the KV store.
// On failure the previous collections are kept and State.Error is set.
// Calling it again simply re-hydrates.
func (s *Store) LoadStoredData(ctx context.Context) error {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()

	sessions, progress, err := s.readStored(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = fmt.Sprintf("failed to load data: %v", err)
		s.log.Error("failed to load stored data", "err", err)
		return err
	}
	s.state.Sessions = capSessions(sessions)
	s.state.KanaProgress = progress
	s.state.Error = ""
	return nil
}

func (s *Store) readStored(ctx context.Context) ([]model.StudySession, model.ProgressMap, error) {
	var sessions []model.StudySession
	if _, err := s.kv.Get(ctx, store.KeySessions, &sessions); err != nil {
		return nil, nil, err
	}
	var progress model.ProgressMap
	if _, err := s.kv.Get(ctx, store.KeyKanaProgress, &progress); err != nil {
		return nil, nil, err
	}
	if sessions == nil {
		sessions = []model.StudySession{}
	}
	if progress == nil {
		progress = model.ProgressMap{}
	}
	if hasLegacyIDs(progress) {
		s.log.Info("legacy kana ids found, resetting stored data")
		empty := model.ProgressMap{}
		safe := store.NewSafe(s.kv, s.log)
		safe.Set(ctx, store.KeySessions, []model.StudySession{})
		safe.Set(ctx, store.KeyKanaProgress, empty)
		return []model.StudySession{}, empty, nil
	}
	return sessions, progress, nil
}

func hasLegacyIDs(progress model.ProgressMap) bool {
	for id := range progress {
		if legacyKanaID.MatchString(id) {
			return true
		}
	}
	return false
}

// SaveSessions writes sessions verbatim and returns them.
func (s *Store) SaveSessions(ctx context.Context, sessions []model.StudySession) ([]model.StudySession, error) {
	if err := s.kv.Set(ctx, store.KeySessions, sessions); err != nil {
		return nil, fmt.Errorf("save sessions: %w", err)
	}
	return sessions, nil
}

// SaveKanaProgress writes progress verbatim and returns it.
func (s *Store) SaveKanaProgress(ctx context.Context, progress model.ProgressMap) (model.ProgressMap, error) {
	if err := s.kv.Set(ctx, store.KeyKanaProgress, progress); err != nil {
		return nil, fmt.Errorf("save kana progress: %w", err)
	}
	return progress, nil
}
