package store

import (
	"context"
	"log/slog"
)

// Safe applies the never-fail policy of the UI layer to a KV: reads fall
// back to a default and write failures are logged.
type Safe struct {
	kv      KV
	log     *slog.Logger
	onError func(error)
}

// SafeOption configures a Safe.
type SafeOption func(*Safe)

// OnError registers fn to observe every swallowed failure.
func OnError(fn func(error)) SafeOption {
	return func(s *Safe) {
		s.onError = fn
	}
}

// NewSafe wraps kv. A nil logger discards messages.
func NewSafe(kv KV, log *slog.Logger, opts ...SafeOption) *Safe {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Safe{kv: kv, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOr returns the value under key, or def when it is missing or unreadable.
func GetOr[T any](ctx context.Context, s *Safe, key string, def T) T {
	var v T
	ok, err := s.kv.Get(ctx, key, &v)
	if err != nil {
		s.fail("error retrieving data", key, err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// Set stores value under key, logging failures.
func (s *Safe) Set(ctx context.Context, key string, value any) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.fail("error storing data", key, err)
	}
}

// Clear removes every key, logging failures.
func (s *Safe) Clear(ctx context.Context) {
	if err := s.kv.Clear(ctx); err != nil {
		s.fail("error clearing data", "", err)
	}
}

func (s *Safe) fail(msg, key string, err error) {
	if key != "" {
		s.log.Error(msg, "key", key, "err", err)
	} else {
		s.log.Error(msg, "err", err)
	}
	if s.onError != nil {
		s.onError(err)
	}
}
