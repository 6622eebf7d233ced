package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/store"
)

// Collection selects what a write-behind job persists.
type Collection int

const (
	CollectSessions Collection = 1 << iota
	CollectProgress

	CollectAll = CollectSessions | CollectProgress
)

const queueSize = 64

type writeJob struct {
	what     Collection
	sessions []model.StudySession
	progress model.ProgressMap
	flushed  chan struct{}
}

// Persister writes state snapshots in the background. Memory is always
// updated first; a failed write is logged and remembered, never rolled back.
type Persister struct {
	safe *store.Safe
	log  *slog.Logger

	sendMu sync.Mutex
	closed bool
	jobs   chan writeJob
	done   chan struct{}

	errMu   sync.Mutex
	lastErr error
	failed  int
}

// NewPersister starts the background writer.
func NewPersister(kv store.KV, log *slog.Logger) *Persister {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	p := &Persister{
		log:  log,
		jobs: make(chan writeJob, queueSize),
		done: make(chan struct{}),
	}
	p.safe = store.NewSafe(kv, log, store.OnError(p.recordFailure))
	go p.run()
	return p
}

// Enqueue schedules a write of the selected collections of st. It does not
// wait for the write. Jobs enqueued after Close are dropped.
func (p *Persister) Enqueue(st State, what Collection) {
	job := writeJob{what: what}
	if what&CollectSessions != 0 {
		job.sessions = st.Sessions
	}
	if what&CollectProgress != 0 {
		job.progress = st.KanaProgress
	}
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.closed {
		p.log.Warn("write dropped after close")
		return
	}
	p.jobs <- job
}

// Flush waits until every job enqueued before the call has been written.
func (p *Persister) Flush(ctx context.Context) error {
	flushed := make(chan struct{})
	p.sendMu.Lock()
	if p.closed {
		p.sendMu.Unlock()
		return nil
	}
	p.jobs <- writeJob{flushed: flushed}
	p.sendMu.Unlock()

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the writer.
func (p *Persister) Close() {
	p.sendMu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.sendMu.Unlock()
	<-p.done
}

// LastError returns the most recent write failure, if any.
func (p *Persister) LastError() error {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.lastErr
}

// Failures returns the number of failed writes.
func (p *Persister) Failures() int {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.failed
}

func (p *Persister) run() {
	defer close(p.done)
	ctx := context.Background()
	for job := range p.jobs {
		if job.flushed != nil {
			close(job.flushed)
			continue
		}
		if job.what&CollectSessions != 0 {
			p.write(ctx, store.KeySessions, job.sessions)
		}
		if job.what&CollectProgress != 0 {
			p.write(ctx, store.KeyKanaProgress, job.progress)
		}
	}
}

func (p *Persister) write(ctx context.Context, key string, value any) {
	p.safe.Set(ctx, key, value)
}

func (p *Persister) recordFailure(err error) {
	p.errMu.Lock()
	p.lastErr = err
	p.failed++
	p.errMu.Unlock()
}
