package persistence

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/phonebook/core/internal/domain/entities"
	"github.com/phonebook/core/internal/domain/phonebook"
	"github.com/phonebook/core/internal/infrastructure/logger"
)

// ErrWriterClosed is returned by Submit and Load after Close.
var ErrWriterClosed = errors.New("persistence writer is closed")

// Writer owns all blocking file work for one phonebook file. Jobs run one at
// a time on a dedicated goroutine, in the order they were accepted.
type Writer struct {
	path    string
	logger  *logger.Logger
	metrics *Metrics

	jobs      chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// persisted and hasPersisted are only touched on the writer goroutine.
	persisted    uint64
	hasPersisted bool
}

// Option configures a Writer
type Option func(*Writer)

// WithMetrics records save and load activity in m
func WithMetrics(m *Metrics) Option {
	return func(w *Writer) { w.metrics = m }
}

// NewWriter starts a writer for the file at path
func NewWriter(path string, log *logger.Logger, opts ...Option) *Writer {
	w := &Writer{
		path:   path,
		logger: log.WithComponent("persistence"),
		jobs:   make(chan func()),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w
}

// Path returns the file the writer manages.
func (w *Writer) Path() string {
	return w.path
}

// Submit writes snap to disk and waits for the result. A snapshot whose
// version is not newer than the last one written is acknowledged without
// touching the file: the newer snapshot already contains its changes.
//
// ctx bounds only the wait. Once accepted, a write runs to completion.
func (w *Writer) Submit(ctx context.Context, snap entities.Snapshot) error {
	errc := make(chan error, 1)
	if err := w.enqueue(ctx, func() { errc <- w.save(snap) }); err != nil {
		return err
	}
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load reads the file on the writer goroutine, so it never interleaves with
// a save from this process.
func (w *Writer) Load(ctx context.Context) (*phonebook.Store, error) {
	type result struct {
		store *phonebook.Store
		err   error
	}
	resc := make(chan result, 1)
	err := w.enqueue(ctx, func() {
		store, err := Load(w.path)
		w.metrics.observeLoad(err)
		resc <- result{store, err}
	})
	if err != nil {
		return nil, err
	}
	select {
	case res := <-resc:
		return res.store, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the writer after the job in progress, if any, has finished.
func (w *Writer) Close() error {
	w.closeOnce.Do(func() { close(w.quit) })
	<-w.done
	return nil
}

func (w *Writer) enqueue(ctx context.Context, job func()) error {
	select {
	case <-w.quit:
		return ErrWriterClosed
	default:
	}
	select {
	case w.jobs <- job:
		return nil
	case <-w.quit:
		return ErrWriterClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case job := <-w.jobs:
			job()
		case <-w.quit:
			return
		}
	}
}

func (w *Writer) save(snap entities.Snapshot) error {
	if w.hasPersisted && snap.Version <= w.persisted {
		w.metrics.observeSkip()
		w.logger.Debugw("Skipping stale snapshot",
			"version", snap.Version,
			"persisted_version", w.persisted,
		)
		return nil
	}

	start := time.Now()
	err := Save(w.path, snap.Contacts)
	elapsed := time.Since(start)

	w.metrics.observeSave(elapsed, snap.Version, err)
	w.logger.LogPersist(w.path, snap.Version, len(snap.Contacts), float64(elapsed.Microseconds())/1000, err)
	if err != nil {
		return err
	}
	w.persisted = snap.Version
	w.hasPersisted = true
	return nil
}
