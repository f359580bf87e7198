package progress

import (
	"context"
	"slices"
	"sync"

	"github.com/abhisek/webdev100/internal/logging"
)

// Journal receives progress changes. The session journal in the store
// package implements it.
type Journal interface {
	RecordProgress(ctx context.Context, day int, completed bool) error
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithJournal attaches a journal that is told about every change.
func WithJournal(j Journal) Option {
	return func(t *Tracker) { t.journal = j }
}

// WithLogger sets the logger used to report journal failures.
func WithLogger(l *logging.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// Tracker holds the set of completed days for the running process.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	completed map[int]bool
	total     int

	journal Journal
	log     *logging.Logger
}

// New creates an empty tracker. total is the number of lessons in the
// catalog and is only used for Percent.
func New(total int, opts ...Option) *Tracker {
	t := &Tracker{
		completed: make(map[int]bool),
		total:     total,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Complete marks day as completed. It returns false if it already was.
func (t *Tracker) Complete(ctx context.Context, day int) bool {
	t.mu.Lock()
	if t.completed[day] {
		t.mu.Unlock()
		return false
	}
	t.completed[day] = true
	t.mu.Unlock()

	t.record(ctx, day, true)
	return true
}

// Uncomplete clears day. It returns false if day was not completed.
func (t *Tracker) Uncomplete(ctx context.Context, day int) bool {
	t.mu.Lock()
	if !t.completed[day] {
		t.mu.Unlock()
		return false
	}
	delete(t.completed, day)
	t.mu.Unlock()

	t.record(ctx, day, false)
	return true
}

// Toggle flips day and returns its new state.
func (t *Tracker) Toggle(ctx context.Context, day int) bool {
	t.mu.Lock()
	now := !t.completed[day]
	if now {
		t.completed[day] = true
	} else {
		delete(t.completed, day)
	}
	t.mu.Unlock()

	t.record(ctx, day, now)
	return now
}

// IsComplete reports whether day is completed.
func (t *Tracker) IsComplete(day int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completed[day]
}

// Completed returns completed days in ascending order.
func (t *Tracker) Completed() []int {
	t.mu.RLock()
	days := make([]int, 0, len(t.completed))
	for d := range t.completed {
		days = append(days, d)
	}
	t.mu.RUnlock()

	slices.Sort(days)
	return days
}

// Count returns the number of completed days.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.completed)
}

// Total returns the catalog size the tracker was created with.
func (t *Tracker) Total() int {
	return t.total
}

// Percent returns the completed share of the catalog in [0, 1].
func (t *Tracker) Percent() float64 {
	if t.total <= 0 {
		return 0
	}
	p := float64(t.Count()) / float64(t.total)
	if p > 1 {
		return 1
	}
	return p
}

func (t *Tracker) record(ctx context.Context, day int, completed bool) {
	if t.journal == nil {
		return
	}
	if err := t.journal.RecordProgress(ctx, day, completed); err != nil {
		t.log.Warn("record progress change", "day", day, "completed", completed, "error", err)
	}
}
