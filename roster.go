package factotum

import (
	"fmt"
	"slices"
	"time"

	"github.com/worklore/factotum/metrics"
)

// Roster keeps Hands by worker name and dispatches to them by name. It is a
// convenience for call sites juggling several erased workers at once; a Hand
// behaves exactly the same inside a roster as it does standalone. Like the
// rest of the package the Roster is single-threaded, it adds no locking and
// no goroutines.
type Roster struct {
	hands    map[string]*Hand
	observer func(*Event)
	recorder *metrics.Recorder
}

// RosterOption configures a Roster at construction.
type RosterOption func(*Roster)

// WithObserver registers a synchronous callback that receives one Event per
// dispatch attempted through the roster.
func WithObserver(fn func(*Event)) RosterOption {
	return func(r *Roster) {
		r.observer = fn
	}
}

// WithRecorder feeds dispatch outcomes and latencies into rec.
func WithRecorder(rec *metrics.Recorder) RosterOption {
	return func(r *Roster) {
		r.recorder = rec
	}
}

func NewRoster(opts ...RosterOption) *Roster {
	r := &Roster{
		hands: make(map[string]*Hand),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers h under its worker's name. Names are case sensitive and
// unique per roster.
func (r *Roster) Add(h *Hand) error {
	name := h.Name()
	if _, ok := r.hands[name]; ok {
		return fmt.Errorf("factotum: %q: %w", name, ErrDuplicateWorker)
	}
	r.hands[name] = h
	return nil
}

// Get returns the Hand registered under name.
func (r *Roster) Get(name string) (*Hand, bool) {
	h, ok := r.hands[name]
	return h, ok
}

// Remove unregisters name and reports whether it was present.
func (r *Roster) Remove(name string) bool {
	if _, ok := r.hands[name]; !ok {
		return false
	}
	delete(r.hands, name)
	return true
}

// Names lists the registered worker names in sorted order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.hands))
	for name := range r.hands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len reports the number of registered Hands.
func (r *Roster) Len() int {
	return len(r.hands)
}

// Work dispatches args to the Hand registered under name. An unknown name
// returns ErrUnknownWorker; type mismatches and operation errors come back
// exactly as they would from the Hand; an arity violation panics through,
// same as calling the Hand directly. Each dispatch is timed and reported to
// the recorder and the observer when they are set.
func (r *Roster) Work(name string, args ...any) error {
	h, ok := r.hands[name]
	if !ok {
		err := fmt.Errorf("factotum: %q: %w", name, ErrUnknownWorker)
		r.emit(LevelError, err, name, 0)
		return err
	}

	start := time.Now()
	err := h.Work(args...)
	took := time.Since(start)

	if r.recorder != nil {
		r.recorder.Observe(name, took, err)
	}
	if err != nil {
		r.emit(LevelError, err, name, took)
	} else {
		r.emit(LevelDebug, nil, name, took)
	}
	return err
}

func (r *Roster) emit(level Level, err error, name string, took time.Duration) {
	if r.observer == nil {
		return
	}
	r.observer(NewEvent(level, err, name, took))
}
