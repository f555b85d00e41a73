package factotum

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Level grades the severity of a dispatch event.
type Level int

const (
	// LevelDefault selects DefaultLevel.
	LevelDefault Level = iota
	// LevelDebug marks a routine, successful dispatch.
	LevelDebug
	// LevelInfo marks an informational event.
	LevelInfo
	// LevelWarning marks a dispatch that recovered from something.
	LevelWarning
	// LevelError marks a failed dispatch.
	LevelError
	// LevelCritical marks a failure the roster cannot absorb.
	LevelCritical
)

const DefaultLevel = LevelInfo

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Event records the outcome of one dispatch through a Roster: which worker,
// how long the invoke took, and what went wrong if anything. Events are
// delivered synchronously to the roster's observer; the dispatch mechanism
// itself never spawns goroutines.
type Event struct {
	ID     uuid.UUID
	Level  Level
	Worker string
	Err    error
	Took   time.Duration
}

// NewEvent builds an Event, substituting DefaultLevel for LevelDefault.
func NewEvent(level Level, err error, worker string, took time.Duration) *Event {
	if level == LevelDefault {
		level = DefaultLevel
	}

	return &Event{
		ID:     uuid.New(),
		Level:  level,
		Worker: worker,
		Err:    err,
		Took:   took,
	}
}

// Error implements the error interface.
func (e *Event) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Level, e.Worker, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Level, e.Worker)
}

func (e *Event) String() string {
	return e.Error()
}

// Unwrap returns the underlying error.
func (e *Event) Unwrap() error {
	return e.Err
}
