package factotum

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinels for the failure kinds the library distinguishes. TypeMismatch is
// recoverable and comes back through Work's error return; ArityMismatch is a
// violated precondition and only ever appears as a panic value. The roster
// sentinels cover name lookup, not dispatch.
var (
	ErrTypeMismatch    = errors.New("argument type mismatch")
	ErrArityMismatch   = errors.New("argument count mismatch")
	ErrUnknownWorker   = errors.New("unknown worker")
	ErrDuplicateWorker = errors.New("duplicate worker")
)

// TypeMismatchError reports a value whose erased type differs from the type
// requested at extraction. Slot is the zero-based argument position, -1 when
// the mismatch happened outside a positional dispatch (bare Unbox, Concrete).
// Got is nil when the boxed value was a nil interface.
type TypeMismatchError struct {
	Worker string
	Slot   int
	Want   reflect.Type
	Got    reflect.Type
}

func (e *TypeMismatchError) Error() string {
	got := "<nil>"
	if e.Got != nil {
		got = e.Got.String()
	}
	switch {
	case e.Worker == "":
		return fmt.Sprintf("factotum: cannot unbox %s as %s", got, e.Want)
	case e.Slot < 0:
		return fmt.Sprintf("factotum: worker %q: have %s, want %s", e.Worker, got, e.Want)
	default:
		return fmt.Sprintf("factotum: worker %q: argument %d: have %s, want %s", e.Worker, e.Slot, got, e.Want)
	}
}

// Is makes errors.Is(err, ErrTypeMismatch) hold for every mismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ArityError is the panic value for an argument count violation. Arity is
// frozen into the holder at construction and there is no partial application
// or defaulting, so a wrong count is a programming error with no recovery
// path, not a condition to handle.
type ArityError struct {
	Worker string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("factotum: worker %q: wrong number of arguments: want %d, got %d", e.Worker, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrArityMismatch) hold for every arity violation.
func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}

// slotError stamps worker and position onto a mismatch bubbling out of a
// carrier, so the caller learns which argument failed without the holder
// growing its own error type.
func slotError(err error, worker string, slot int) error {
	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		mismatch.Worker = worker
		mismatch.Slot = slot
	}
	return err
}
