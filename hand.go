package factotum

import (
	"io"
	"os"
	"reflect"
)

// Hand is the erased dispatcher. It owns one worker of any eligible type
// behind a uniform call surface: the worker's concrete type and the shape of
// its work operation are fixed at the construction point and invisible
// afterwards, so differently typed Hands mix freely in one collection and
// are dispatched with the same Work call.
//
// Equally shaped arguments are not checked at the call site. Work re-checks
// every dispatch against the signature frozen at construction, panicking on
// a wrong argument count and returning an error on a wrong argument type.
//
// Duplicate a Hand with Clone; assigning the pointer aliases one underlying
// worker instead of copying it. The zero value is unusable and every method
// on it panics.
type Hand struct {
	content holder
	out     io.Writer
}

func newHand(h holder) *Hand {
	return &Hand{content: h, out: os.Stdout}
}

// New erases w, resolving its Work method by reflection once, here. The
// method must take a fixed argument list and return nothing or a single
// error; variadic operations are rejected. After construction no reflection
// on the worker happens again, dispatch only re-checks arguments against the
// frozen signature.
func New(w Worker) (*Hand, error) {
	h, err := newReflectHolder(w)
	if err != nil {
		return nil, err
	}
	return newHand(h), nil
}

// Must is New for workers known statically to be eligible. It panics where
// New would return an error.
func Must(w Worker) *Hand {
	h, err := New(w)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hand) mustContent() holder {
	if h == nil || h.content == nil {
		panic("factotum: use of uninitialized Hand")
	}
	return h.content
}

// Name reports the held worker's name.
func (h *Hand) Name() string { return h.mustContent().name() }

// Arity reports the fixed number of arguments the held operation expects.
func (h *Hand) Arity() int { return h.mustContent().arity() }

// Signature returns the expected argument types in positional order.
func (h *Hand) Signature() []reflect.Type {
	sig := h.mustContent().signature()
	out := make([]reflect.Type, len(sig))
	copy(out, sig)
	return out
}

// WorkerType reports the concrete worker type erased at construction.
func (h *Hand) WorkerType() reflect.Type { return h.mustContent().workerType() }

// Work boxes the arguments in call order and hands them to the worker's
// operation. A wrong argument count panics with an *ArityError. A wrong
// type at any position stops the dispatch and returns a *TypeMismatchError;
// the marker has been emitted by then but the operation has not run.
// Otherwise the operation runs with the unboxed values and its error, if
// any, is returned as-is.
func (h *Hand) Work(args ...any) error {
	return h.mustContent().invoke(h.output(), BoxAll(args...))
}

// Clone produces a fully independent Hand holding a copy of the worker.
// Dispatching through the clone never touches the original's worker. See
// Cloner for how workers with reference state participate.
func (h *Hand) Clone() *Hand {
	return &Hand{content: h.mustContent().clone(), out: h.out}
}

// SetOutput redirects the dispatch marker, os.Stdout by default. Clones
// inherit the setting at the moment they are made.
func (h *Hand) SetOutput(w io.Writer) { h.out = w }

// Output returns the marker destination.
func (h *Hand) Output() io.Writer { return h.output() }

func (h *Hand) output() io.Writer {
	if h.out == nil {
		return os.Stdout
	}
	return h.out
}

// Concrete retrieves the stored worker if its erased type is exactly W, the
// typed escape hatch out of an erased Hand. For a value worker the result is
// a copy; erase a pointer worker if callers need to observe mutations.
func Concrete[W Worker](h *Hand) (W, error) {
	c := h.mustContent()
	want := reflect.TypeFor[W]()
	if got := c.workerType(); got != want {
		var zero W
		return zero, &TypeMismatchError{Worker: c.name(), Slot: -1, Want: want, Got: got}
	}
	return c.anyWorker().(W), nil
}
