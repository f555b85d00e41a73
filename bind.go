package factotum

import (
	"fmt"
	"io"
	"reflect"
)

// Typed construction. The Bind family freezes a worker together with one of
// its operations at compile time: the operation is passed as a method
// expression, so the receiver stays unbound and a cloned Hand dispatches to
// its own copy of the worker, never back to the original.
//
//	hand := factotum.Bind2(staff.NewCook("Alice"), staff.Cook.Work)
//
// The compiler checks the worker/operation pairing and the argument types
// are known without reflection; only the per-call exact-match extraction
// remains at runtime. Parameter types must be concrete, since boxed
// identities are always concrete and extraction never consults interface
// satisfaction.

// Bind0 erases a worker with a niladic operation.
func Bind0[W Worker](w W, op func(W) error) *Hand {
	return newHand(&holder0[W]{worker: w, op: op})
}

// Bind1 erases a worker with a one-argument operation.
func Bind1[W Worker, A1 any](w W, op func(W, A1) error) *Hand {
	return newHand(&holder1[W, A1]{worker: w, op: op})
}

// Bind2 erases a worker with a two-argument operation.
func Bind2[W Worker, A1, A2 any](w W, op func(W, A1, A2) error) *Hand {
	return newHand(&holder2[W, A1, A2]{worker: w, op: op})
}

// Bind3 erases a worker with a three-argument operation.
func Bind3[W Worker, A1, A2, A3 any](w W, op func(W, A1, A2, A3) error) *Hand {
	return newHand(&holder3[W, A1, A2, A3]{worker: w, op: op})
}

// Bind4 erases a worker with a four-argument operation.
func Bind4[W Worker, A1, A2, A3, A4 any](w W, op func(W, A1, A2, A3, A4) error) *Hand {
	return newHand(&holder4[W, A1, A2, A3, A4]{worker: w, op: op})
}

var _ holder = (*holder0[Identity])(nil)

type holder0[W Worker] struct {
	worker W
	op     func(W) error
}

func (h *holder0[W]) name() string              { return h.worker.Name() }
func (h *holder0[W]) arity() int                { return 0 }
func (h *holder0[W]) signature() []reflect.Type { return nil }
func (h *holder0[W]) workerType() reflect.Type  { return reflect.TypeOf(h.worker) }
func (h *holder0[W]) anyWorker() Worker         { return h.worker }

func (h *holder0[W]) clone() holder {
	dup := *h
	dup.worker = cloneWorker(h.worker).(W)
	return &dup
}

func (h *holder0[W]) invoke(out io.Writer, args []Carrier) error {
	if len(args) != 0 {
		panic(&ArityError{Worker: h.name(), Want: 0, Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	return h.op(h.worker)
}

type holder1[W Worker, A1 any] struct {
	worker W
	op     func(W, A1) error
}

func (h *holder1[W, A1]) name() string { return h.worker.Name() }
func (h *holder1[W, A1]) arity() int   { return 1 }
func (h *holder1[W, A1]) signature() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A1]()}
}
func (h *holder1[W, A1]) workerType() reflect.Type { return reflect.TypeOf(h.worker) }
func (h *holder1[W, A1]) anyWorker() Worker        { return h.worker }

func (h *holder1[W, A1]) clone() holder {
	dup := *h
	dup.worker = cloneWorker(h.worker).(W)
	return &dup
}

func (h *holder1[W, A1]) invoke(out io.Writer, args []Carrier) error {
	if len(args) != 1 {
		panic(&ArityError{Worker: h.name(), Want: 1, Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	a1, err := Take[A1](args[0])
	if err != nil {
		return slotError(err, h.name(), 0)
	}
	return h.op(h.worker, a1)
}

type holder2[W Worker, A1, A2 any] struct {
	worker W
	op     func(W, A1, A2) error
}

func (h *holder2[W, A1, A2]) name() string { return h.worker.Name() }
func (h *holder2[W, A1, A2]) arity() int   { return 2 }
func (h *holder2[W, A1, A2]) signature() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A1](), reflect.TypeFor[A2]()}
}
func (h *holder2[W, A1, A2]) workerType() reflect.Type { return reflect.TypeOf(h.worker) }
func (h *holder2[W, A1, A2]) anyWorker() Worker        { return h.worker }

func (h *holder2[W, A1, A2]) clone() holder {
	dup := *h
	dup.worker = cloneWorker(h.worker).(W)
	return &dup
}

func (h *holder2[W, A1, A2]) invoke(out io.Writer, args []Carrier) error {
	if len(args) != 2 {
		panic(&ArityError{Worker: h.name(), Want: 2, Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	a1, err := Take[A1](args[0])
	if err != nil {
		return slotError(err, h.name(), 0)
	}
	a2, err := Take[A2](args[1])
	if err != nil {
		return slotError(err, h.name(), 1)
	}
	return h.op(h.worker, a1, a2)
}

type holder3[W Worker, A1, A2, A3 any] struct {
	worker W
	op     func(W, A1, A2, A3) error
}

func (h *holder3[W, A1, A2, A3]) name() string { return h.worker.Name() }
func (h *holder3[W, A1, A2, A3]) arity() int   { return 3 }
func (h *holder3[W, A1, A2, A3]) signature() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A1](), reflect.TypeFor[A2](), reflect.TypeFor[A3]()}
}
func (h *holder3[W, A1, A2, A3]) workerType() reflect.Type { return reflect.TypeOf(h.worker) }
func (h *holder3[W, A1, A2, A3]) anyWorker() Worker        { return h.worker }

func (h *holder3[W, A1, A2, A3]) clone() holder {
	dup := *h
	dup.worker = cloneWorker(h.worker).(W)
	return &dup
}

func (h *holder3[W, A1, A2, A3]) invoke(out io.Writer, args []Carrier) error {
	if len(args) != 3 {
		panic(&ArityError{Worker: h.name(), Want: 3, Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	a1, err := Take[A1](args[0])
	if err != nil {
		return slotError(err, h.name(), 0)
	}
	a2, err := Take[A2](args[1])
	if err != nil {
		return slotError(err, h.name(), 1)
	}
	a3, err := Take[A3](args[2])
	if err != nil {
		return slotError(err, h.name(), 2)
	}
	return h.op(h.worker, a1, a2, a3)
}

type holder4[W Worker, A1, A2, A3, A4 any] struct {
	worker W
	op     func(W, A1, A2, A3, A4) error
}

func (h *holder4[W, A1, A2, A3, A4]) name() string { return h.worker.Name() }
func (h *holder4[W, A1, A2, A3, A4]) arity() int   { return 4 }
func (h *holder4[W, A1, A2, A3, A4]) signature() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A1](), reflect.TypeFor[A2](), reflect.TypeFor[A3](), reflect.TypeFor[A4]()}
}
func (h *holder4[W, A1, A2, A3, A4]) workerType() reflect.Type { return reflect.TypeOf(h.worker) }
func (h *holder4[W, A1, A2, A3, A4]) anyWorker() Worker        { return h.worker }

func (h *holder4[W, A1, A2, A3, A4]) clone() holder {
	dup := *h
	dup.worker = cloneWorker(h.worker).(W)
	return &dup
}

func (h *holder4[W, A1, A2, A3, A4]) invoke(out io.Writer, args []Carrier) error {
	if len(args) != 4 {
		panic(&ArityError{Worker: h.name(), Want: 4, Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	a1, err := Take[A1](args[0])
	if err != nil {
		return slotError(err, h.name(), 0)
	}
	a2, err := Take[A2](args[1])
	if err != nil {
		return slotError(err, h.name(), 1)
	}
	a3, err := Take[A3](args[2])
	if err != nil {
		return slotError(err, h.name(), 2)
	}
	a4, err := Take[A4](args[3])
	if err != nil {
		return slotError(err, h.name(), 3)
	}
	return h.op(h.worker, a1, a2, a3, a4)
}
