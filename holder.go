package factotum

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// cloneWorker duplicates a worker for an independent Hand. A worker
// implementing Cloner decides for itself; otherwise a pointer worker has its
// pointee copied and a value worker is copied by assignment. Reference
// fields keep pointing at shared state unless the worker opts in to Cloner.
func cloneWorker(w Worker) Worker {
	if c, ok := w.(Cloner); ok {
		dup := c.Clone()
		if reflect.TypeOf(dup) != reflect.TypeOf(w) {
			panic(fmt.Sprintf("factotum: Clone of %s returned %s", reflect.TypeOf(w), reflect.TypeOf(dup)))
		}
		return dup
	}
	rv := reflect.ValueOf(w)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		dup := reflect.New(rv.Type().Elem())
		dup.Elem().Set(rv.Elem())
		return dup.Interface().(Worker)
	}
	return w
}

// reflectHolder adapts a worker whose Work method is resolved by reflection.
// The method value and its ordered parameter list are fixed here, once, and
// never change for the life of the holder; dispatch re-checks arguments
// against that frozen signature but never re-inspects the worker.
type reflectHolder struct {
	worker     Worker
	method     reflect.Value
	sig        []reflect.Type
	returnsErr bool
}

var _ holder = (*reflectHolder)(nil)

func newReflectHolder(w Worker) (*reflectHolder, error) {
	if w == nil {
		return nil, errors.New("factotum: nil worker")
	}
	rv := reflect.ValueOf(w)
	m := rv.MethodByName(workMethod)
	if !m.IsValid() {
		// A pointer receiver keeps Work out of the value's method set; say
		// so instead of pretending the method does not exist.
		if rv.Kind() != reflect.Pointer {
			if _, ok := reflect.PointerTo(rv.Type()).MethodByName(workMethod); ok {
				return nil, fmt.Errorf("factotum: %s declares %s on its pointer receiver, pass a *%s", rv.Type(), workMethod, rv.Type())
			}
		}
		return nil, fmt.Errorf("factotum: %s has no %s method", rv.Type(), workMethod)
	}
	mt := m.Type()
	if mt.IsVariadic() {
		return nil, fmt.Errorf("factotum: %s.%s is variadic, work operations take a fixed argument list", rv.Type(), workMethod)
	}
	switch {
	case mt.NumOut() == 0:
	case mt.NumOut() == 1 && mt.Out(0) == errType:
	default:
		return nil, fmt.Errorf("factotum: %s.%s must return nothing or a single error", rv.Type(), workMethod)
	}
	sig := make([]reflect.Type, mt.NumIn())
	for i := range sig {
		sig[i] = mt.In(i)
	}
	return &reflectHolder{
		worker:     w,
		method:     m,
		sig:        sig,
		returnsErr: mt.NumOut() == 1,
	}, nil
}

func (h *reflectHolder) name() string { return h.worker.Name() }

func (h *reflectHolder) arity() int { return len(h.sig) }

func (h *reflectHolder) signature() []reflect.Type { return h.sig }

func (h *reflectHolder) workerType() reflect.Type { return reflect.TypeOf(h.worker) }

func (h *reflectHolder) anyWorker() Worker { return h.worker }

func (h *reflectHolder) clone() holder {
	dup := cloneWorker(h.worker)
	return &reflectHolder{
		worker:     dup,
		method:     reflect.ValueOf(dup).MethodByName(workMethod),
		sig:        h.sig,
		returnsErr: h.returnsErr,
	}
}

func (h *reflectHolder) invoke(out io.Writer, args []Carrier) error {
	if len(args) != len(h.sig) {
		panic(&ArityError{Worker: h.name(), Want: len(h.sig), Got: len(args)})
	}
	fmt.Fprint(out, "working on ")
	in := make([]reflect.Value, len(args))
	for i, c := range args {
		v, err := c.Unbox(h.sig[i])
		if err != nil {
			return slotError(err, h.name(), i)
		}
		in[i] = reflect.ValueOf(v)
	}
	ret := h.method.Call(in)
	if h.returnsErr && !ret[0].IsNil() {
		return ret[0].Interface().(error)
	}
	return nil
}
