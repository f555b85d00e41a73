package factotum

import (
	"io"
	"reflect"
)

// workMethod is the operation New resolves on a worker. Typed construction
// through the Bind family is free to bind any operation regardless of name.
const workMethod = "Work"

// holder is the signature-erasing adapter between a Hand and its worker.
// One holder exists per (worker type, argument list) binding, is owned by
// exactly one Hand, and never leaks past the package boundary: callers only
// ever see Hand.
//
// invoke runs the four-step dispatch protocol, in order: assert the argument
// count against the frozen arity (panic with *ArityError on violation), emit
// the "working on " marker to out, unbox every slot as its exact expected
// type (*TypeMismatchError stops the dispatch before the operation runs),
// then call the operation with the extracted values.
type holder interface {
	name() string
	arity() int
	signature() []reflect.Type
	workerType() reflect.Type
	anyWorker() Worker
	clone() holder
	invoke(out io.Writer, args []Carrier) error
}
