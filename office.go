package factotum

import "fmt"

// Office is the consumer side of the erasure boundary. It owns exactly one
// Hand, announces who is about to work, and forwards the arguments
// untouched; the marker, the argument matching, and the operation itself all
// happen downstream in the Hand. The Office neither knows nor cares which
// worker type sits behind the Hand it was given.
type Office struct {
	hand *Hand
}

// NewOffice claims h. Ownership transfers: the caller must not dispatch
// through h afterwards. Pass h.Clone() to keep an independent handle.
func NewOffice(h *Hand) *Office {
	return &Office{hand: h}
}

// Name reports the name of the worker staffing this office.
func (o *Office) Name() string {
	return o.hand.Name()
}

// Work prints the worker's name and the " is " connective to the Hand's
// output, then forwards the arguments to the Hand unchanged. Together with
// the Hand's marker and the operation's own output this composes lines such
// as "Alice is working on recipe with 3 ingredients: flour, eggs, milk".
func (o *Office) Work(args ...any) error {
	fmt.Fprintf(o.hand.Output(), "%s is ", o.hand.Name())
	return o.hand.Work(args...)
}
