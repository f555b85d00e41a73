package factotum

import (
	"fmt"
	"reflect"
)

// Carrier boxes one value of any type together with the type identity it had
// at boxing time. It is the transport for arguments crossing the erasure
// boundary: Hand.Work boxes each argument, the holder on the far side unboxes
// each slot as the exact type its worker expects. Extraction fails closed.
// No interface satisfaction, no numeric widening; the stored identity must
// equal the requested type or the value stays boxed.
type Carrier struct {
	value any
	rtype reflect.Type
}

// Box erases v. Boxing a nil interface value yields a Carrier with no type
// identity, which cannot be unboxed as anything.
func Box(v any) Carrier {
	return Carrier{value: v, rtype: reflect.TypeOf(v)}
}

// BoxAll boxes the arguments in call order into a fresh slice. Every
// dispatch gets its own sequence; carriers are never reused across calls.
func BoxAll(vs ...any) []Carrier {
	pack := make([]Carrier, len(vs))
	for i, v := range vs {
		pack[i] = Box(v)
	}
	return pack
}

// Type reports the identity captured at boxing time, nil for a boxed nil.
func (c Carrier) Type() reflect.Type { return c.rtype }

// Unbox returns the stored value if want equals the stored identity, and a
// *TypeMismatchError otherwise. The carrier is left intact either way.
func (c Carrier) Unbox(want reflect.Type) (any, error) {
	if c.rtype != want {
		return nil, &TypeMismatchError{Slot: -1, Want: want, Got: c.rtype}
	}
	return c.value, nil
}

// Take is the typed counterpart of Unbox. T must be the exact boxed type;
// asking for an interface T never succeeds because boxed identities are
// always concrete.
func Take[T any](c Carrier) (T, error) {
	v, err := c.Unbox(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c Carrier) String() string {
	if c.rtype == nil {
		return "Carrier(<nil>)"
	}
	return fmt.Sprintf("Carrier(%s)", c.rtype)
}
