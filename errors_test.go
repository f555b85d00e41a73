package factotum

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_TypeMismatchError(t *testing.T) {
	t.Run("outside a dispatch", func(t *testing.T) {
		err := &TypeMismatchError{Slot: -1, Want: reflect.TypeFor[int](), Got: reflect.TypeFor[string]()}
		assert.Equal(t, "factotum: cannot unbox string as int", err.Error())
	})

	t.Run("with a worker but no slot", func(t *testing.T) {
		err := &TypeMismatchError{Worker: "Pia", Slot: -1, Want: reflect.TypeFor[int](), Got: reflect.TypeFor[string]()}
		assert.Equal(t, `factotum: worker "Pia": have string, want int`, err.Error())
	})

	t.Run("with a worker and a slot", func(t *testing.T) {
		err := &TypeMismatchError{Worker: "Pia", Slot: 1, Want: reflect.TypeFor[int](), Got: reflect.TypeFor[string]()}
		assert.Equal(t, `factotum: worker "Pia": argument 1: have string, want int`, err.Error())
	})

	t.Run("with a nil boxed value", func(t *testing.T) {
		err := &TypeMismatchError{Worker: "Pia", Slot: 0, Want: reflect.TypeFor[int]()}
		assert.Equal(t, `factotum: worker "Pia": argument 0: have <nil>, want int`, err.Error())
	})

	t.Run("matches its sentinel", func(t *testing.T) {
		err := &TypeMismatchError{Slot: -1, Want: reflect.TypeFor[int]()}
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrArityMismatch)
	})
}

func TestErrors_ArityError(t *testing.T) {
	err := &ArityError{Worker: "Pia", Want: 2, Got: 3}

	assert.Equal(t, `factotum: worker "Pia": wrong number of arguments: want 2, got 3`, err.Error())
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}

func TestErrors_SlotError(t *testing.T) {
	t.Run("stamps worker and slot onto a mismatch", func(t *testing.T) {
		bare := &TypeMismatchError{Slot: -1, Want: reflect.TypeFor[int](), Got: reflect.TypeFor[string]()}

		err := slotError(bare, "Pia", 2)

		var mismatch *TypeMismatchError
		assert.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "Pia", mismatch.Worker)
		assert.Equal(t, 2, mismatch.Slot)
	})

	t.Run("passes other errors through untouched", func(t *testing.T) {
		plain := errors.New("not a mismatch")
		assert.Equal(t, plain, slotError(plain, "Pia", 0))
	})
}
