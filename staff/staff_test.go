package staff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaff_Ingredient(t *testing.T) {
	assert.Equal(t, "flour", NewIngredient("flour").Name(), "Expected the given name back")
	assert.Equal(t, "stuff", Ingredient{}.Name(), "A zero ingredient reads as stuff")
}

func TestStaff_Ingredients(t *testing.T) {
	list := Ingredients("flour", "eggs", "milk")

	require.Len(t, list, 3, "Expected one ingredient per name")
	assert.Equal(t, "flour", list[0].Name())
	assert.Equal(t, "eggs", list[1].Name())
	assert.Equal(t, "milk", list[2].Name())
}

func TestStaff_Items(t *testing.T) {
	assert.Equal(t, "recipe", Recipe{}.Name())
	assert.Equal(t, "monitor", Monitor{}.Name())
	assert.Equal(t, "keyboard", Keyboard{}.Name())
	assert.Equal(t, "coffee", Cup{}.Name())
}

func TestStaff_CookWork(t *testing.T) {
	out := &bytes.Buffer{}
	cook := NewCook("Alice")
	cook.Out = out

	require.NoError(t, cook.Work(Recipe{}, Ingredients("flour", "eggs", "milk")))
	assert.Equal(t, "recipe with 3 ingredients: flour, eggs, milk\n", out.String(),
		"Expected the cook's exact output shape")
}

func TestStaff_CookWorkNoIngredients(t *testing.T) {
	out := &bytes.Buffer{}
	cook := NewCook("Alice")
	cook.Out = out

	require.NoError(t, cook.Work(Recipe{}, nil))
	assert.Equal(t, "recipe with 0 ingredients: \n", out.String())
}

func TestStaff_ProgrammerWork(t *testing.T) {
	out := &bytes.Buffer{}
	programmer := NewProgrammer("Peter")
	programmer.Out = out

	require.NoError(t, programmer.Work(Monitor{}, Keyboard{}, Cup{}))
	assert.Equal(t, "keyboard, monitor, and coffee\n", out.String(),
		"Expected the programmer's exact output shape, in desk order")
}

func TestStaff_Names(t *testing.T) {
	assert.Equal(t, "Alice", NewCook("Alice").Name())
	assert.Equal(t, "Peter", NewProgrammer("Peter").Name())
}
