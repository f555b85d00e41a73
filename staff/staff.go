// Package staff provides the worker types the factotum demos and end-to-end
// tests dispatch to. They sit entirely outside the mechanism: plain structs
// with ordinary, differently shaped Work methods, eligible for erasure only
// because they embed factotum.Identity.
package staff

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/worklore/factotum"
)

// Recipe is what a Cook works through.
type Recipe struct{}

func (Recipe) Name() string { return "recipe" }

// Ingredient is one named item going into a Recipe. The zero value reads as
// unspecified "stuff".
type Ingredient struct {
	name string
}

func NewIngredient(name string) Ingredient {
	return Ingredient{name: name}
}

func (i Ingredient) Name() string {
	if i.name == "" {
		return "stuff"
	}
	return i.name
}

// Ingredients builds an ingredient list from names.
func Ingredients(names ...string) []Ingredient {
	out := make([]Ingredient, len(names))
	for i, name := range names {
		out[i] = NewIngredient(name)
	}
	return out
}

// Monitor, Keyboard and Cup are the items on a Programmer's desk.
type Monitor struct{}

func (Monitor) Name() string { return "monitor" }

type Keyboard struct{}

func (Keyboard) Name() string { return "keyboard" }

type Cup struct{}

func (Cup) Name() string { return "coffee" }

// Cook works through one recipe with whatever ingredients arrive.
type Cook struct {
	factotum.Identity

	// Out receives the Work output, os.Stdout when nil.
	Out io.Writer
}

func NewCook(name string) Cook {
	return Cook{Identity: factotum.NewIdentity(name)}
}

func (c Cook) Work(recipe Recipe, ingredients []Ingredient) error {
	names := make([]string, len(ingredients))
	for i, ing := range ingredients {
		names[i] = ing.Name()
	}
	fmt.Fprintf(c.out(), "%s with %d ingredients: %s\n",
		recipe.Name(), len(ingredients), strings.Join(names, ", "))
	return nil
}

func (c Cook) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Programmer works with the tools on the desk, in desk order.
type Programmer struct {
	factotum.Identity

	// Out receives the Work output, os.Stdout when nil.
	Out io.Writer
}

func NewProgrammer(name string) Programmer {
	return Programmer{Identity: factotum.NewIdentity(name)}
}

func (p Programmer) Work(monitor Monitor, keyboard Keyboard, coffee Cup) error {
	fmt.Fprintf(p.out(), "%s, %s, and %s\n",
		keyboard.Name(), monitor.Name(), coffee.Name())
	return nil
}

func (p Programmer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}
