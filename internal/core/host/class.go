package host

import (
	"fmt"

	"iostream/internal/core/domain"
)

// Block is the code block passed to a method call.
type Block func(arg Value) (Value, error)

// MethodFunc implements a method. self is the receiving *Object for instance
// methods and the receiving *Class for class methods.
type MethodFunc func(rt *Runtime, self Value, args []Value, block Block) (Value, error)

// Method is a method table entry. MaxArgs < 0 accepts any number of
// arguments from MinArgs up.
type Method struct {
	MinArgs int
	MaxArgs int
	Fn      MethodFunc
}

func (m Method) checkArity(given int) error {
	if given < m.MinArgs || (m.MaxArgs >= 0 && given > m.MaxArgs) {
		return newArityError(given, m.MinArgs, m.MaxArgs)
	}
	return nil
}

func newArityError(given, minArgs, maxArgs int) error {
	var expected string
	switch {
	case maxArgs < 0:
		expected = fmt.Sprintf("%d+", minArgs)
	case minArgs == maxArgs:
		expected = fmt.Sprintf("%d", minArgs)
	default:
		expected = fmt.Sprintf("%d..%d", minArgs, maxArgs)
	}
	return domain.NewArgumentError("wrong number of arguments (given %d, expected %s)", given, expected)
}

// Class holds the class and instance method tables of one host class.
type Class struct {
	name         string
	parent       *Class
	classMethods map[string]Method
	methods      map[string]Method
}

func NewClass(name string, parent *Class) *Class {
	return &Class{
		name:         name,
		parent:       parent,
		classMethods: make(map[string]Method),
		methods:      make(map[string]Method),
	}
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Parent() *Class {
	return c.parent
}

func (c *Class) DefineClassMethod(name string, minArgs, maxArgs int, fn MethodFunc) {
	c.classMethods[name] = Method{MinArgs: minArgs, MaxArgs: maxArgs, Fn: fn}
}

func (c *Class) DefineMethod(name string, minArgs, maxArgs int, fn MethodFunc) {
	c.methods[name] = Method{MinArgs: minArgs, MaxArgs: maxArgs, Fn: fn}
}

func (c *Class) lookupClassMethod(name string) (Method, bool) {
	for k := c; k != nil; k = k.parent {
		if m, ok := k.classMethods[name]; ok {
			return m, true
		}
	}
	return Method{}, false
}

func (c *Class) lookupMethod(name string) (Method, bool) {
	for k := c; k != nil; k = k.parent {
		if m, ok := k.methods[name]; ok {
			return m, true
		}
	}
	return Method{}, false
}

// RespondTo reports whether instances of c have the method name.
func (c *Class) RespondTo(name string) bool {
	_, ok := c.lookupMethod(name)
	return ok
}

// IsA reports whether c is other or inherits from it.
func (c *Class) IsA(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}
	return false
}
