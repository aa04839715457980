package host

import (
	"fmt"

	"iostream/internal/core/domain"
	"iostream/internal/core/stream"
	"iostream/internal/ports"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Runtime is a minimal object runtime exposing the IO and File classes.
// It is not safe for concurrent use.
type Runtime struct {
	opener   ports.StreamOpener
	registry *Registry
	classes  map[string]*Class
	io       *Class
	file     *Class
}

func NewRuntime(opener ports.StreamOpener) *Runtime {
	rt := &Runtime{
		opener:   opener,
		registry: NewRegistry(),
		classes:  make(map[string]*Class),
	}
	rt.io = NewClass("IO", nil)
	defineIOClass(rt.io)
	rt.file = NewClass("File", rt.io)
	defineFileClass(rt.file)
	rt.classes[rt.io.Name()] = rt.io
	rt.classes[rt.file.Name()] = rt.file
	return rt
}

// Class returns the class registered under name.
func (rt *Runtime) Class(name string) (*Class, bool) {
	c, ok := rt.classes[name]
	return c, ok
}

func (rt *Runtime) IOClass() *Class {
	return rt.io
}

func (rt *Runtime) FileClass() *Class {
	return rt.file
}

func (rt *Runtime) Registry() *Registry {
	return rt.registry
}

// CallClass invokes a class method by class name.
func (rt *Runtime) CallClass(className string, method string, args ...Value) (Value, error) {
	return rt.CallClassWithBlock(className, method, args, nil)
}

func (rt *Runtime) CallClassWithBlock(className string, method string, args []Value, block Block) (Value, error) {
	class, ok := rt.classes[className]
	if !ok {
		return nil, domain.NewNoMethodError("uninitialized constant %s", className)
	}
	m, ok := class.lookupClassMethod(method)
	if !ok {
		return nil, domain.NewNoMethodError("undefined method '%s' for class %s", method, className)
	}
	if err := m.checkArity(len(args)); err != nil {
		return nil, err
	}
	return m.Fn(rt, class, args, block)
}

// Call invokes an instance method on recv.
func (rt *Runtime) Call(recv Value, method string, args ...Value) (Value, error) {
	return rt.CallWithBlock(recv, method, args, nil)
}

func (rt *Runtime) CallWithBlock(recv Value, method string, args []Value, block Block) (Value, error) {
	obj, ok := recv.(*Object)
	if !ok {
		return nil, domain.NewNoMethodError("undefined method '%s' for %s", method, TypeName(recv))
	}
	m, ok := obj.class.lookupMethod(method)
	if !ok {
		return nil, domain.NewNoMethodError("undefined method '%s' for an instance of %s", method, obj.class.Name())
	}
	if err := m.checkArity(len(args)); err != nil {
		return nil, err
	}
	return m.Fn(rt, obj, args, block)
}

// New allocates an object of class wrapping an Unopened stream and runs the
// class's initialize method, if it has one, with args. Without initialize the
// arguments are ignored. When initialize fails the handle is released.
func (rt *Runtime) New(class *Class, args []Value) (*Object, error) {
	obj := &Object{class: class, id: rt.registry.Register(stream.AllocFile(rt.opener))}
	if !class.RespondTo("initialize") {
		Logger().Debug("not invoking initialize", zap.String("class", class.Name()), zap.Int("args", len(args)))
		return obj, nil
	}
	if _, err := rt.CallWithBlock(obj, "initialize", args, nil); err != nil {
		rt.registry.Release(obj.id)
		return nil, err
	}
	return obj, nil
}

// Open constructs an object like New. Without a block the object is returned.
// With a block the object is passed to it and closed once the block returns,
// and the block's result is returned; a block error is returned after the
// close.
func (rt *Runtime) Open(class *Class, args []Value, block Block) (Value, error) {
	obj, err := rt.New(class, args)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return obj, nil
	}
	result, blockErr := block(obj)
	if closeErr := rt.closeIfOpen(obj); closeErr != nil {
		blockErr = multierr.Append(blockErr, closeErr)
	}
	if blockErr != nil {
		return nil, blockErr
	}
	return result, nil
}

func (rt *Runtime) closeIfOpen(obj *Object) error {
	f, err := rt.registry.Lookup(obj.id)
	if err != nil {
		return err
	}
	if f.Closed() {
		return nil
	}
	return f.Close()
}

// Unwrap returns the stream behind v.
func (rt *Runtime) Unwrap(v Value) (*stream.File, error) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, domain.NewTypeError("wrong argument type %s (expected IO)", TypeName(v))
	}
	return rt.registry.Lookup(obj.id)
}

// Close finalizes the runtime: every stream still open is closed and every
// handle is released. Objects of a closed runtime fail with TypeError.
func (rt *Runtime) Close() error {
	var err error
	for _, id := range rt.registry.IDs() {
		f, _ := rt.registry.Lookup(id)
		if !f.Closed() {
			Logger().Warn("closing leaked stream", zap.String("path", f.Label()), zap.Uint64("id", uint64(id)))
			if releaseErr := f.Release(); releaseErr != nil {
				err = multierr.Append(err, fmt.Errorf("failed to close stream %q: %w", f.Label(), releaseErr))
			}
		}
		rt.registry.Release(id)
	}
	return err
}
