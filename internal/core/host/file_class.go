package host

import (
	"iostream/internal/core/domain"
	"iostream/internal/core/stream"
)

func defineFileClass(c *Class) {
	c.DefineClassMethod("exist?", 1, 1, fileExistP)
	c.DefineClassMethod("exists?", 1, 1, fileExistP)

	c.DefineMethod("initialize", 1, 2, fileInitialize)
	c.DefineMethod("path", 0, 0, filePath)
}

func fileExistP(rt *Runtime, _ Value, args []Value, _ Block) (Value, error) {
	path, err := toStr(args[0])
	if err != nil {
		return nil, err
	}
	return stream.Exists(rt.opener, path), nil
}

func fileInitialize(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	path, err := toStr(args[0])
	if err != nil {
		return nil, err
	}
	mode := domain.DefaultMode
	if len(args) > 1 {
		if mode, err = toStr(args[1]); err != nil {
			return nil, err
		}
	}
	if err := f.Initialize(path, mode); err != nil {
		return nil, err
	}
	return self, nil
}

func filePath(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	if f.Path() == "" {
		return nil, nil
	}
	return f.Path(), nil
}
