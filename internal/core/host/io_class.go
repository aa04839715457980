package host

import (
	"iostream/internal/core/domain"
)

const variadic = -1

func defineIOClass(c *Class) {
	c.DefineClassMethod("new", 0, variadic, ioNew)
	c.DefineClassMethod("open", 0, variadic, ioOpen)

	c.DefineMethod("close", 0, 0, ioClose)
	c.DefineMethod("closed?", 0, 0, ioClosedP)
	c.DefineMethod("write", 1, 1, ioWrite)
	c.DefineMethod("read", 0, 1, ioRead)
	c.DefineMethod("getc", 0, 0, ioGetc)
	c.DefineMethod("gets", 0, 0, ioGets)
	c.DefineMethod("putc", 1, 1, ioPutc)
	c.DefineMethod("eof?", 0, 0, ioEOFP)
	c.DefineMethod("flush", 0, 0, ioFlush)
	c.DefineMethod("readchar", 0, 0, ioReadchar)
	c.DefineMethod("readline", 0, 0, ioReadline)
	c.DefineMethod("readlines", 0, 0, ioReadlines)
	c.DefineMethod("print", 0, variadic, ioPrint)
	c.DefineMethod("puts", 0, variadic, ioPuts)
	c.DefineMethod("sync", 0, 0, ioSync)
	c.DefineMethod("sync=", 1, 1, ioSetSync)
	c.DefineMethod("each_line", 0, 0, ioEachLine)
	c.DefineMethod("each", 0, 0, ioEachLine)
	c.DefineMethod("each_byte", 0, 0, ioEachByte)
}

func ioNew(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	return rt.New(self.(*Class), args)
}

func ioOpen(rt *Runtime, self Value, args []Value, block Block) (Value, error) {
	return rt.Open(self.(*Class), args, block)
}

func ioClose(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	return nil, f.Close()
}

func ioClosedP(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	return f.Closed(), nil
}

func ioWrite(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	n, err := f.Write([]byte(ToS(args[0])))
	if err != nil {
		return nil, err
	}
	return int64(n), nil
}

func ioRead(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 || args[0] == nil {
		data, err := f.Read()
		if err != nil {
			return nil, err
		}
		return string(data), nil
	}
	length, err := toInt(args[0])
	if err != nil {
		return nil, err
	}
	data, err := f.ReadN(int(length))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func ioGetc(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	b, ok, err := f.Getc()
	if err != nil || !ok {
		return nil, err
	}
	return string([]byte{b}), nil
}

func ioGets(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	line, ok, err := f.Gets()
	if err != nil || !ok {
		return nil, err
	}
	return line, nil
}

func ioPutc(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	var b byte
	switch v := args[0].(type) {
	case int64:
		b = byte(v)
	case int:
		b = byte(v)
	case string:
		if v == "" {
			return nil, domain.NewArgumentError("empty string given")
		}
		b = v[0]
	default:
		return nil, domain.NewTypeError("no implicit conversion of %s into Integer", TypeName(v))
	}
	if err := f.Putc(b); err != nil {
		return nil, err
	}
	return args[0], nil
}

func ioEOFP(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	return f.EOF()
}

func ioFlush(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	if _, err := f.Flush(); err != nil {
		return nil, err
	}
	return self, nil
}

func ioReadchar(rt *Runtime, self Value, args []Value, block Block) (Value, error) {
	c, err := ioGetc(rt, self, args, block)
	if err == nil && c == nil {
		return nil, domain.ErrEndOfFile
	}
	return c, err
}

func ioReadline(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	line, ok, err := f.ReadLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrEndOfFile
	}
	return line, nil
}

func ioReadlines(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	lines := []Value{}
	for {
		line, ok, err := f.ReadLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

func ioPrint(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		if _, err := f.Write([]byte(ToS(arg))); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func ioPuts(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	if _, err := f.Write([]byte(PutsString(args...))); err != nil {
		return nil, err
	}
	return nil, nil
}

func ioSync(rt *Runtime, self Value, _ []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	return f.Sync()
}

func ioSetSync(rt *Runtime, self Value, args []Value, _ Block) (Value, error) {
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	if err := f.SetSync(Truthy(args[0])); err != nil {
		return nil, err
	}
	return args[0], nil
}

func ioEachLine(rt *Runtime, self Value, _ []Value, block Block) (Value, error) {
	if block == nil {
		return nil, domain.NewArgumentError("no block given")
	}
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	for {
		line, ok, err := f.ReadLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return self, nil
		}
		if _, err := block(line); err != nil {
			return nil, err
		}
	}
}

func ioEachByte(rt *Runtime, self Value, _ []Value, block Block) (Value, error) {
	if block == nil {
		return nil, domain.NewArgumentError("no block given")
	}
	f, err := rt.Unwrap(self)
	if err != nil {
		return nil, err
	}
	for {
		b, ok, err := f.Getc()
		if err != nil {
			return nil, err
		}
		if !ok {
			return self, nil
		}
		if _, err := block(int64(b)); err != nil {
			return nil, err
		}
	}
}

func toInt(v Value) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, domain.NewTypeError("no implicit conversion of %s into Integer", TypeName(v))
	}
}

func toStr(v Value) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", domain.NewTypeError("no implicit conversion of %s into String", TypeName(v))
	}
}
