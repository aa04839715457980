package host

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a host value: nil, bool, int64, string, []byte, []Value, *Object
// or *Class.
type Value any

// HandleID identifies a stream in the runtime's registry.
type HandleID uint64

// Object is a managed object wrapping an opaque stream handle.
type Object struct {
	class *Class
	id    HandleID
}

func (o *Object) Class() *Class {
	return o.class
}

func (o *Object) ID() HandleID {
	return o.id
}

func (o *Object) String() string {
	return fmt.Sprintf("#<%s:%d>", o.class.Name(), o.id)
}

// ToS converts v to its string form the way the host coerces objects to
// strings.
func ToS(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	case []byte:
		return string(v)
	case []Value:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = Inspect(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Object:
		return v.String()
	case *Class:
		return v.Name()
	default:
		return fmt.Sprint(v)
	}
}

// Inspect is ToS with strings quoted and nil spelled out.
func Inspect(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case []byte:
		return strconv.Quote(string(v))
	default:
		return ToS(v)
	}
}

// PutsString renders values the way puts writes them: each value on its own
// line, arrays flattened, and a bare newline when there is nothing to write.
func PutsString(values ...Value) string {
	var b strings.Builder
	if len(values) == 0 {
		b.WriteByte('\n')
		return b.String()
	}
	for _, v := range values {
		if list, ok := v.([]Value); ok {
			b.WriteString(PutsString(list...))
			continue
		}
		s := ToS(v)
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Truthy reports whether v counts as true: everything except nil and false.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// TypeName names the class of v for error messages.
func TypeName(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case int64, int:
		return "Integer"
	case string, []byte:
		return "String"
	case []Value:
		return "Array"
	case *Object:
		return v.class.Name()
	case *Class:
		return "Class"
	default:
		return fmt.Sprintf("%T", v)
	}
}
