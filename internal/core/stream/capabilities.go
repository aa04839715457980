package stream

// Readable is the read side of a stream handle.
type Readable interface {
	Read() ([]byte, error)
	ReadN(length int) ([]byte, error)
	Getc() (byte, bool, error)
	Gets() (string, bool, error)
	ReadLine() (string, bool, error)
	EOF() (bool, error)
}

// Writable is the write side of a stream handle.
type Writable interface {
	Write(data []byte) (int, error)
	Putc(b byte) error
	Flush() (*Handle, error)
}

type Closeable interface {
	Close() error
	Closed() bool
}

// PathAddressable is implemented by handles opened from a named file.
type PathAddressable interface {
	Path() string
}

var (
	_ Readable        = (*Handle)(nil)
	_ Writable        = (*Handle)(nil)
	_ Closeable       = (*Handle)(nil)
	_ PathAddressable = (*File)(nil)
)
