package ports

import "iostream/internal/core/domain"

// Stream is a buffered byte stream with stdio-like semantics.
type Stream interface {
	// ReadBlock fills p unless the end of the stream is reached first and
	// returns the number of bytes read.
	ReadBlock(p []byte) (int, error)
	// WriteBlock writes p as a single record and returns the number of
	// records written: 1 on success, 0 otherwise.
	WriteBlock(p []byte) (int, error)
	ReadByte() (byte, error)
	WriteByte(c byte) error
	// ReadLine reads through the next '\n'. A positive limit caps the number
	// of bytes returned; the rest of the line is left for the next call.
	ReadLine(limit int) ([]byte, error)
	// EOF reports whether a read has hit the end of the stream.
	EOF() bool
	Flush() error
	Close() error
}

// StreamOpener opens streams by path using an fopen-style mode string.
type StreamOpener interface {
	Open(path string, mode string) (Stream, error)
}

// StreamOpenerFactory builds a StreamOpener for a configured backend.
type StreamOpenerFactory interface {
	ForBackend(backend domain.Backend) (StreamOpener, error)
}
