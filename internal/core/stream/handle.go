// Package stream implements the stream handle state machine and its named
// file specialization.
//
// A Handle moves from Unopened to Open when its stream is opened and from
// Open to Closed when it is closed. Closed is terminal. Every operation checks
// the handle's capability flags before it touches the stream, so a closed or
// capability-mismatched handle fails without side effects.
//
// Handles are not safe for concurrent use; callers serialize access.
package stream

import (
	"errors"
	"io"

	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"go.uber.org/zap"
)

const (
	// BlockSize is the size of each block read when reading a stream to its end.
	BlockSize = 1024
	// LineBufferSize bounds Gets. Like a C line read into a buffer of this
	// size, at most LineBufferSize-1 bytes are returned per call.
	LineBufferSize = 1024
)

// State is the lifecycle position of a Handle.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Handle owns one buffered stream and the capability flags it was opened with.
type Handle struct {
	stream   ports.Stream
	label    string
	mode     string
	readable bool
	writable bool
	buffered bool
	state    State
}

// New returns an Unopened handle.
func New() *Handle {
	return &Handle{}
}

// Open opens path with the raw mode string. The returned handle is never nil:
// when the opener fails it is Unopened, carries no stream and has both
// capability flags cleared, and the opener's error is returned alongside it.
func Open(opener ports.StreamOpener, path string, mode string) (*Handle, error) {
	h := New()
	err := h.open(opener, path, mode)
	return h, err
}

func (h *Handle) open(opener ports.StreamOpener, path string, mode string) error {
	h.label = path
	h.mode = mode

	s, err := opener.Open(path, mode)
	if err != nil {
		Logger().Debug("stream open failed",
			zap.String("path", path),
			zap.String("mode", mode),
			zap.Error(err))
		return err
	}

	flags := domain.ParseMode(mode)
	h.stream = s
	h.readable = flags.Readable
	h.writable = flags.Writable
	h.buffered = true
	h.state = StateOpen

	Logger().Debug("stream opened",
		zap.String("path", path),
		zap.String("mode", mode),
		zap.Bool("readable", h.readable),
		zap.Bool("writable", h.writable))
	return nil
}

func (h *Handle) canRead() bool {
	return h.stream != nil && h.readable
}

func (h *Handle) canWrite() bool {
	return h.stream != nil && h.writable
}

// Close releases the stream. Closing a handle without a live stream is an
// IOError, including a second Close.
func (h *Handle) Close() error {
	if h.stream == nil {
		return domain.ErrClosedStream
	}
	if err := h.Release(); err != nil {
		Logger().Warn("stream close failed", zap.String("path", h.label), zap.Error(err))
	}
	return nil
}

// Release closes the stream the way Close does but returns the stream's own
// close error instead of logging it. It does nothing when there is no stream.
func (h *Handle) Release() error {
	if h.stream == nil {
		return nil
	}
	err := h.stream.Close()
	h.stream = nil
	h.readable = false
	h.writable = false
	h.state = StateClosed
	Logger().Debug("stream closed", zap.String("path", h.label))
	return err
}

// Closed reports whether the handle has no live stream.
func (h *Handle) Closed() bool {
	return h.stream == nil
}

// Write writes data as one block and returns the number of records written:
// 1 on success, 0 when the stream rejected the write. Empty data writes
// nothing and returns 0.
func (h *Handle) Write(data []byte) (int, error) {
	if !h.canWrite() {
		return 0, domain.ErrNotOpenedForWriting
	}
	if len(data) == 0 {
		return 0, nil
	}
	n, err := h.stream.WriteBlock(data)
	if err != nil {
		Logger().Warn("stream write failed", zap.String("path", h.label), zap.Error(err))
	}
	h.flushUnbuffered()
	return n, nil
}

// Read reads the rest of the stream in BlockSize blocks until a short read.
func (h *Handle) Read() ([]byte, error) {
	if !h.canRead() {
		return nil, domain.ErrNotOpenedForReading
	}
	data := make([]byte, 0, BlockSize)
	block := make([]byte, BlockSize)
	for {
		n, err := h.stream.ReadBlock(block)
		data = append(data, block[:n]...)
		if err != nil {
			Logger().Warn("stream read failed", zap.String("path", h.label), zap.Error(err))
			break
		}
		if n < BlockSize {
			break
		}
	}
	return data, nil
}

// ReadN reads up to length bytes, stopping early at the end of the stream.
// The result is empty, not nil, at the end of the stream. A negative length is
// rejected before the handle's state is looked at. The buffer grows in
// BlockSize steps, so length only bounds the read.
func (h *Handle) ReadN(length int) ([]byte, error) {
	if length < 0 {
		return nil, domain.NewArgumentError("negative length %d given", length)
	}
	if !h.canRead() {
		return nil, domain.ErrNotOpenedForReading
	}
	block := make([]byte, min(length, BlockSize))
	data := make([]byte, 0, len(block))
	for len(data) < length {
		p := block[:min(length-len(data), len(block))]
		n, err := h.stream.ReadBlock(p)
		data = append(data, p[:n]...)
		if err != nil {
			Logger().Warn("stream read failed", zap.String("path", h.label), zap.Error(err))
			break
		}
		if n < len(p) {
			break
		}
	}
	return data, nil
}

// Getc returns the next byte; ok is false at the end of the stream.
func (h *Handle) Getc() (b byte, ok bool, err error) {
	if !h.canRead() {
		return 0, false, domain.ErrNotOpenedForReading
	}
	b, err = h.stream.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			Logger().Warn("stream read failed", zap.String("path", h.label), zap.Error(err))
		}
		return 0, false, nil
	}
	return b, true, nil
}

// Gets returns the next line including its terminator, truncated to
// LineBufferSize-1 bytes; the remainder of a longer line is returned by the
// following calls. ok is false at the end of the stream.
func (h *Handle) Gets() (string, bool, error) {
	return h.readLine(LineBufferSize - 1)
}

// ReadLine is Gets without the length bound.
func (h *Handle) ReadLine() (string, bool, error) {
	return h.readLine(0)
}

func (h *Handle) readLine(limit int) (string, bool, error) {
	if !h.canRead() {
		return "", false, domain.ErrNotOpenedForReading
	}
	line, err := h.stream.ReadLine(limit)
	if err != nil && !errors.Is(err, io.EOF) {
		Logger().Warn("stream read failed", zap.String("path", h.label), zap.Error(err))
	}
	if len(line) == 0 {
		return "", false, nil
	}
	return string(line), true, nil
}

// Putc writes a single byte straight to the stream.
func (h *Handle) Putc(b byte) error {
	if !h.canWrite() {
		return domain.ErrNotOpenedForWriting
	}
	if err := h.stream.WriteByte(b); err != nil {
		Logger().Warn("stream write failed", zap.String("path", h.label), zap.Error(err))
	}
	h.flushUnbuffered()
	return nil
}

// EOF reports the stream's end-of-stream indicator, which is set once a read
// has reached the end.
func (h *Handle) EOF() (bool, error) {
	if !h.canRead() {
		return false, domain.ErrNotOpenedForReading
	}
	return h.stream.EOF(), nil
}

// Flush pushes buffered writes to the stream and returns h for chaining.
func (h *Handle) Flush() (*Handle, error) {
	if !h.canWrite() {
		return nil, domain.ErrNotOpenedForWriting
	}
	if h.buffered {
		h.flushStream()
	}
	return h, nil
}

// Sync reports whether every write is flushed immediately.
func (h *Handle) Sync() (bool, error) {
	if h.stream == nil {
		return false, domain.ErrClosedStream
	}
	return !h.buffered, nil
}

// SetSync switches between flush-on-demand and flush-after-every-write.
func (h *Handle) SetSync(sync bool) error {
	if h.stream == nil {
		return domain.ErrClosedStream
	}
	h.buffered = !sync
	if sync {
		h.flushStream()
	}
	return nil
}

func (h *Handle) flushUnbuffered() {
	if !h.buffered {
		h.flushStream()
	}
}

func (h *Handle) flushStream() {
	if err := h.stream.Flush(); err != nil {
		Logger().Warn("stream flush failed", zap.String("path", h.label), zap.Error(err))
	}
}

// Label returns the path the handle was opened with.
func (h *Handle) Label() string {
	return h.label
}

// Mode returns the raw mode string given at open time.
func (h *Handle) Mode() string {
	return h.mode
}

// IsReadable reports whether reads are allowed.
func (h *Handle) IsReadable() bool {
	return h.readable
}

// IsWritable reports whether writes are allowed.
func (h *Handle) IsWritable() bool {
	return h.writable
}

// State returns the handle's lifecycle state.
func (h *Handle) State() State {
	return h.state
}
