package stream

import (
	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"go.uber.org/zap"
)

// File is a Handle opened from a named path.
type File struct {
	*Handle
	opener  ports.StreamOpener
	openErr error
}

// AllocFile returns an Unopened file bound to opener, ready for Initialize.
func AllocFile(opener ports.StreamOpener) *File {
	return &File{Handle: New(), opener: opener}
}

// NewFile allocates and initializes a file. Check OpenErr or Closed to find
// out whether the path could be opened.
func NewFile(opener ports.StreamOpener, path string, mode string) *File {
	f := AllocFile(opener)
	// A fresh file cannot be reinitialized.
	_ = f.Initialize(path, mode)
	return f
}

// Initialize opens path with mode on an Unopened file. The path and mode are
// recorded even when the open fails; that failure is not returned but is
// available from OpenErr, and the file stays Unopened so it may be
// initialized again.
func (f *File) Initialize(path string, mode string) error {
	switch f.state {
	case StateOpen:
		return domain.ErrReinitializeFile
	case StateClosed:
		return domain.ErrReinitializeClosedFile
	}
	f.openErr = f.open(f.opener, path, mode)
	if f.openErr != nil {
		Logger().Debug("file not opened",
			zap.String("path", path),
			zap.String("mode", mode),
			zap.Error(f.openErr))
	}
	return nil
}

func (f *File) Path() string {
	return f.label
}

func (f *File) OpenErr() error {
	return f.openErr
}

// Exists reports whether path can be opened for reading.
func Exists(opener ports.StreamOpener, path string) bool {
	h, err := Open(opener, path, domain.DefaultMode)
	if err != nil {
		return false
	}
	_ = h.Close()
	return true
}
