package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"iostream/internal/ports"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/multierr"
)

var _ ports.Stream = (*BufferedStream)(nil)

type direction int

const (
	directionNone direction = iota
	directionRead
	directionWrite
)

// BufferedStream is a stdio-like buffered stream over a billy.File. Update
// streams may alternate reads and writes: switching to reading flushes pending
// writes, switching to writing drops read-ahead by seeking back over it.
type BufferedStream struct {
	file   billy.File
	reader *bufio.Reader
	writer *bufio.Writer
	last   direction
	eof    bool
}

func NewBufferedStream(file billy.File) *BufferedStream {
	return &BufferedStream{
		file:   file,
		reader: bufio.NewReader(file),
		writer: bufio.NewWriter(file),
	}
}

func (s *BufferedStream) Name() string {
	return s.file.Name()
}

func (s *BufferedStream) beginRead() error {
	if s.last == directionWrite {
		if err := s.writer.Flush(); err != nil {
			return fmt.Errorf("billy: flush %q: %w", s.file.Name(), err)
		}
	}
	s.last = directionRead
	return nil
}

func (s *BufferedStream) beginWrite() error {
	if s.last == directionRead {
		if n := s.reader.Buffered(); n > 0 {
			if _, err := s.file.Seek(int64(-n), io.SeekCurrent); err != nil {
				return fmt.Errorf("billy: seek %q off=%d: %w", s.file.Name(), -n, err)
			}
		}
		s.reader.Reset(s.file)
		s.eof = false
	}
	s.last = directionWrite
	return nil
}

func (s *BufferedStream) ReadBlock(p []byte) (int, error) {
	if err := s.beginRead(); err != nil {
		return 0, err
	}
	n, err := io.ReadFull(s.reader, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		s.eof = true
		return n, nil
	}
	if err != nil {
		return n, fmt.Errorf("billy: read %q: %w", s.file.Name(), err)
	}
	return n, nil
}

func (s *BufferedStream) WriteBlock(p []byte) (int, error) {
	if err := s.beginWrite(); err != nil {
		return 0, err
	}
	n, err := s.writer.Write(p)
	if err != nil {
		return 0, fmt.Errorf("billy: write %q: %w", s.file.Name(), err)
	}
	if n < len(p) {
		return 0, nil
	}
	return 1, nil
}

func (s *BufferedStream) ReadByte() (byte, error) {
	if err := s.beginRead(); err != nil {
		return 0, err
	}
	b, err := s.reader.ReadByte()
	if errors.Is(err, io.EOF) {
		s.eof = true
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("billy: read %q: %w", s.file.Name(), err)
	}
	return b, nil
}

func (s *BufferedStream) WriteByte(c byte) error {
	if err := s.beginWrite(); err != nil {
		return err
	}
	if err := s.writer.WriteByte(c); err != nil {
		return fmt.Errorf("billy: write %q: %w", s.file.Name(), err)
	}
	return nil
}

func (s *BufferedStream) ReadLine(limit int) ([]byte, error) {
	if err := s.beginRead(); err != nil {
		return nil, err
	}
	var line []byte
	for limit <= 0 || len(line) < limit {
		b, err := s.reader.ReadByte()
		if errors.Is(err, io.EOF) {
			s.eof = true
			if len(line) == 0 {
				return nil, io.EOF
			}
			return line, nil
		}
		if err != nil {
			return line, fmt.Errorf("billy: read %q: %w", s.file.Name(), err)
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return line, nil
}

func (s *BufferedStream) EOF() bool {
	return s.eof
}

func (s *BufferedStream) Flush() error {
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("billy: flush %q: %w", s.file.Name(), err)
	}
	return nil
}

func (s *BufferedStream) Close() error {
	var err error
	if flushErr := s.writer.Flush(); flushErr != nil {
		err = multierr.Append(err, fmt.Errorf("billy: flush %q: %w", s.file.Name(), flushErr))
	}
	if closeErr := s.file.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("billy: close %q: %w", s.file.Name(), closeErr))
	}
	return err
}
