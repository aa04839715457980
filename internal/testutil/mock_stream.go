package testutil

import (
	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance checks
var (
	_ ports.Stream              = (*MockStream)(nil)
	_ ports.StreamOpener        = (*MockStreamOpener)(nil)
	_ ports.StreamOpenerFactory = (*MockStreamOpenerFactory)(nil)
)

type MockStream struct {
	mock.Mock
}

func (m *MockStream) ReadBlock(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockStream) WriteBlock(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockStream) ReadByte() (byte, error) {
	args := m.Called()
	return args.Get(0).(byte), args.Error(1)
}

func (m *MockStream) WriteByte(c byte) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStream) ReadLine(limit int) ([]byte, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStream) EOF() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStream) Flush() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStream) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockStreamOpener struct {
	mock.Mock
}

func (m *MockStreamOpener) Open(path string, mode string) (ports.Stream, error) {
	args := m.Called(path, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Stream), args.Error(1)
}

type MockStreamOpenerFactory struct {
	mock.Mock
}

func (m *MockStreamOpenerFactory) ForBackend(backend domain.Backend) (ports.StreamOpener, error) {
	args := m.Called(backend)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.StreamOpener), args.Error(1)
}
