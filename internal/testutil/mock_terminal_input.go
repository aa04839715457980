package testutil

import (
	"iostream/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.TerminalInput = (*MockTerminalInput)(nil)

type MockTerminalInput struct {
	mock.Mock
}

func (m *MockTerminalInput) ReadAll() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTerminalInput) IsTerminal() bool {
	args := m.Called()
	return args.Bool(0)
}
