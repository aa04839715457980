package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode     string
		expected Mode
	}{
		{"r", Mode{Readable: true}},
		{"w", Mode{Writable: true}},
		{"a", Mode{Writable: true}},
		{"rb", Mode{Readable: true}},
		{"wb", Mode{Writable: true}},
		{"r+", Mode{Readable: true, Writable: true}},
		{"w+", Mode{Readable: true, Writable: true}},
		{"a+", Mode{Readable: true, Writable: true}},
		{"rb+", Mode{Readable: true, Writable: true}},
		{"wt+", Mode{Readable: true, Writable: true}},
		{"", Mode{}},
		{"x", Mode{}},
		{"+", Mode{}},
		{"x+", Mode{Readable: true, Writable: true}},
		{"rbb+", Mode{Readable: true}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMode(tt.mode))
		})
	}
}
