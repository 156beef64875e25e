package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanPayload(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		shouldError bool
	}{
		{name: "user id", input: "Xk9_a-21bQ", shouldError: false},
		{name: "max length", input: strings.Repeat("a", 128), shouldError: false},
		{name: "too long", input: strings.Repeat("a", 129), shouldError: true},
		{name: "contains space", input: "abc def", shouldError: true},
		{name: "leading space", input: " abc", shouldError: true},
		{name: "punctuation", input: "abc.def", shouldError: true},
		{name: "url", input: "https://evil.example/x", shouldError: true},
		{name: "empty", input: "", shouldError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseScanPayload(tt.input)
			if tt.shouldError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidScanPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, id)
		})
	}
}
