package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dockhand/internal/app/errors"
)

func Test_ParseID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CommandID
		err      bool
	}{
		{name: "Positive integer", input: "12", expected: 12},
		{name: "Surrounding spaces", input: " 3 ", expected: 3},
		{name: "Zero", input: "0", err: true},
		{name: "Negative", input: "-4", err: true},
		{name: "Not a number", input: "abc", err: true},
		{name: "Empty", input: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)

			if tt.err {
				assert.ErrorIs(t, err, errors.ErrInvalidCommandID)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func Test_Command_Merge(t *testing.T) {
	tests := []struct {
		name     string
		patch    Command
		expected Command
	}{
		{
			name:     "Empty patch keeps everything",
			patch:    Command{},
			expected: Command{ID: 1, Name: "migrate", Image: "app:1", Command: "./migrate"},
		},
		{
			name:     "Only image",
			patch:    Command{Image: "app:2"},
			expected: Command{ID: 1, Name: "migrate", Image: "app:2", Command: "./migrate"},
		},
		{
			name:     "All fields",
			patch:    Command{ID: 9, Name: "seed", Image: "app:3", Command: "./seed"},
			expected: Command{ID: 1, Name: "seed", Image: "app:3", Command: "./seed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Command{ID: 1, Name: "migrate", Image: "app:1", Command: "./migrate"}

			c.Merge(tt.patch)

			assert.Equal(t, tt.expected, c)
		})
	}
}
