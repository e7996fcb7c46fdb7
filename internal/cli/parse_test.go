package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pancake/pancake"
)

func TestParseStack(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want pancake.Stack
	}{
		{"separate args", []string{"3", "1", "2"}, pancake.Stack{3, 1, 2}},
		{"one quoted arg", []string{"3 1 2"}, pancake.Stack{3, 1, 2}},
		{"commas", []string{"3,1,2"}, pancake.Stack{3, 1, 2}},
		{"mixed", []string{"4,", "2 3", "1"}, pancake.Stack{4, 2, 3, 1}},
		{"single", []string{"1"}, pancake.Stack{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStack(tt.args, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStack_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		size int
		want error
	}{
		{"not a number", []string{"3", "x", "1"}, 0, pancake.ErrInvalidStack},
		{"duplicate", []string{"2 2 1"}, 0, pancake.ErrInvalidStack},
		{"out of range", []string{"1 2 5"}, 0, pancake.ErrInvalidStack},
		{"zero", []string{"0 1"}, 0, pancake.ErrInvalidStack},
		{"wrong size", []string{"2 1"}, 3, pancake.ErrInvalidStack},
		{"empty", nil, 0, pancake.ErrEmptyStack},
		{"only separators", []string{", ,"}, 0, pancake.ErrEmptyStack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStack(tt.args, tt.size)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
