package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectiveNameInMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"quoted word", `cannot resolve @import "colors": no loader configured`, "colors"},
		{"no quotes", "expected ':' after property name", ""},
		{"unterminated quote", `expected a string like "foo`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, directiveNameInMessage(tt.message))
		})
	}
}
