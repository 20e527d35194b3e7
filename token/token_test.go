package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/token"
)

func TestTokenText(t *testing.T) {
	src := []byte("color: red")
	tok := token.Make(0, 5)
	require.Equal(t, "color", tok.Text(src))
}

func TestTokenUnquote(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{in: `"foo.scss"`, out: `foo.scss`},
		{in: `'foo.scss'`, out: `foo.scss`},
		{in: `foo.scss`, out: `foo.scss`},
		{in: `"\"escaped\""`, out: `\"escaped\"`},
	}
	for _, tt := range tests {
		src := []byte(tt.in)
		tok := token.Make(0, len(src))
		require.Equal(t, tt.out, tok.Unquote(src))
	}
}

func TestTokenLen(t *testing.T) {
	require.Equal(t, 5, token.Make(2, 7).Len())
}
