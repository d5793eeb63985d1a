package arguments_test

import (
	"testing"

	"github.com/arthur-debert/cigen/pkg/arguments"
	"github.com/stretchr/testify/assert"
)

func TestDoubleQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		special []rune
		want    string
	}{
		{name: "plain", value: "abc", want: "abc"},
		{name: "space", value: "a b", want: `"a b"`},
		{name: "tab", value: "a\tb", want: "\"a\tb\""},
		{name: "empty", value: "", want: `""`},
		{name: "embedded_quotes", value: `say "hi"`, want: `"say \"hi\""`},
		{name: "quote_without_whitespace_untouched", value: `a"b`, want: `a"b`},
		{name: "already_quoted", value: `"a b"`, want: `"a b"`},
		{name: "single_quote_char", value: `"`, want: `"`},
		{name: "special_char", value: "a;b", special: []rune{';'}, want: `"a;b"`},
		{name: "special_not_present", value: "a;b", special: []rune{','}, want: "a;b"},
		{name: "unicode_special", value: "a→b", special: []rune{'→'}, want: `"a→b"`},
		// Backslashes are not escaped, so the closing quote ends up escaped.
		{name: "trailing_backslash", value: `C:\my dir\`, want: `"C:\my dir\"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arguments.DoubleQuoteIfNeeded(tt.value, tt.special...))
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	assert.True(t, arguments.NeedsQuoting(""))
	assert.True(t, arguments.NeedsQuoting("a\nb"))
	assert.True(t, arguments.NeedsQuoting("k=v", '='))
	assert.False(t, arguments.NeedsQuoting("k=v"))
	assert.False(t, arguments.NeedsQuoting("--flag"))
}

func TestDoubleQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, arguments.DoubleQuote("plain"))
	assert.Equal(t, `"\"x\""`, arguments.DoubleQuote(`"x"`))
	assert.Equal(t, `""`, arguments.DoubleQuote(""))
}

func TestIsDoubleQuoted(t *testing.T) {
	assert.True(t, arguments.IsDoubleQuoted(`""`))
	assert.True(t, arguments.IsDoubleQuoted(`"a b"`))
	assert.False(t, arguments.IsDoubleQuoted(`"`))
	assert.False(t, arguments.IsDoubleQuoted(`"a`))
	assert.False(t, arguments.IsDoubleQuoted(`a"`))
}
