package strbundle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strbundle/strbundle"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{
			name:     "no args leaves template unchanged",
			template: "Hello, %S!",
			args:     nil,
			expected: "Hello, %S!",
		},
		{
			name:     "implicit first argument lowercase",
			template: "Hello, %s!",
			args:     []any{"World"},
			expected: "Hello, World!",
		},
		{
			name:     "implicit first argument uppercase",
			template: "Hello, %S!",
			args:     []any{"World"},
			expected: "Hello, World!",
		},
		{
			name:     "mixed case placeholders bind the same value",
			template: "%S and %s",
			args:     []any{"twice"},
			expected: "twice and twice",
		},
		{
			name:     "implicit and explicit positional together",
			template: "Here, have %s and %2$S",
			args:     []any{"a cookie", "$5"},
			expected: "Here, have a cookie and $5",
		},
		{
			name:     "explicit positional lowercase s",
			template: "%1$s meets %2$s",
			args:     []any{"Alice", "Bob"},
			expected: "Alice meets Bob",
		},
		{
			name:     "explicit first position equals implicit placeholder",
			template: "%1$S is %S",
			args:     []any{"same"},
			expected: "same is same",
		},
		{
			name:     "repeated placeholders replaced globally",
			template: "%S, %S, %2$S, %2$S",
			args:     []any{"a", "b"},
			expected: "a, a, b, b",
		},
		{
			name:     "position beyond args stays literal",
			template: "have %s and %3$S",
			args:     []any{"tea"},
			expected: "have tea and %3$S",
		},
		{
			name:     "out of order positions",
			template: "%2$S before %1$S",
			args:     []any{"first", "second"},
			expected: "second before first",
		},
		{
			name:     "non-string arguments rendered with %v",
			template: "%S items, %2$S left",
			args:     []any{5, true},
			expected: "5 items, true left",
		},
		{
			name:     "position zero is not a placeholder",
			template: "%0$S stays",
			args:     []any{"x"},
			expected: "%0$S stays",
		},
		{
			name:     "lone percent untouched",
			template: "100% done, %S",
			args:     []any{"ok"},
			expected: "100% done, ok",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := strbundle.Substitute(tt.template, tt.args...)
			require.Equal(t, tt.expected, result)
		})
	}
}
