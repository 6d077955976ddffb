package strbundle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strbundle/strbundle"
)

func TestRuleOneForm(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 5, 100, -3} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, 0, strbundle.RuleOneForm(n))
		})
	}
}

func TestRuleEnglish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{0, 1},
		{1, 0},
		{-1, 0},
		{2, 1},
		{5, 1},
		{11, 1},
		{100, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleEnglish(tt.n))
		})
	}
}

func TestRuleFrench(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{2, 1},
		{20, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleFrench(tt.n))
		})
	}
}

func TestRuleRussian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{1, 0},
		{21, 0},
		{101, 0},
		{2, 1},
		{3, 1},
		{4, 1},
		{22, 1},
		{102, 1},
		{0, 2},
		{5, 2},
		{11, 2},
		{12, 2},
		{14, 2},
		{25, 2},
		{100, 2},
		{111, 2},
		{-22, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleRussian(tt.n))
		})
	}
}

func TestRulePolish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{1, 0},
		{2, 1},
		{4, 1},
		{22, 1},
		{0, 2},
		{5, 2},
		{12, 2},
		{14, 2},
		{21, 2},
		{100, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RulePolish(tt.n))
		})
	}
}

func TestRuleCzech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 1},
		{0, 2},
		{5, 2},
		{22, 2},
		{100, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleCzech(tt.n))
		})
	}
}

func TestRuleArabic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 3},
		{103, 3},
		{11, 4},
		{99, 4},
		{111, 4},
		{100, 5},
		{102, 5},
		{200, 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleArabic(tt.n))
		})
	}
}

func TestRuleIcelandic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{1, 0},
		{21, 0},
		{31, 0},
		{11, 1},
		{111, 1},
		{2, 1},
		{0, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleIcelandic(tt.n))
		})
	}
}

func TestRuleSlovenian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected int
	}{
		{1, 0},
		{101, 0},
		{2, 1},
		{102, 1},
		{3, 2},
		{4, 2},
		{104, 2},
		{0, 3},
		{5, 3},
		{11, 3},
		{100, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, strbundle.RuleSlovenian(tt.n))
		})
	}
}

func TestRuleByID(t *testing.T) {
	t.Parallel()

	t.Run("returns registered rule with form count", func(t *testing.T) {
		t.Parallel()
		rule, forms, err := strbundle.RuleByID(7)
		require.NoError(t, err)
		require.NotNil(t, rule)
		require.Equal(t, 3, forms)
		require.Equal(t, 0, rule(21))
	})

	t.Run("one form family", func(t *testing.T) {
		t.Parallel()
		_, forms, err := strbundle.RuleByID(0)
		require.NoError(t, err)
		require.Equal(t, 1, forms)
	})

	t.Run("arabic family has six forms", func(t *testing.T) {
		t.Parallel()
		_, forms, err := strbundle.RuleByID(12)
		require.NoError(t, err)
		require.Equal(t, 6, forms)
	})

	t.Run("negative id", func(t *testing.T) {
		t.Parallel()
		_, _, err := strbundle.RuleByID(-1)
		require.ErrorIs(t, err, strbundle.ErrUnknownPluralRule)
	})

	t.Run("id beyond registry", func(t *testing.T) {
		t.Parallel()
		_, _, err := strbundle.RuleByID(17)
		require.ErrorIs(t, err, strbundle.ErrUnknownPluralRule)
	})
}
