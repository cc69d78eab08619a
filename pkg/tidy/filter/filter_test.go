package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		match []string
		miss  []string
	}{
		{expr: "", match: []string{"", "anything"}},
		{expr: "/^[0-9]+$/", match: []string{"42"}, miss: []string{"4a", ""}},
		{expr: "alpha, beta,", match: []string{"alpha", "beta"}, miss: []string{"alph", "gamma"}},
		{expr: "user-*", match: []string{"user-1", "user-"}, miss: []string{"admin-1"}},
		{expr: "http*", match: []string{"http://example.com", "https"}, miss: []string{"ftp://x"}},
		{expr: "a?c", match: []string{"a/c", `a\c`, "abc"}, miss: []string{"ac", "abbc"}},
		{expr: "[!x]*.txt", match: []string{"dir/a.txt"}, miss: []string{"x.txt", "a.txt.bak"}},
		{expr: "v[0-9].(*)", match: []string{"v1.(beta)"}, miss: []string{"v1.beta", "va.(x)"}},
		{expr: `star\*`, match: []string{"star*"}, miss: []string{"stars"}},
		{expr: "Ada", match: []string{"ada lovelace", "LADA"}, miss: []string{"ad"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Parse(tt.expr)
			require.NoError(t, err)
			for _, m := range tt.match {
				assert.True(t, f.Match(m), "expected %q to match %q", tt.expr, m)
			}
			for _, m := range tt.miss {
				assert.False(t, f.Match(m), "expected %q not to match %q", tt.expr, m)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("/[/")
	assert.Error(t, err)

	for _, expr := range []string{"a[", "a[]", "a[-z]", "[z-a]*", `a[\`} {
		_, err = Parse(expr)
		assert.Error(t, err, expr)
	}
}

func TestKeep(t *testing.T) {
	f, err := Parse("a*")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, Keep(f, []string{"ab", "ba", "a"}))
	assert.Equal(t, []int{0, 1}, Keep(nil, []string{"x", "y"}))
	assert.Empty(t, Keep(f, nil))
}
