package filter

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWildcard(t *testing.T) {
	tokens := []string{"hash()", "hex", ".Help()", "len()"}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"prefix", "h*", []string{"hash()", "hex"}},
		{"full match only", "hash", nil},
		{"exact", "hash()", []string{"hash()"}},
		{"case sensitive", "H*", nil},
		{"everything", "*", []string{"hash()", "hex", ".Help()", "len()"}},
		{"nothing", "zz*", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wildcard(tokens, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWildcardBadPattern(t *testing.T) {
	_, err := Wildcard([]string{"a"}, "[")
	require.Error(t, err)
	assert.ErrorIs(t, err, path.ErrBadPattern)

	// A malformed pattern is still the caller's error when there is
	// nothing to filter.
	_, err = Wildcard(nil, "[")
	assert.ErrorIs(t, err, path.ErrBadPattern)
}

func TestRegexp(t *testing.T) {
	tokens := []string{"hash()", ".Get()", ".Set()", "len()"}

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"substring, not anchored", "et", []string{".Get()", ".Set()"}},
		{"alternation", "Get|Set", []string{".Get()", ".Set()"}},
		{"anchored when asked", "^hash", []string{"hash()"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Regexp(tokens, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexpBadExpression(t *testing.T) {
	_, err := Regexp([]string{"a"}, "(")
	assert.Error(t, err)

	_, err = Regexp(nil, "(")
	assert.Error(t, err)
}

func TestFiltersPreserveOrder(t *testing.T) {
	tokens := []string{"c", "a", "cab", "ab"}

	got, err := Wildcard(tokens, "*a*")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "cab", "ab"}, got)

	got, err = Regexp(tokens, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "cab", "ab"}, got)
}
