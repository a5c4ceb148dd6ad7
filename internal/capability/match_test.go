package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullRegistry ignores the running toolchain so expectations are stable.
func fullRegistry() []Capability { return buildRegistry(unknownMinor) }

func matchValue(t *testing.T, v any) []string {
	t.Helper()
	target, ok := NewTarget(v)
	require.True(t, ok)
	return match(fullRegistry(), target)
}

// --- Fixtures ---

type resource struct{}

func (resource) Close() error { return nil }
func (resource) Lock()        {}
func (resource) Unlock()      {}

type label string

func (l label) String() string { return string(l) }

type failure struct{}

func (failure) Error() string { return "failure" }

type documented struct{ text string }

func (d documented) Doc() string { return d.text }

type panicDoc struct{}

func (panicDoc) Doc() string { panic("no docs here") }

type set struct{ items []string }

func (s set) Contains(v string) bool {
	for _, it := range s.items {
		if it == v {
			return true
		}
	}
	return false
}

// --- Tests ---

func TestMatchInt(t *testing.T) {
	got := matchValue(t, 2)
	want := []string{
		"range",
		"+", "-", "*", "/", "%",
		"<<", ">>", "&", "^", "|", "&^",
		"+obj", "-obj", "^obj",
		"==", "!=", "<", "<=", ">", ">=",
		"hash()", "int()", "float64()", "string()",
	}
	assert.Equal(t, want, got)

	assert.NotContains(t, got, "()")
	assert.NotContains(t, got, "[]")
	assert.NotContains(t, got, "with")
	assert.NotContains(t, got, "in")
	assert.NotContains(t, got, "bool()")
	assert.NotContains(t, got, "complex128()")
}

func TestMatchPerKind(t *testing.T) {
	recvOnly := func() <-chan int { return make(chan int) }()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{
			"map dedups item access to one []",
			map[string]int{"a": 1},
			[]string{"[]", "in", "range", "len()"},
		},
		{
			"slice",
			[]int{1, 2},
			[]string{"[]", "range", "len()", "cap()", "append()", "copy()"},
		},
		{
			"string",
			"abc",
			[]string{"[]", "range", "+", "==", "!=", "<", "<=", ">", ">=", "len()", "hash()", "string()"},
		},
		{
			"bidirectional channel",
			make(chan int),
			[]string{"obj<-", "<-obj", "close()", "range", "==", "!=", "len()", "cap()", "hash()"},
		},
		{
			"receive-only channel",
			recvOnly,
			[]string{"<-obj", "range", "==", "!=", "len()", "cap()", "hash()"},
		},
		{
			"bool",
			true,
			[]string{"!obj", "==", "!=", "hash()", "bool()"},
		},
		{
			"plain func is only callable",
			func() {},
			[]string{"()"},
		},
		{
			"iterator func is also rangeable",
			func(yield func(int) bool) {},
			[]string{"()", "range"},
		},
		{
			"float",
			1.5,
			[]string{"+", "-", "*", "/", "+obj", "-obj", "==", "!=", "<", "<=", ">", ">=", "hash()", "int()", "float64()"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchValue(t, tt.value))
		})
	}
}

func TestMatchSymbolDedup(t *testing.T) {
	// Closer and Locker probes both map to "with"; first match wins and
	// the symbol appears exactly once.
	got := matchValue(t, resource{})
	assert.Equal(t, []string{"with", "==", "!=", "hash()"}, got)

	// A string-backed Stringer hits both conv.string and stringer.
	count := 0
	for _, sym := range matchValue(t, label("x")) {
		if sym == "string()" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMatchMembershipMethod(t *testing.T) {
	got := matchValue(t, set{items: []string{"a"}})
	assert.Contains(t, got, "in")
}

func TestMatchError(t *testing.T) {
	assert.Contains(t, matchValue(t, failure{}), "error")
}

func TestMatchDoc(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantHelp bool
	}{
		{"non-blank doc", documented{text: "does things"}, true},
		{"blank doc", documented{text: "   \n\t"}, false},
		{"empty doc", documented{text: ""}, false},
		{"panicking doc is suppressed", panicDoc{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchValue(t, tt.value)
			if tt.wantHelp {
				assert.Contains(t, got, "help()")
			} else {
				assert.NotContains(t, got, "help()")
			}
		})
	}
}

func TestMatchRespectsGatedRegistry(t *testing.T) {
	target, ok := NewTarget(7)
	require.True(t, ok)

	old := match(buildRegistry(21), target)
	assert.NotContains(t, old, "range")

	modern := match(buildRegistry(22), target)
	assert.Contains(t, modern, "range")
}

func TestNewTargetNil(t *testing.T) {
	_, ok := NewTarget(nil)
	assert.False(t, ok)
}

func TestHasUnknownProbe(t *testing.T) {
	target, ok := NewTarget(1)
	require.True(t, ok)
	assert.False(t, Has(target, "no.such.probe"))
}
