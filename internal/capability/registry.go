// Package capability detects what can be done with a runtime value: the
// operators its type supports, how it can be indexed or ranged over, which
// built-ins accept it. Detection is driven by an ordered table of
// (probe, symbol) pairs so that output order is deterministic and the
// mapping stays data rather than branching code.
package capability

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Capability pairs a probe identifier with the display symbol emitted when
// the probe matches. Several probes may share a symbol; the matcher emits
// each symbol at most once, first match wins.
type Capability struct {
	Probe  string
	Symbol string
}

// entry is a registry row before version filtering. minGo is the minimum
// toolchain minor version (go1.N) the probed behavior requires; 0 means
// always available.
type entry struct {
	probe  string
	symbol string
	minGo  int
}

// table is the full ordered catalogue. Grouping and order follow the way
// the symbols read in output: call, element access, resource management,
// membership, channels, iteration, operators, comparisons, built-ins and
// conversions.
var table = []entry{
	// callable
	{probe: "func", symbol: "()"},

	// element access
	{probe: "index.get", symbol: "[]"},
	{probe: "index.set", symbol: "[]"},
	{probe: "index.delete", symbol: "[]"},

	// resource management
	{probe: "closer", symbol: "with"},
	{probe: "locker", symbol: "with"},

	// membership
	{probe: "member.map", symbol: "in"},
	{probe: "member.method", symbol: "in"},

	// channels
	{probe: "chan.send", symbol: "obj<-"},
	{probe: "chan.recv", symbol: "<-obj"},
	{probe: "chan.close", symbol: "close()"},

	// iteration
	{probe: "range.seq", symbol: "range"},
	{probe: "range.int", symbol: "range", minGo: 22},
	{probe: "range.func", symbol: "range", minGo: 23},

	// binary operators
	{probe: "op.add", symbol: "+"},
	{probe: "op.concat", symbol: "+"},
	{probe: "op.sub", symbol: "-"},
	{probe: "op.mul", symbol: "*"},
	{probe: "op.quo", symbol: "/"},
	{probe: "op.rem", symbol: "%"},
	{probe: "op.shl", symbol: "<<"},
	{probe: "op.shr", symbol: ">>"},
	{probe: "op.and", symbol: "&"},
	{probe: "op.xor", symbol: "^"},
	{probe: "op.or", symbol: "|"},
	{probe: "op.andnot", symbol: "&^"},

	// unary operators
	{probe: "op.pos", symbol: "+obj"},
	{probe: "op.neg", symbol: "-obj"},
	{probe: "op.invert", symbol: "^obj"},
	{probe: "op.not", symbol: "!obj"},

	// comparisons
	{probe: "cmp.eq", symbol: "=="},
	{probe: "cmp.ne", symbol: "!="},
	{probe: "cmp.lt", symbol: "<"},
	{probe: "cmp.le", symbol: "<="},
	{probe: "cmp.gt", symbol: ">"},
	{probe: "cmp.ge", symbol: ">="},

	// built-ins and conversions
	{probe: "len", symbol: "len()"},
	{probe: "cap", symbol: "cap()"},
	{probe: "append", symbol: "append()"},
	{probe: "copy", symbol: "copy()"},
	{probe: "hash", symbol: "hash()"},
	{probe: "conv.bool", symbol: "bool()"},
	{probe: "conv.int", symbol: "int()"},
	{probe: "conv.float", symbol: "float64()"},
	{probe: "conv.complex", symbol: "complex128()"},
	{probe: "conv.string", symbol: "string()"},
	{probe: "stringer", symbol: "string()"},
	{probe: "error", symbol: "error"},
	{probe: "doc", symbol: "help()"},
}

var (
	registryOnce sync.Once
	registry     []Capability
)

// Registry returns the ordered capability catalogue for the running
// toolchain. Entries whose probed behavior needs a newer toolchain than
// the one this binary was built with are omitted here, at construction
// time, not during matching.
func Registry() []Capability {
	registryOnce.Do(func() {
		registry = buildRegistry(minorVersion(runtime.Version()))
	})
	return registry
}

// buildRegistry filters the table against a toolchain minor version.
func buildRegistry(minor int) []Capability {
	out := make([]Capability, 0, len(table))
	for _, e := range table {
		if e.minGo > minor {
			continue
		}
		out = append(out, Capability{Probe: e.probe, Symbol: e.symbol})
	}
	return out
}

// unknownMinor is assumed for version strings we cannot parse (devel
// builds, alternative toolchains); those support everything in the table.
const unknownMinor = 1 << 20

// minorVersion extracts N from a runtime version like "go1.N" or "go1.N.M".
func minorVersion(v string) int {
	const prefix = "go1."
	if !strings.HasPrefix(v, prefix) {
		return unknownMinor
	}
	rest := v[len(prefix):]
	if i := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		rest = rest[:i]
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return unknownMinor
	}
	return n
}
