package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsProbe(reg []Capability, probe string) bool {
	for _, c := range reg {
		if c.Probe == probe {
			return true
		}
	}
	return false
}

func TestBuildRegistryVersionGating(t *testing.T) {
	tests := []struct {
		name          string
		minor         int
		wantRangeInt  bool
		wantRangeFunc bool
	}{
		{"go1.21 has neither", 21, false, false},
		{"go1.22 gains range-over-int", 22, true, false},
		{"go1.23 gains iterator funcs", 23, true, true},
		{"newer keeps both", 25, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := buildRegistry(tt.minor)
			assert.Equal(t, tt.wantRangeInt, containsProbe(reg, "range.int"))
			assert.Equal(t, tt.wantRangeFunc, containsProbe(reg, "range.func"))
		})
	}
}

func TestBuildRegistryKeepsTableOrder(t *testing.T) {
	reg := buildRegistry(unknownMinor)
	require.Len(t, reg, len(table))
	for i, e := range table {
		assert.Equal(t, e.probe, reg[i].Probe)
		assert.Equal(t, e.symbol, reg[i].Symbol)
	}
	// First and last groups anchor the output order.
	assert.Equal(t, "()", reg[0].Symbol)
	assert.Equal(t, "help()", reg[len(reg)-1].Symbol)
}

func TestEveryProbeInTableIsKnown(t *testing.T) {
	for _, e := range table {
		_, ok := probes[e.probe]
		assert.True(t, ok, "probe %q has no predicate", e.probe)
	}
}

func TestMinorVersion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"go1.22", 22},
		{"go1.25.1", 25},
		{"go1.9", 9},
		{"go1.23rc1", 23},
		{"devel +abc1234", unknownMinor},
		{"go2.0", unknownMinor},
		{"go1.x", unknownMinor},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, minorVersion(tt.in))
		})
	}
}

func TestRegistryIsStable(t *testing.T) {
	a := Registry()
	b := Registry()
	require.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
