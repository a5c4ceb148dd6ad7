package capability

// Match returns the ordered list of capability symbols target exhibits.
// The registry is walked in order; a symbol already emitted is skipped, so
// when several probes share a symbol the first match wins.
func Match(t Target) []string {
	return match(Registry(), t)
}

func match(reg []Capability, t Target) []string {
	var symbols []string
	seen := make(map[string]bool, len(reg))
	for _, c := range reg {
		if seen[c.Symbol] {
			continue
		}
		if !Has(t, c.Probe) {
			continue
		}
		seen[c.Symbol] = true
		symbols = append(symbols, c.Symbol)
	}
	return symbols
}
