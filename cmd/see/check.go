package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/backmassage/see/internal/capability"
	"github.com/backmassage/see/internal/logging"
	"github.com/backmassage/see/internal/term"
)

var checkCmd = &cobra.Command{
	Use:           "check",
	Short:         "Report terminal and capability-registry diagnostics",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// runCheck prints what the renderer and registry will work with on this
// system. Informational only; it never fails.
func runCheck(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logging.New(&cfg)

	log.Info("=== see %s (%s) ===", version, commit)
	log.Info("toolchain: %s", runtime.Version())

	if term.IsTerminal(os.Stdout) {
		log.Success("stdout: terminal, width %d", term.Width(os.Stdout))
	} else {
		log.Warn("stdout: not a terminal (width fallback %d)", term.Width(os.Stdout))
	}
	if term.Enabled() {
		log.Success("colors: enabled")
	} else {
		log.Info("colors: disabled")
	}

	reg := capability.Registry()
	symbols := make(map[string]bool, len(reg))
	for _, c := range reg {
		symbols[c.Symbol] = true
	}
	log.Info("registry: %d probes, %d symbols", len(reg), len(symbols))

	// Probes registered only on newer toolchains.
	for _, probe := range []string{"range.int", "range.func"} {
		if hasProbe(reg, probe) {
			log.Success("%s: active", probe)
		} else {
			log.Warn("%s: not supported by this toolchain", probe)
		}
	}
	return nil
}

func hasProbe(reg []capability.Capability, probe string) bool {
	for _, c := range reg {
		if c.Probe == probe {
			return true
		}
	}
	return false
}
