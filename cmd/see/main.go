// Command see is the CLI frontend for the see inspection library. It
// decodes a JSON or YAML literal into a runtime value and prints the
// operations that value supports, either one-shot or in a REPL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "see: %v\n", err)
		os.Exit(1)
	}
}
