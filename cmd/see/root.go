package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/see"
	"github.com/backmassage/see/internal/config"
	"github.com/backmassage/see/internal/logging"
	"github.com/backmassage/see/internal/render"
	"github.com/backmassage/see/internal/term"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "see [literal]",
	Short: "Show what you can do with a value",
	Long: `see decodes a JSON or YAML literal into a runtime value and lists the
operations that value supports: indexing, iteration, operators, built-ins
and attributes. The literal is taken from the argument or from stdin.

Note that JSON numbers decode as float64 and objects as map[string]interface{}.

Examples:
  see '{"a": 1}'
  echo '[1, 2, 3]' | see
  see --pattern 'h*' '2'
  see repl`,
	Args: cobra.MaximumNArgs(1),
	// Errors are reported by main with the program prefix; suppress
	// cobra's own printing.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "see version %s\n" .Version}}`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar((*string)(&cfg.Format), "format", string(cfg.Format), "input format: auto, json or yaml")
	pf.StringVarP(&cfg.Pattern, "pattern", "p", "", "shell-style token filter (e.g. 'h*')")
	pf.StringVarP(&cfg.Regexp, "regex", "r", "", "regular-expression token filter")
	pf.IntVar(&cfg.Width, "width", 0, "display width (0 = detect)")
	pf.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "color output: auto, always or never")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(replCmd, checkCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logging.New(&cfg)

	var data []byte
	if len(args) == 1 {
		data = []byte(args[0])
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		data = b
	}

	value, err := decodeLiteral(data, cfg.Format)
	if err != nil {
		return err
	}
	log.Debug("decoded %T", value)

	res, err := inspect(value)
	if err != nil {
		return err
	}
	printResult(res, render.DefaultIndent)
	return nil
}

// inspect runs the library call with the configured filters.
func inspect(v any) (see.Result, error) {
	var opts []see.Option
	if cfg.Pattern != "" {
		opts = append(opts, see.Match(cfg.Pattern))
	}
	if cfg.Regexp != "" {
		opts = append(opts, see.Regexp(cfg.Regexp))
	}
	return see.See(v, opts...)
}

// printResult writes the rendered token columns, honoring the width
// override. An empty result prints nothing.
func printResult(res see.Result, indent string) {
	if len(res) == 0 {
		return
	}
	width := cfg.Width
	if width == 0 {
		width = term.Width(os.Stdout)
	}
	fmt.Println(res.Text(width, indent))
}
