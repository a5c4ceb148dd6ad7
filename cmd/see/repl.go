package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/backmassage/see/internal/logging"
)

const prompt = "see> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Inspect values interactively",
	Long: `repl reads one literal per line and prints its inspection, aligned
under the prompt. Session commands:

  \p <glob>   set the wildcard filter (\p alone clears it)
  \r <regex>  set the regex filter (\r alone clears it)
  \q          quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logging.New(&cfg)

	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("start repl: %w", err)
	}
	defer rl.Close()

	fmt.Println("see — type a JSON or YAML literal; \\p glob, \\r regex, \\q quit")

	// Result lines align under the prompt.
	indent := strings.Repeat(" ", len(prompt))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err != nil { // io.EOF
			return nil
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == `\q`:
			return nil
		case line == `\p` || strings.HasPrefix(line, `\p `):
			cfg.Pattern = strings.TrimSpace(strings.TrimPrefix(line, `\p`))
			log.Debug("pattern filter: %q", cfg.Pattern)
			continue
		case line == `\r` || strings.HasPrefix(line, `\r `):
			cfg.Regexp = strings.TrimSpace(strings.TrimPrefix(line, `\r`))
			log.Debug("regex filter: %q", cfg.Regexp)
			continue
		}

		value, err := decodeLiteral([]byte(line), cfg.Format)
		if err != nil {
			log.Error("%v", err)
			continue
		}
		log.Debug("decoded %T", value)

		res, err := inspect(value)
		if err != nil {
			log.Error("%v", err)
			continue
		}
		if len(res) == 0 {
			log.Warn("nothing to report")
			continue
		}
		printResult(res, indent)
	}
}
