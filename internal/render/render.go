// Package render turns an ordered token list into column-aligned,
// line-wrapped text. Layout is purely cosmetic: the token list itself is
// read, never reordered or altered.
package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

// columnGap is the spacing between columns, the three spaces an
// interactive listing leaves between entries.
const columnGap = 3

// DefaultIndent is used when the caller has no prompt to align with.
const DefaultIndent = "    "

// ColumnWidth returns the cell width every token is padded to: the widest
// token in display cells plus the column gap.
func ColumnWidth(tokens []string) int {
	widest := 0
	for _, tok := range tokens {
		if w := runewidth.StringWidth(tok); w > widest {
			widest = w
		}
	}
	return widest + columnGap
}

// Justify left-aligns tok in a cell of the given display width.
func Justify(tok string, width int) string {
	return text.Pad(tok, width, ' ')
}

// Text lays tokens out in aligned columns wrapped to width, with every
// line indented. Tokens are never split and lines break only on column
// boundaries, so continuation lines stay aligned with the first. An
// empty token list renders as an empty string.
func Text(tokens []string, width int, indent string) string {
	if len(tokens) == 0 {
		return ""
	}

	col := ColumnWidth(tokens)
	perLine := (width - runewidth.StringWidth(indent)) / col
	if perLine < 1 {
		perLine = 1 // never wrap mid-token on a narrow display
	}

	var lines []string
	for start := 0; start < len(tokens); start += perLine {
		end := start + perLine
		if end > len(tokens) {
			end = len(tokens)
		}
		var sb strings.Builder
		sb.WriteString(indent)
		for _, tok := range tokens[start:end] {
			sb.WriteString(Justify(tok, col))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(lines, "\n")
}
