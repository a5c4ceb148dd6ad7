package see

import (
	"os"

	"github.com/backmassage/see/internal/render"
	"github.com/backmassage/see/internal/term"
)

// Result is the ordered token list produced by one inspection. It is a
// plain string slice for programmatic use — index it, range over it,
// compare it by contents. Only its display form is special: String lays
// the tokens out in aligned columns wrapped to the terminal width.
// Treat it as immutable; it is built once per call and never updated.
type Result []string

// String renders the tokens as column-aligned text, wrapped to the width
// of the terminal on stdout (with the usual fallbacks) and indented four
// spaces. Formatting never touches the underlying tokens.
func (r Result) String() string {
	return render.Text(r, term.Width(os.Stdout), render.DefaultIndent)
}

// Text renders like String with an explicit display width and indent,
// for callers aligning output under their own prompt.
func (r Result) Text(width int, indent string) string {
	return render.Text(r, width, indent)
}
