package see

import (
	"github.com/backmassage/see/internal/capability"
	"github.com/backmassage/see/internal/filter"
	"github.com/backmassage/see/internal/scan"
)

// Documented may be implemented by inspected values to advertise their
// own documentation. A non-blank Doc result adds the "help()" symbol.
type Documented = capability.Documented

// Namespace wraps a set of named bindings so they can be inspected as a
// scope rather than as a value. Namespaces are scanned only — a bag of
// variables has no operator semantics of its own — and their tokens carry
// no member separator. Create one fresh per inspection; it is never
// retained.
type Namespace map[string]any

// Option narrows an inspection result.
type Option func(*options)

type options struct {
	pattern    string
	usePattern bool
	regex      string
	useRegex   bool
}

// Match keeps only tokens whose full text matches a shell-style glob
// pattern, e.g. "h*". Matching is case-sensitive.
func Match(pattern string) Option {
	return func(o *options) { o.pattern, o.usePattern = pattern, true }
}

// Regexp keeps only tokens containing a match for expr, e.g. "get|set".
func Regexp(expr string) Option {
	return func(o *options) { o.regex, o.useRegex = expr, true }
}

// See inspects target and returns its capability symbols followed by its
// attribute tokens, optionally narrowed by [Match] and [Regexp]. The only
// error condition is a malformed filter pattern; failures while resolving
// individual attributes are contained as sentinel tokens, and a target
// with nothing to report (including nil) yields an empty result.
//
// A [Namespace] target is inspected as a scope: no capability detection,
// no member separators.
func See(target any, opts ...Option) (Result, error) {
	if ns, ok := target.(Namespace); ok {
		return Locals(ns, opts...)
	}

	var tokens []string
	if t, ok := capability.NewTarget(target); ok {
		tokens = append(tokens, capability.Match(t)...)
		tokens = append(tokens, scan.Object(target)...)
	}
	return finish(tokens, opts)
}

// Locals inspects a set of named bindings, the stand-in for "inspect my
// local scope" in a language without caller-frame introspection. Callers
// pass their bindings explicitly:
//
//	see.Locals(map[string]any{"db": db, "retry": retry})
func Locals(vars map[string]any, opts ...Option) (Result, error) {
	return finish(scan.Namespace(vars), opts)
}

// finish applies the filter stage in its fixed order: wildcard first,
// then regex.
func finish(tokens []string, opts []Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	if o.usePattern {
		if tokens, err = filter.Wildcard(tokens, o.pattern); err != nil {
			return nil, err
		}
	}
	if o.useRegex {
		if tokens, err = filter.Regexp(tokens, o.regex); err != nil {
			return nil, err
		}
	}
	return Result(tokens), nil
}
