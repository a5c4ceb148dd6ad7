package scan

// Display markers shared by every token shape.
const (
	memberSep  = "."
	callMarker = "()"
	errMarker  = "?"
)

// Member renders an attribute of a concrete target, e.g. ".Close()" or
// ".Name".
func Member(name string, callable bool) string {
	if callable {
		return memberSep + name + callMarker
	}
	return memberSep + name
}

// Local renders a binding inspected in namespace mode, e.g. "handler()"
// or "count".
func Local(name string, callable bool) string {
	if callable {
		return name + callMarker
	}
	return name
}

// Sentinel renders an attribute whose value could not be resolved. The
// error marker replaces the callable check.
func Sentinel(name string) string {
	return memberSep + name + errMarker
}
