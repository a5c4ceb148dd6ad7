// Package see inspects a runtime value and reports what you can do with
// it: the operators its type supports, how it can be indexed or ranged
// over, and the exported attributes it carries. The result reads faster
// at an interactive prompt than a raw method dump.
//
//	result, _ := see.See(2)
//	fmt.Println(result)
//	//     range   +   -   *   /   %   <<   >>   &   ^   |   &^   ...
//
// Results can be narrowed with a shell-style pattern or a regular
// expression:
//
//	result, _ := see.See(2, see.Match("h*"))
//	fmt.Println(result)
//	//     hash()
//
// Some symbols are mnemonics rather than literal Go syntax:
//
//	()       value is callable
//	[]       value supports indexing (get, set or delete)
//	with     value manages a resource (io.Closer or sync.Locker)
//	in       value supports membership tests (map lookup, Contains)
//	obj<-    value is a channel you can send on
//	<-obj    value is a channel you can receive from
//	range    value can be ranged over
//	hash()   value is comparable and usable as a map key
//	help()   value documents itself (see Documented)
//
// The result behaves as a plain ordered slice of token strings; only its
// String method is special, rendering column-aligned text wrapped to the
// terminal width.
package see
