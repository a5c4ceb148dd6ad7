package capability

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
)

// Documented is implemented by values that carry their own documentation
// text. A non-blank Doc result produces the "help()" symbol.
type Documented interface {
	Doc() string
}

// Target wraps a value under inspection. Probes read its reflected type;
// only the doc probe touches the value itself.
type Target struct {
	iface any
	typ   reflect.Type
}

// NewTarget prepares v for probing. The second return is false when v is
// an untyped nil, which exhibits no capabilities at all.
func NewTarget(v any) (Target, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Target{}, false
	}
	return Target{iface: v, typ: rv.Type()}, true
}

// Interface types referenced by probes.
var (
	closerType   = reflect.TypeOf((*io.Closer)(nil)).Elem()
	lockerType   = reflect.TypeOf((*sync.Locker)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// Conversion targets referenced by probes.
var (
	boolType    = reflect.TypeOf(false)
	intType     = reflect.TypeOf(int(0))
	floatType   = reflect.TypeOf(float64(0))
	complexType = reflect.TypeOf(complex128(0))
	stringType  = reflect.TypeOf("")
)

// Has reports whether target exhibits the behavior identified by probe.
// Unknown probe identifiers report false.
func Has(t Target, probe string) bool {
	fn, ok := probes[probe]
	if !ok {
		return false
	}
	return fn(t)
}

// probes maps probe identifiers to presence checks. The registry refers
// to probes by name, keeping the capability table pure data.
var probes = map[string]func(Target) bool{
	"func": func(t Target) bool { return t.typ.Kind() == reflect.Func },

	"index.get": func(t Target) bool { return isIndexable(t.typ) },
	"index.set": func(t Target) bool {
		k := t.typ.Kind()
		return k == reflect.Map || k == reflect.Slice || isPtrToArray(t.typ)
	},
	"index.delete": func(t Target) bool { return t.typ.Kind() == reflect.Map },

	"closer": func(t Target) bool { return t.typ.Implements(closerType) },
	"locker": func(t Target) bool { return t.typ.Implements(lockerType) },

	"member.map":    func(t Target) bool { return t.typ.Kind() == reflect.Map },
	"member.method": hasContains,

	"chan.send": func(t Target) bool {
		return t.typ.Kind() == reflect.Chan && t.typ.ChanDir()&reflect.SendDir != 0
	},
	"chan.recv": func(t Target) bool {
		return t.typ.Kind() == reflect.Chan && t.typ.ChanDir()&reflect.RecvDir != 0
	},
	"chan.close": func(t Target) bool {
		// Only send-capable channels may be closed.
		return t.typ.Kind() == reflect.Chan && t.typ.ChanDir()&reflect.SendDir != 0
	},

	"range.seq": func(t Target) bool {
		switch t.typ.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
			return true
		case reflect.Chan:
			return t.typ.ChanDir()&reflect.RecvDir != 0
		}
		return isPtrToArray(t.typ)
	},
	"range.int":  func(t Target) bool { return isInteger(t.typ.Kind()) },
	"range.func": isSeqFunc,

	"op.add":    func(t Target) bool { return isNumeric(t.typ.Kind()) || t.typ.Kind() == reflect.String },
	"op.concat": func(t Target) bool { return t.typ.Kind() == reflect.String },
	"op.sub":    func(t Target) bool { return isNumeric(t.typ.Kind()) },
	"op.mul":    func(t Target) bool { return isNumeric(t.typ.Kind()) },
	"op.quo":    func(t Target) bool { return isNumeric(t.typ.Kind()) },
	"op.rem":    func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.shl":    func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.shr":    func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.and":    func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.xor":    func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.or":     func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.andnot": func(t Target) bool { return isInteger(t.typ.Kind()) },

	"op.pos":    func(t Target) bool { return isNumeric(t.typ.Kind()) },
	"op.neg":    func(t Target) bool { return isNumeric(t.typ.Kind()) },
	"op.invert": func(t Target) bool { return isInteger(t.typ.Kind()) },
	"op.not":    func(t Target) bool { return t.typ.Kind() == reflect.Bool },

	"cmp.eq": func(t Target) bool { return t.typ.Comparable() },
	"cmp.ne": func(t Target) bool { return t.typ.Comparable() },
	"cmp.lt": func(t Target) bool { return isOrdered(t.typ.Kind()) },
	"cmp.le": func(t Target) bool { return isOrdered(t.typ.Kind()) },
	"cmp.gt": func(t Target) bool { return isOrdered(t.typ.Kind()) },
	"cmp.ge": func(t Target) bool { return isOrdered(t.typ.Kind()) },

	"len": func(t Target) bool {
		switch t.typ.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
			return true
		}
		return isPtrToArray(t.typ)
	},
	"cap": func(t Target) bool {
		switch t.typ.Kind() {
		case reflect.Slice, reflect.Array, reflect.Chan:
			return true
		}
		return isPtrToArray(t.typ)
	},
	"append": func(t Target) bool { return t.typ.Kind() == reflect.Slice },
	"copy":   func(t Target) bool { return t.typ.Kind() == reflect.Slice },

	"hash": func(t Target) bool { return t.typ.Comparable() },

	"conv.bool":    func(t Target) bool { return t.typ.ConvertibleTo(boolType) },
	"conv.int":     func(t Target) bool { return t.typ.ConvertibleTo(intType) },
	"conv.float":   func(t Target) bool { return t.typ.ConvertibleTo(floatType) },
	"conv.complex": func(t Target) bool { return t.typ.ConvertibleTo(complexType) },
	"conv.string":  func(t Target) bool { return t.typ.ConvertibleTo(stringType) },

	"stringer": func(t Target) bool { return t.typ.Implements(stringerType) },
	"error":    func(t Target) bool { return t.typ.Implements(errorType) },

	"doc": hasDoc,
}

// hasDoc reports whether the target advertises non-blank documentation.
// Reading it calls Doc(), the one probe that executes target code, so any
// panic is contained and suppresses the symbol.
func hasDoc(t Target) (ok bool) {
	d, isDoc := t.iface.(Documented)
	if !isDoc {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return strings.TrimSpace(d.Doc()) != ""
}

// hasContains matches a Contains method taking at least one argument and
// reporting a bool, the conventional membership shape.
func hasContains(t Target) bool {
	m, ok := t.typ.MethodByName("Contains")
	if !ok {
		return false
	}
	mt := m.Type // includes the receiver as In(0)
	return mt.NumIn() >= 2 && mt.NumOut() >= 1 && mt.Out(0).Kind() == reflect.Bool
}

// isSeqFunc matches the iterator function shapes that range accepts since
// go1.23: func(yield func(V) bool) and func(yield func(K, V) bool).
func isSeqFunc(t Target) bool {
	ft := t.typ
	if ft.Kind() != reflect.Func || ft.IsVariadic() || ft.NumIn() != 1 || ft.NumOut() != 0 {
		return false
	}
	y := ft.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() {
		return false
	}
	if y.NumIn() < 1 || y.NumIn() > 2 {
		return false
	}
	return y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// --- Kind classes ---

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

func isNumeric(k reflect.Kind) bool {
	return isInteger(k) || isFloat(k) || isComplex(k)
}

func isOrdered(k reflect.Kind) bool {
	return isInteger(k) || isFloat(k) || k == reflect.String
}

func isPtrToArray(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Array
}

func isIndexable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return true
	}
	return isPtrToArray(t)
}
