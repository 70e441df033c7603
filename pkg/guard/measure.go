package guard

import (
	"cmp"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Number is the constraint for the typed comparison helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type lener interface{ Len() int }

type counter interface{ Count() int }

// measurement is the numeric projection of a value: an integer ordinal, a
// length, a count, or a float.
type measurement struct {
	unsigned bool
	float    bool
	i        int64
	u        uint64
	f        float64
}

// compare returns -1, 0 or 1 against bound. NaN compares equal so it is never flagged.
func (m measurement) compare(bound int64) int {
	switch {
	case m.float:
		if math.IsNaN(m.f) {
			return 0
		}
		return cmp.Compare(m.f, float64(bound))
	case m.unsigned:
		if bound < 0 {
			return 1
		}
		return cmp.Compare(m.u, uint64(bound))
	default:
		return cmp.Compare(m.i, bound)
	}
}

// measure projects v onto a number. Named integer types (enums) use their
// ordinal, runes their code point, strings their rune count, collections their
// length and iterator functions the number of yielded items. Anything else is
// not measurable.
func measure(v any) (measurement, bool) {
	if v == nil {
		return measurement{}, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return measurement{}, false
		}
		switch c := rv.Interface().(type) {
		case lener:
			return measurement{i: int64(c.Len())}, true
		case counter:
			return measurement{i: int64(c.Count())}, true
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return measurement{i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return measurement{unsigned: true, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return measurement{float: true, f: rv.Float()}, true
	case reflect.String:
		return measurement{i: int64(utf8.RuneCountInString(rv.String()))}, true
	}

	if rv.CanInterface() {
		switch c := rv.Interface().(type) {
		case lener:
			return measurement{i: int64(c.Len())}, true
		case counter:
			return measurement{i: int64(c.Count())}, true
		}
	}

	switch rv.Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		return measurement{i: int64(rv.Len())}, true
	case reflect.Func:
		if n, ok := enumerate(rv, -1); ok {
			return measurement{i: int64(n)}, true
		}
	}
	return measurement{}, false
}

// enumerate counts the items yielded by an iterator-shaped function
// (func(yield func(V) bool) or func(yield func(K, V) bool)), stopping after
// limit items when limit is positive.
func enumerate(fn reflect.Value, limit int) (int, bool) {
	t := fn.Type()
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return 0, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0, false
	}
	if n := yield.NumIn(); n < 1 || n > 2 {
		return 0, false
	}
	if fn.IsNil() {
		return 0, true
	}

	n := 0
	fn.Call([]reflect.Value{reflect.MakeFunc(yield, func([]reflect.Value) []reflect.Value {
		n++
		return []reflect.Value{reflect.ValueOf(limit <= 0 || n < limit)}
	})})
	return n, true
}

// isEmpty reports whether v is absent, a blank string, or the zero value of
// its type. Non-nil pointers are followed.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		return strings.TrimSpace(rv.String()) == ""
	}
	return rv.IsZero()
}

// isAbsent is the emptiness used by range checks: nil, nil pointers and blank
// strings. Numeric zero is a value, not an absence.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		return strings.TrimSpace(rv.String()) == ""
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// isEmptyCollection checks, in order: nil, the string/array/slice fast path,
// the collection fast path (Len, Count, maps, channels) and finally the
// enumerable fallback. Values that are none of these are not collections and
// are not flagged.
func isEmptyCollection(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		if c, ok := rv.Interface().(lener); ok {
			return c.Len() == 0
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String, reflect.Array:
		return rv.Len() == 0
	case reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	}

	if rv.CanInterface() {
		switch c := rv.Interface().(type) {
		case lener:
			return c.Len() == 0
		case counter:
			return c.Count() == 0
		}
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Chan:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Func:
		if n, ok := enumerate(rv, 1); ok {
			return n == 0
		}
	}
	return false
}

// stringOf returns the text of string-like values.
func stringOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	case []byte:
		return string(s), true
	case interface{ String() string }:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return s.String(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
