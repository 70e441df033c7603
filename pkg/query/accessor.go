package query

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dmitrymomot/sharedkit/pkg/cache"
)

type keyKind uint8

const (
	kindInt keyKind = iota + 1
	kindUint
	kindFloat
	kindBool
	kindString
	kindTime
	kindStringer
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// accessor reads one property path out of values of a fixed type.
type accessor struct {
	steps [][]int
	kind  keyKind
}

type accessorKey struct {
	typ  reflect.Type
	path string
}

var accessors = cache.New[accessorKey, *accessor](256)

// accessorFor resolves path against typ once and caches the result.
func accessorFor(typ reflect.Type, path string) (*accessor, error) {
	key := accessorKey{typ: typ, path: strings.ToLower(path)}
	return accessors.GetOrCompute(key, func() (*accessor, error) {
		return compileAccessor(typ, path)
	})
}

func compileAccessor(typ reflect.Type, path string) (*accessor, error) {
	acc := &accessor{}
	t := typ
	for seg := range strings.SplitSeq(path, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownProperty, path, typ)
		}
		f, ok := fieldByName(t, strings.TrimSpace(seg))
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownProperty, path, typ)
		}
		acc.steps = append(acc.steps, f.Index)
		t = f.Type
	}

	kind, ok := kindOf(t)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s", ErrUnsortable, path, t)
	}
	acc.kind = kind
	return acc, nil
}

// fieldByName matches exported fields case-insensitively, then by json tag.
func fieldByName(t reflect.Type, name string) (reflect.StructField, bool) {
	if name == "" {
		return reflect.StructField{}, false
	}
	if f, ok := t.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) }); ok && f.IsExported() {
		return f, true
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag != "" && tag != "-" && strings.EqualFold(tag, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func kindOf(t reflect.Type) (keyKind, bool) {
	for t.Kind() == reflect.Pointer {
		if t.Implements(stringerType) && t.Elem().Kind() == reflect.Struct && t.Elem() != timeType {
			return kindStringer, true
		}
		t = t.Elem()
	}
	if t == timeType {
		return kindTime, true
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint, true
	case reflect.Float32, reflect.Float64:
		return kindFloat, true
	case reflect.Bool:
		return kindBool, true
	case reflect.String:
		return kindString, true
	}
	if t.Implements(stringerType) {
		return kindStringer, true
	}
	return 0, false
}

// get returns the property value, or false when a nil pointer is met on the way.
func (a *accessor) get(v reflect.Value) (reflect.Value, bool) {
	for _, idx := range a.steps {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		f, err := v.FieldByIndexErr(idx)
		if err != nil {
			return reflect.Value{}, false
		}
		v = f
	}
	if a.kind == kindStringer {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Value{}, false
		}
		return v, true
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

// compare orders two resolved values. Absent values sort first.
func (a *accessor) compare(x, y reflect.Value, xok, yok bool) int {
	switch {
	case !xok && !yok:
		return 0
	case !xok:
		return -1
	case !yok:
		return 1
	}

	switch a.kind {
	case kindInt:
		return cmp.Compare(x.Int(), y.Int())
	case kindUint:
		return cmp.Compare(x.Uint(), y.Uint())
	case kindFloat:
		return cmp.Compare(x.Float(), y.Float())
	case kindBool:
		return compareBool(x.Bool(), y.Bool())
	case kindString:
		return cmp.Compare(x.String(), y.String())
	case kindTime:
		return x.Interface().(time.Time).Compare(y.Interface().(time.Time))
	default:
		return cmp.Compare(x.Interface().(fmt.Stringer).String(), y.Interface().(fmt.Stringer).String())
	}
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}
