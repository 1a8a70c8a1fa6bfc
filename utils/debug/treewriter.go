package debug

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// TreeWriter accumulates an indented, line oriented dump of nested values.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Value dumps v under label. Nil pointers, slices and maps are printed as
// <nil> so that absent values differ from empty ones, map keys are ordered
// naturally.
func (tw TreeWriter) Value(depth int, label string, v any) {
	tw.value(depth, label, reflect.ValueOf(v))
}

func (tw TreeWriter) value(depth int, label string, rv reflect.Value) {
	if !rv.IsValid() {
		tw.Line(depth, "%s: <nil>", label)
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			tw.Line(depth, "%s: <nil>", label)
			return
		}
		tw.value(depth, label, rv.Elem())
	case reflect.String:
		tw.Line(depth, "%s: %s", label, strconv.Quote(rv.String()))
	case reflect.Struct:
		tw.Line(depth, "%s", label)
		rt := rv.Type()
		for i := range rt.NumField() {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				// embedded structs are flattened into the parent
				ev := rv.Field(i)
				for j := range f.Type.NumField() {
					tw.value(depth+1, f.Type.Field(j).Name, ev.Field(j))
				}
				continue
			}
			tw.value(depth+1, f.Name, rv.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			tw.Line(depth, "%s: <nil>", label)
			return
		}
		tw.Line(depth, "%s: %d", label, rv.Len())
		for i := range rv.Len() {
			tw.value(depth+1, "["+strconv.Itoa(i)+"]", rv.Index(i))
		}
	case reflect.Map:
		if rv.IsNil() {
			tw.Line(depth, "%s: <nil>", label)
			return
		}
		tw.Line(depth, "%s: %d", label, rv.Len())
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			s := fmt.Sprint(k.Interface())
			keys = append(keys, s)
			byKey[s] = rv.MapIndex(k)
		}
		slices.SortFunc(keys, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
		for _, k := range keys {
			tw.value(depth+1, strconv.Quote(k), byKey[k])
		}
	default:
		tw.Line(depth, "%s: %v", label, rv.Interface())
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
