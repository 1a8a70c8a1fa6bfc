package raw

import (
	"fmt"

	"github.com/beevik/etree"
)

// Find returns fragments of the first location of f, in resolver order,
// which yields anything under ctx. Placeholders in parametrized locations
// are bound from args.
func Find(ctx *etree.Element, f Field, args ...string) ([]Fragment, error) {
	locs, ok := table[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedField, string(f))
	}
	for _, loc := range locs {
		if res := Locate(ctx, loc.Bind(args...)); len(res) > 0 {
			return res, nil
		}
	}
	return nil, nil
}

// FindFirst is Find returning only the first fragment.
func FindFirst(ctx *etree.Element, f Field, args ...string) (Fragment, bool, error) {
	res, err := Find(ctx, f, args...)
	if err != nil || len(res) == 0 {
		return Fragment{}, false, err
	}
	return res[0], true, nil
}

// FindDoc looks up document level field f.
func FindDoc(doc *etree.Document, f Field, args ...string) ([]Fragment, error) {
	if doc == nil {
		return Find(nil, f, args...)
	}
	return Find(&doc.Element, f, args...)
}

// Dialects reports which dialect shapes of f are present under ctx, in
// resolver order. Used for diagnostics only, extraction always takes the
// first.
func Dialects(ctx *etree.Element, f Field, args ...string) ([]Dialect, error) {
	locs, ok := table[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedField, string(f))
	}
	var found []Dialect
	for _, loc := range locs {
		if len(Locate(ctx, loc.Bind(args...))) > 0 {
			found = append(found, loc.Dialect)
		}
	}
	return found, nil
}

// must is used by the parsed layer for fields it knows are in the table.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must is Find for callers which only pass field constants of this package.
// Unknown fields panic.
func Must(ctx *etree.Element, f Field, args ...string) []Fragment {
	return must(Find(ctx, f, args...))
}

// MustFirst returns the first fragment of f or false.
func MustFirst(ctx *etree.Element, f Field, args ...string) (Fragment, bool) {
	res := Must(ctx, f, args...)
	if len(res) == 0 {
		return Fragment{}, false
	}
	return res[0], true
}
