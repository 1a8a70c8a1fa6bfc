package raw

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnsupportedField is returned for field identifiers the resolver does
// not know. It signals a programming error, not an absent value.
var ErrUnsupportedField = errors.New("unsupported field")

// Resolve returns the ordered locations accepted for field f. Returned slice
// is a copy and may be modified by the caller.
func Resolve(f Field) ([]Location, error) {
	locs, ok := table[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedField, string(f))
	}
	return slices.Clone(locs), nil
}

// Known returns all field identifiers known to the resolver, sorted.
func Known() []Field {
	fields := make([]Field, 0, len(table))
	for f := range table {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
