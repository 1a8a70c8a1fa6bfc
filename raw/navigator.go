// Package raw locates metadata fields in a JATS document tree. It knows where
// each field may live across schema dialects but never interprets what it
// finds: results are tree fragments, normalization belongs to package jats.
package raw

import (
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Dialect tags the schema shape a Location describes.
type Dialect string

const (
	DialectCurrent   Dialect = "current"   // JATS 1.1+ as published
	DialectLegacy    Dialect = "legacy"    // NLM 3.0 / early JATS
	DialectPublisher Dialect = "publisher" // publisher specific variants
	DialectPOA       Dialect = "poa"       // provisional, ahead of print articles
)

// Location describes one legal place a field may appear.
type Location struct {
	Dialect Dialect
	// Path is an etree path. A leading "/" makes it absolute, otherwise it is
	// evaluated against the context element. May contain $1..$9 placeholders
	// which must be bound before use.
	Path string
	// Attr, when set, makes the attribute the field value. Elements without
	// the attribute do not match.
	Attr string
	// Without drops elements carrying this attribute.
	Without string

	compiled etree.Path
	valid    bool
}

func at(d Dialect, path string) Location {
	loc := Location{Dialect: d, Path: path}
	if strings.Contains(path, "$") {
		// compiled on Bind
		return loc
	}
	loc.compiled = etree.MustCompilePath(path)
	loc.valid = true
	return loc
}

func (l Location) attr(name string) Location {
	l.Attr = name
	return l
}

func (l Location) without(name string) Location {
	l.Without = name
	return l
}

// Parametrized reports whether the location path needs Bind.
func (l Location) Parametrized() bool {
	return strings.Contains(l.Path, "$")
}

// Bind substitutes $1..$n placeholders with args. Arguments which cannot be
// safely embedded into a path produce a location that matches nothing.
func (l Location) Bind(args ...string) Location {
	if !l.Parametrized() {
		return l
	}
	path := l.Path
	for i := len(args); i > 0; i-- {
		arg := args[i-1]
		if strings.ContainsAny(arg, `'"[]`) {
			l.valid = false
			return l
		}
		path = strings.ReplaceAll(path, "$"+strconv.Itoa(i), arg)
	}
	l.Path = path
	if strings.Contains(path, "$") {
		l.valid = false
		return l
	}
	compiled, err := etree.CompilePath(path)
	if err != nil {
		l.valid = false
		return l
	}
	l.compiled, l.valid = compiled, true
	return l
}

// Fragment is a located node. When Attr is set the fragment stands for that
// attribute of Node rather than for the element itself.
type Fragment struct {
	Node *etree.Element
	Attr string
}

// IsAttr reports whether fragment addresses an attribute.
func (f Fragment) IsAttr() bool {
	return f.Attr != ""
}

// Value returns the attribute value or the depth-first concatenation of all
// text under the element.
func (f Fragment) Value() string {
	if f.Node == nil {
		return ""
	}
	if f.IsAttr() {
		v, _ := AttrValue(f.Node, f.Attr)
		return v
	}
	return Text(f.Node)
}

// Locate returns fragments matching loc in document order. Absence is an
// empty result.
func Locate(ctx *etree.Element, loc Location) []Fragment {
	if ctx == nil || !loc.valid {
		return nil
	}
	found := ctx.FindElementsPath(loc.compiled)
	if len(found) == 0 {
		return nil
	}
	if len(found) > 1 && strings.Contains(loc.Path, "//") {
		sortDocumentOrder(found)
	}

	out := make([]Fragment, 0, len(found))
	for _, el := range found {
		if loc.Without != "" {
			if _, ok := AttrValue(el, loc.Without); ok {
				continue
			}
		}
		if loc.Attr != "" {
			if _, ok := AttrValue(el, loc.Attr); !ok {
				continue
			}
		}
		out = append(out, Fragment{Node: el, Attr: loc.Attr})
	}
	return out
}

// sortDocumentOrder reorders elements by pre-order position: etree evaluates
// "//" breadth first.
func sortDocumentOrder(els []*etree.Element) {
	top := els[0]
	for top.Parent() != nil {
		top = top.Parent()
	}
	pos := make(map[*etree.Element]int, 64)
	n := 0
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		pos[e] = n
		n++
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(top)
	slices.SortStableFunc(els, func(a, b *etree.Element) int {
		return pos[a] - pos[b]
	})
}

// AttrValue finds attribute key on el. A "prefix:name" key also matches
// attributes whose namespace URI ends with "/prefix", so xlink:href is found
// regardless of the prefix a document binds to the xlink namespace.
func AttrValue(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	space, name := "", key
	if i := strings.IndexByte(key, ':'); i >= 0 {
		space, name = key[:i], key[i+1:]
	}
	for _, a := range el.Attr {
		if a.Key != name {
			continue
		}
		if space == "" {
			if a.Space == "" {
				return a.Value, true
			}
			continue
		}
		if a.Space == space || strings.HasSuffix(a.NamespaceURI(), "/"+space) {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns all character data under el, depth first, without adding any
// separators.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	writeText(&b, el)
	return b.String()
}

func writeText(b *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			writeText(b, t)
		}
	}
}
