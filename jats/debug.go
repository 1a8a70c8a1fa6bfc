package jats

import (
	"github.com/beevik/etree"

	"jatsmeta/utils/debug"
)

// Dump returns a readable tree of every registered field of the document.
// Absent fields print as <nil>. It exists solely for manual inspection
// during debugging.
func Dump(doc *etree.Document) string {
	tw := debug.NewTreeWriter()
	if doc == nil || doc.Root() == nil {
		tw.Line(0, "<empty document>")
		return tw.String()
	}
	tw.Line(0, "Article root=%q", doc.Root().Tag)
	for _, f := range registry {
		tw.Value(1, f.Name, f.Extract(doc))
	}
	return tw.String()
}
