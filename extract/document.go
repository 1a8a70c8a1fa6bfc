package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// errNotArticle is returned when parsed document root is not <article>.
var errNotArticle = errors.New("document root is not <article>")

// loadDocument parses JATS markup into a document tree. Publisher supplied
// files often carry HTML named references (&nbsp;, &mdash;) without declaring
// them, so they are accepted.
func loadDocument(r io.Reader, enc srcEncoding) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charsetReader(enc),
		Entity:        xml.HTMLEntity,
		ValidateInput: false,
		Permissive:    true,
	}
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	if _, err := doc.ReadFrom(selectReader(r, enc)); err != nil {
		return nil, fmt.Errorf("unable to read JATS: %w", err)
	}
	if root := doc.Root(); root == nil || root.Tag != "article" {
		return nil, errNotArticle
	}
	return doc, nil
}
