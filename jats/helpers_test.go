package jats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
)

func mustDocument(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("parse xml: %v", err)
	}
	return doc
}

func loadDocument(t *testing.T, name string) *etree.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return doc
}

// mustElement returns the root element of a small XML snippet.
func mustElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	return mustDocument(t, xml).Root()
}

func str(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

func article(meta string) string {
	return `<article xmlns:xlink="http://www.w3.org/1999/xlink"><front><article-meta>` + meta + `</article-meta></front></article>`
}
