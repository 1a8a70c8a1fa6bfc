// Package jats turns JATS document trees into normalized metadata values.
//
// Every exported accessor is a pure function of the document: it locates
// fragments through package raw, flattens and normalizes them and returns
// fresh values which do not reference the tree. Absent fields are nil, fields
// present but empty are empty strings.
package jats

import (
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"golang.org/x/text/language"

	"jatsmeta/raw"
)

const shortTitleLength = 80

func root(doc *etree.Document) *etree.Element {
	if doc == nil {
		return nil
	}
	return &doc.Element
}

func JournalID(doc *etree.Document) *string {
	return first(root(doc), raw.JournalID)
}

func JournalTitle(doc *etree.Document) *string {
	return first(root(doc), raw.JournalTitle)
}

// JournalISSN returns ISSN for publication format "electronic" or "print".
func JournalISSN(doc *etree.Document, format string) *string {
	legacy := format
	switch format {
	case "electronic":
		legacy = "epub"
	case "print":
		legacy = "ppub"
	}
	return first(root(doc), raw.ISSN, format, legacy)
}

func Publisher(doc *etree.Document) *string {
	return first(root(doc), raw.Publisher)
}

func ArticleType(doc *etree.Document) *string {
	return first(root(doc), raw.ArticleType)
}

func DOI(doc *etree.Document) *string {
	return first(root(doc), raw.DOI)
}

func PublisherID(doc *etree.Document) *string {
	return first(root(doc), raw.PublisherID)
}

func ElocationID(doc *etree.Document) *string {
	return first(root(doc), raw.ElocationID)
}

// Volume returns numeric volume, nil when absent or not a number.
func Volume(doc *etree.Document) *int {
	return intPtr(first(root(doc), raw.Volume))
}

// Language returns the article language. Second value is false when the
// document does not declare one; unparsable tags give language.Und.
func Language(doc *etree.Document) (language.Tag, bool) {
	lang := first(root(doc), raw.Language)
	if lang == nil {
		return language.Und, false
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return language.Und, true
	}
	return tag, true
}

// Title returns the plain article title.
func Title(doc *etree.Document) *string {
	return first(root(doc), raw.ArticleTitle)
}

// FullTitle returns the article title keeping inline markup.
func FullTitle(doc *etree.Document) RichText {
	frag, ok := raw.MustFirst(root(doc), raw.ArticleTitle)
	if !ok {
		return nil
	}
	return Rich(frag.Node)
}

// TitleShort returns the first 80 characters of the title.
func TitleShort(doc *etree.Document) *string {
	title := Title(doc)
	if title == nil {
		return nil
	}
	s := *title
	if utf8.RuneCountInString(s) > shortTitleLength {
		s = strings.TrimSpace(string([]rune(s)[:shortTitleLength]))
	}
	return &s
}

// TitleSlug returns URL friendly transliterated title.
func TitleSlug(doc *etree.Document) *string {
	title := Title(doc)
	if title == nil {
		return nil
	}
	s := slug.Make(*title)
	return &s
}

// IsPOA reports whether the article is a publish-on-accept version: one
// without body content.
func IsPOA(doc *etree.Document) bool {
	if _, ok := raw.MustFirst(root(doc), raw.Article); !ok {
		return false
	}
	body, ok := raw.MustFirst(root(doc), raw.Body)
	return !ok || len(body.Node.ChildElements()) == 0
}
