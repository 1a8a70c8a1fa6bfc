package jats

import (
	"strings"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// paragraphsText joins plain text of the paragraphs of el, or of el itself
// when it has no paragraphs, collapsing whitespace. Titles are not part of
// the text.
func paragraphsText(el *etree.Element) string {
	paras := raw.Must(el, raw.Paragraphs)
	if len(paras) == 0 {
		return collapse(plainTextSkipping(el, skipTags("title", "label", "object-id")))
	}
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		if s := collapse(PlainText(p.Node)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func paragraphsRich(el *etree.Element) []RichText {
	paras := raw.Must(el, raw.Paragraphs)
	out := make([]RichText, 0, len(paras))
	for _, p := range paras {
		out = append(out, Rich(p.Node))
	}
	return out
}

func textOf(doc *etree.Document, f raw.Field) *string {
	frag, ok := raw.MustFirst(root(doc), f)
	if !ok {
		return nil
	}
	s := paragraphsText(frag.Node)
	return &s
}

func abstractOf(el *etree.Element) AbstractInfo {
	return AbstractInfo{
		Type:       attr(el, "abstract-type"),
		Title:      first(el, raw.Title),
		DOI:        first(el, raw.ObjectDOI),
		Paragraphs: paragraphsRich(el),
	}
}

func fullOf(doc *etree.Document, f raw.Field) *AbstractInfo {
	frag, ok := raw.MustFirst(root(doc), f)
	if !ok {
		return nil
	}
	a := abstractOf(frag.Node)
	return &a
}

// Abstract returns plain text of the main abstract: the one without
// abstract-type.
func Abstract(doc *etree.Document) *string {
	return textOf(doc, raw.Abstract)
}

func FullAbstract(doc *etree.Document) *AbstractInfo {
	return fullOf(doc, raw.Abstract)
}

// Abstracts returns every abstract of the article in document order.
func Abstracts(doc *etree.Document) []AbstractInfo {
	frags := raw.Must(root(doc), raw.Abstracts)
	if len(frags) == 0 {
		return nil
	}
	out := make([]AbstractInfo, 0, len(frags))
	for _, f := range frags {
		out = append(out, abstractOf(f.Node))
	}
	return out
}

func Digest(doc *etree.Document) *string {
	return textOf(doc, raw.Digest)
}

func FullDigest(doc *etree.Document) *AbstractInfo {
	return fullOf(doc, raw.Digest)
}

func ImpactStatement(doc *etree.Document) *string {
	return textOf(doc, raw.ImpactStatement)
}

// Ack returns plain acknowledgements text without the section title.
func Ack(doc *etree.Document) *string {
	return textOf(doc, raw.Ack)
}

// FullAck returns acknowledgements paragraphs with inline markup.
func FullAck(doc *etree.Document) []RichText {
	frag, ok := raw.MustFirst(root(doc), raw.Ack)
	if !ok {
		return nil
	}
	return paragraphsRich(frag.Node)
}

func FundingStatement(doc *etree.Document) *string {
	return textOf(doc, raw.FundingStatement)
}

// Conflict returns texts of conflict of interest footnotes.
func Conflict(doc *etree.Document) []string {
	return footnoteTexts(raw.Must(root(doc), raw.Conflict))
}

// AuthorNotes returns plain texts of all author notes footnotes.
func AuthorNotes(doc *etree.Document) []string {
	return footnoteTexts(raw.Must(root(doc), raw.AuthorNotes))
}

func FullAuthorNotes(doc *etree.Document) []Footnote {
	return footnotes(raw.Must(root(doc), raw.AuthorNotes))
}

// FootnotesOfType returns footnotes with fn-type fnType, looking in author
// notes first and back matter next. Author contributions are "con",
// competing interests "conflict".
func FootnotesOfType(doc *etree.Document, fnType string) []Footnote {
	return footnotes(raw.Must(root(doc), raw.FootnotesOfType, fnType))
}

func footnoteTexts(frags []raw.Fragment) []string {
	if len(frags) == 0 {
		return nil
	}
	out := make([]string, 0, len(frags))
	for _, f := range frags {
		out = append(out, paragraphsText(f.Node))
	}
	return out
}

func footnotes(frags []raw.Fragment) []Footnote {
	if len(frags) == 0 {
		return nil
	}
	out := make([]Footnote, 0, len(frags))
	for _, f := range frags {
		out = append(out, Footnote{
			ID:    attr(f.Node, "id"),
			Type:  attr(f.Node, "fn-type"),
			Label: first(f.Node, raw.Label),
			Text:  joinRich(paragraphsRich(f.Node)),
		})
	}
	return out
}
