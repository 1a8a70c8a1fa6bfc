package jats

import (
	"html"
	"strings"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// PlainText returns all character data under el in document order. Markup
// is stripped, entities are already resolved by the parser and no whitespace
// is added.
func PlainText(el *etree.Element) string {
	return raw.Text(el)
}

// plainTextSkipping is PlainText omitting subtrees for which skip returns
// true.
func plainTextSkipping(el *etree.Element, skip func(*etree.Element) bool) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				if !skip(t) {
					walk(t)
				}
			}
		}
	}
	walk(el)
	return b.String()
}

func skipTags(tags ...string) func(*etree.Element) bool {
	return func(e *etree.Element) bool {
		for _, t := range tags {
			if e.Tag == t {
				return true
			}
		}
		return false
	}
}

// Rich flattens el keeping inline markup. Unknown tags are transparent: their
// content is kept in place and styling dropped. An empty element gives an
// empty, non nil RichText, a nil element gives nil.
func Rich(el *etree.Element) RichText {
	if el == nil {
		return nil
	}
	spans := richSpans(el)
	if spans == nil {
		spans = RichText{}
	}
	return spans
}

func richSpans(parent *etree.Element) RichText {
	var spans RichText
	for _, node := range parent.Child {
		switch token := node.(type) {
		case *etree.CharData:
			if token.Data == "" {
				continue
			}
			spans = append(spans, Span{Kind: SpanText, Text: token.Data})
		case *etree.Element:
			kind, known := mapSpanKind(token.Tag)
			if !known {
				spans = append(spans, richSpans(token)...)
				continue
			}
			span := Span{Kind: kind}
			switch kind {
			case SpanLink:
				span.Target, _ = raw.AttrValue(token, "xlink:href")
				if span.Target == "" && token.Tag == "uri" {
					span.Target = strings.TrimSpace(raw.Text(token))
				}
			case SpanXref:
				span.Target = token.SelectAttrValue("rid", "")
			}
			span.Children = richSpans(token)
			spans = append(spans, span)
		}
	}
	return spans
}

func mapSpanKind(tag string) (SpanKind, bool) {
	switch tag {
	case "italic":
		return SpanItalic, true
	case "bold":
		return SpanBold, true
	case "underline":
		return SpanUnderline, true
	case "monospace":
		return SpanMonospace, true
	case "sc":
		return SpanSmallCaps, true
	case "sub":
		return SpanSub, true
	case "sup":
		return SpanSup, true
	case "ext-link", "uri":
		return SpanLink, true
	case "xref":
		return SpanXref, true
	default:
		return SpanText, false
	}
}

// PlainText returns the concatenated leaf text of all spans.
func (rt RichText) PlainText() string {
	var b strings.Builder
	for i := range rt {
		rt[i].writePlain(&b)
	}
	return b.String()
}

func (s *Span) writePlain(b *strings.Builder) {
	b.WriteString(s.Text)
	for i := range s.Children {
		s.Children[i].writePlain(b)
	}
}

// Markup renders rich text as compact HTML.
func (rt RichText) Markup() string {
	var b strings.Builder
	for i := range rt {
		rt[i].writeMarkup(&b)
	}
	return b.String()
}

func (s *Span) writeMarkup(b *strings.Builder) {
	var open, closing string
	switch s.Kind {
	case SpanItalic:
		open, closing = "<i>", "</i>"
	case SpanBold:
		open, closing = "<b>", "</b>"
	case SpanUnderline:
		open, closing = `<span class="underline">`, "</span>"
	case SpanMonospace:
		open, closing = `<span class="monospace">`, "</span>"
	case SpanSmallCaps:
		open, closing = `<span class="small-caps">`, "</span>"
	case SpanSub:
		open, closing = "<sub>", "</sub>"
	case SpanSup:
		open, closing = "<sup>", "</sup>"
	case SpanLink:
		open, closing = `<a href="`+html.EscapeString(s.Target)+`">`, "</a>"
	case SpanXref:
		open, closing = `<span class="xref" data-rid="`+html.EscapeString(s.Target)+`">`, "</span>"
	}
	b.WriteString(open)
	b.WriteString(html.EscapeString(s.Text))
	for i := range s.Children {
		s.Children[i].writeMarkup(b)
	}
	b.WriteString(closing)
}

// joinRich concatenates several rich fragments separated by a single space
// run.
func joinRich(parts []RichText) RichText {
	if parts == nil {
		return nil
	}
	out := RichText{}
	for i, p := range parts {
		if i > 0 && len(p) > 0 && len(out) > 0 {
			out = append(out, Span{Kind: SpanText, Text: " "})
		}
		out = append(out, p...)
	}
	return out
}

// collapse trims text and folds internal whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
