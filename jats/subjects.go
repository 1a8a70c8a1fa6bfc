package jats

import (
	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// DisplayChannel returns subjects of the display-channel group.
func DisplayChannel(doc *etree.Document) []string {
	return values(root(doc), raw.Subjects, "display-channel")
}

// Category returns subjects of the heading group.
func Category(doc *etree.Document) []string {
	return values(root(doc), raw.Subjects, "heading")
}

// SubjectArea returns subjects of every group except display channels, in
// document order.
func SubjectArea(doc *etree.Document) []string {
	var out []string
	for _, g := range raw.Must(root(doc), raw.SubjectGroups) {
		if g.Value() == "display-channel" {
			continue
		}
		out = append(out, values(g.Node, raw.SubjectTerms)...)
	}
	return out
}

// FullSubjectArea groups subjects by subject group type.
func FullSubjectArea(doc *etree.Document) map[string][]string {
	groups := raw.Must(root(doc), raw.SubjectGroups)
	if len(groups) == 0 {
		return nil
	}
	out := make(map[string][]string, len(groups))
	for _, g := range groups {
		typ := g.Value()
		out[typ] = append(out[typ], values(g.Node, raw.SubjectTerms)...)
	}
	return out
}

// Keywords returns author keywords.
func Keywords(doc *etree.Document) []string {
	return values(root(doc), raw.AuthorKeywords)
}

// FullKeywordGroups returns every keyword group with its type and title.
func FullKeywordGroups(doc *etree.Document) []KeywordGroup {
	frags := raw.Must(root(doc), raw.KeywordGroups)
	if len(frags) == 0 {
		return nil
	}
	out := make([]KeywordGroup, 0, len(frags))
	for _, f := range frags {
		kw := values(f.Node, raw.Keywords)
		if kw == nil {
			kw = []string{}
		}
		out = append(out, KeywordGroup{
			Type:     attr(f.Node, "kwd-group-type"),
			Title:    first(f.Node, raw.Title),
			Keywords: kw,
		})
	}
	return out
}

func ResearchOrganism(doc *etree.Document) []string {
	return values(root(doc), raw.ResearchOrganism)
}
