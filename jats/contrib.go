package jats

import (
	"strings"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// Authors returns byline authors of the article in source order.
func Authors(doc *etree.Document) []Person {
	return people(raw.Must(root(doc), raw.Contribs))
}

// AuthorsNonByline returns contributors credited outside of the byline,
// usually members of a group author.
func AuthorsNonByline(doc *etree.Document) []Person {
	return people(raw.Must(root(doc), raw.NonBylineContribs))
}

// Contributors returns every contributor of the article and of its
// sub-articles in source order.
func Contributors(doc *etree.Document) []Person {
	frags := raw.Must(root(doc), raw.AllContribs)
	frags = append(frags, raw.Must(root(doc), raw.SubArticleContribs)...)
	return people(frags)
}

func people(frags []raw.Fragment) []Person {
	if len(frags) == 0 {
		return nil
	}
	out := make([]Person, 0, len(frags))
	for i, f := range frags {
		out = append(out, person(f.Node, i+1))
	}
	return out
}

func person(el *etree.Element, pos int) Person {
	p := Person{
		ID:           attr(el, "id"),
		Affiliations: splitIDs(values(el, raw.ContribAffRef)),
		Roles:        values(el, raw.ContribRole),
		ORCID:        first(el, raw.ContribORCID),
		Footnotes:    splitIDs(values(el, raw.ContribFnRef)),
		Funding:      splitIDs(values(el, raw.ContribFundingRef)),
		Position:     pos,
	}
	if t := attr(el, "contrib-type"); t != nil {
		p.Type = *t
	}
	if n, ok := raw.MustFirst(el, raw.ContribName); ok {
		p.Name = nameOf(n.Node)
	} else if c, ok := raw.MustFirst(el, raw.ContribCollab); ok {
		p.Name.Collab = collabName(c.Node)
	}
	for _, e := range values(el, raw.ContribEmail) {
		p.Email = append(p.Email, Email(e))
	}
	for _, a := range raw.Must(el, raw.ContribInlineAff) {
		p.InlineAffiliations = append(p.InlineAffiliations, affiliation(a.Node))
	}
	if c := attr(el, "corresp"); c != nil && *c == "yes" {
		p.Corresponding = true
	}
	if len(values(el, raw.ContribCorrespRef)) > 0 {
		p.Corresponding = true
	}
	if d := attr(el, "deceased"); d != nil && *d == "yes" {
		p.Deceased = true
	}
	for _, rid := range p.Footnotes {
		if strings.HasPrefix(rid, "equal-contrib") {
			p.EqualContrib = &rid
			break
		}
	}
	if p.EqualContrib == nil {
		if eq := attr(el, "equal-contrib"); eq != nil && *eq == "yes" {
			p.EqualContrib = eq
		}
	}
	return p
}

func nameOf(el *etree.Element) Name {
	return Name{
		Surname:    first(el, raw.Surname),
		GivenNames: first(el, raw.GivenNames),
		Suffix:     first(el, raw.Suffix),
	}
}

// collabName is group author name without its member list.
func collabName(el *etree.Element) *string {
	s := collapse(plainTextSkipping(el, skipTags("contrib-group", "xref")))
	return &s
}

// names converts name-like children of a group into names. Etal markers are
// reported separately.
func names(groups []raw.Fragment) (out []Name, etal bool) {
	for _, g := range groups {
		for _, c := range g.Node.ChildElements() {
			switch c.Tag {
			case "name", "string-name":
				out = append(out, nameOf(c))
			case "collab":
				out = append(out, Name{Collab: collabName(c)})
			case "etal":
				etal = true
			}
		}
	}
	return out, etal
}

// Affiliations returns declared affiliations in document order.
func Affiliations(doc *etree.Document) []Affiliation {
	frags := raw.Must(root(doc), raw.Affs)
	if len(frags) == 0 {
		return nil
	}
	out := make([]Affiliation, 0, len(frags))
	for _, f := range frags {
		out = append(out, affiliation(f.Node))
	}
	return out
}

// AffiliationIndex maps affiliation ids to declared affiliations. Entries
// without id are not indexed.
func AffiliationIndex(doc *etree.Document) map[string]Affiliation {
	affs := Affiliations(doc)
	if affs == nil {
		return nil
	}
	idx := make(map[string]Affiliation, len(affs))
	for _, a := range affs {
		if a.ID != nil {
			if _, dup := idx[*a.ID]; !dup {
				idx[*a.ID] = a
			}
		}
	}
	return idx
}

func affiliation(el *etree.Element) Affiliation {
	a := Affiliation{
		ID:          attr(el, "id"),
		Label:       first(el, raw.Label),
		Department:  first(el, raw.AffDepartment),
		Institution: first(el, raw.AffInstitution),
		City:        first(el, raw.AffCity),
		Country:     first(el, raw.AffCountry),
		Text:        collapse(plainTextSkipping(el, skipTags("label", "institution-id"))),
	}
	if e := first(el, raw.AffEmail); e != nil {
		s := Email(*e)
		a.Email = &s
	}
	return a
}

// Correspondence returns plain text of correspondence notes.
func Correspondence(doc *etree.Document) []string {
	frags := raw.Must(root(doc), raw.Corresp)
	if len(frags) == 0 {
		return nil
	}
	out := make([]string, 0, len(frags))
	for _, f := range frags {
		out = append(out, collapse(PlainText(f.Node)))
	}
	return out
}

// FullCorrespondence maps correspondence note ids to their email addresses.
func FullCorrespondence(doc *etree.Document) map[string][]string {
	frags := raw.Must(root(doc), raw.Corresp)
	if len(frags) == 0 {
		return nil
	}
	out := make(map[string][]string, len(frags))
	for _, f := range frags {
		id, ok := raw.AttrValue(f.Node, "id")
		if !ok {
			continue
		}
		for _, e := range values(f.Node, raw.Email) {
			out[id] = append(out[id], Email(e))
		}
	}
	return out
}
