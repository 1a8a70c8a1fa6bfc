package jats

import (
	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// Refs returns the reference list in document order. Citation markup of
// every known dialect (element-citation, mixed-citation, citation,
// nlm-citation) produces the same shape.
func Refs(doc *etree.Document) []Reference {
	frags := raw.Must(root(doc), raw.Refs)
	if len(frags) == 0 {
		return nil
	}
	out := make([]Reference, 0, len(frags))
	for _, f := range frags {
		out = append(out, reference(f.Node))
	}
	return out
}

func reference(ref *etree.Element) Reference {
	cit := ref
	if c, ok := raw.MustFirst(ref, raw.Citation); ok {
		cit = c.Node
	}

	r := Reference{
		ID:              attr(ref, "id"),
		PublicationType: first(cit, raw.PublicationType),
		Title:           first(cit, raw.RefTitle),
		Source:          first(cit, raw.RefSource),
		Year:            first(cit, raw.RefYear),
		Volume:          first(cit, raw.RefVolume),
		Issue:           first(cit, raw.RefIssue),
		FPage:           first(cit, raw.RefFPage),
		LPage:           first(cit, raw.RefLPage),
		ElocationID:     first(cit, raw.RefElocationID),
		DOI:             first(cit, raw.RefDOI),
		PMID:            first(cit, raw.RefPMID),
		URI:             first(cit, raw.RefURI),
		PublisherName:   first(cit, raw.RefPublisherName),
		PublisherLoc:    first(cit, raw.RefPublisherLoc),
		Comment:         first(cit, raw.RefComment),
	}
	r.YearNumeric = intPtr(r.Year)

	var etal bool
	r.Authors, etal = names(raw.Must(cit, raw.RefAuthorGroup))
	editors, edEtal := names(raw.Must(cit, raw.RefEditorGroup))
	r.Editors = editors
	_, hasEtal := raw.MustFirst(cit, raw.RefEtal)
	r.Etal = etal || edEtal || hasEtal

	switch {
	case r.FPage != nil && r.LPage != nil && *r.LPage != "" && *r.LPage != *r.FPage:
		pages := *r.FPage + "-" + *r.LPage
		r.Pages = &pages
	case r.FPage != nil:
		pages := *r.FPage
		r.Pages = &pages
	case r.ElocationID != nil:
		pages := *r.ElocationID
		r.Pages = &pages
	}
	return r
}
