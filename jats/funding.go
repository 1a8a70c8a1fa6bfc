package jats

import (
	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// AwardGroups returns funding awards in document order.
func AwardGroups(doc *etree.Document) []AwardGroup {
	frags := raw.Must(root(doc), raw.AwardGroups)
	if len(frags) == 0 {
		return nil
	}
	out := make([]AwardGroup, 0, len(frags))
	for _, f := range frags {
		g := AwardGroup{
			ID:          attr(f.Node, "id"),
			Institution: institution(f.Node),
			AwardIDs:    values(f.Node, raw.AwardID),
		}
		if id, ok := raw.MustFirst(f.Node, raw.AwardInstitutionID); ok {
			g.InstitutionID = stringValue(id)
			g.InstitutionIDType = attr(id.Node, "institution-id-type")
		}
		g.Recipients = recipients(raw.Must(f.Node, raw.AwardRecipients))
		out = append(out, g)
	}
	return out
}

// FundingSources returns the funder of every award group.
func FundingSources(doc *etree.Document) []FundingSource {
	groups := AwardGroups(doc)
	if groups == nil {
		return nil
	}
	out := make([]FundingSource, 0, len(groups))
	for _, g := range groups {
		out = append(out, FundingSource{
			ID:            g.ID,
			Institution:   g.Institution,
			InstitutionID: g.InstitutionID,
		})
	}
	return out
}

// institution returns funder name. Legacy funding-source elements mix the
// name with funder id markup which is not part of the name.
func institution(award *etree.Element) *string {
	frag, ok := raw.MustFirst(award, raw.AwardInstitution)
	if !ok {
		return nil
	}
	s := collapse(plainTextSkipping(frag.Node, skipTags("named-content", "institution-id")))
	return &s
}

func recipients(frags []raw.Fragment) []Name {
	var out []Name
	for _, f := range frags {
		switch f.Node.Tag {
		case "name", "string-name":
			out = append(out, nameOf(f.Node))
		case "collab", "institution":
			out = append(out, Name{Collab: collabName(f.Node)})
		}
	}
	return out
}
