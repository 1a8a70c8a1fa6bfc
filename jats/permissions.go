package jats

import (
	"strings"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

func CopyrightStatement(doc *etree.Document) *string {
	return first(root(doc), raw.CopyrightStatement)
}

func CopyrightYear(doc *etree.Document) *int {
	return intPtr(first(root(doc), raw.CopyrightYear))
}

func CopyrightHolder(doc *etree.Document) *string {
	return first(root(doc), raw.CopyrightHolder)
}

// License returns plain license text, paragraphs joined by a space.
func License(doc *etree.Document) *string {
	paras := raw.Must(root(doc), raw.LicenseP)
	if len(paras) == 0 {
		return first(root(doc), raw.License)
	}
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		parts = append(parts, collapse(PlainText(p.Node)))
	}
	s := strings.Join(parts, " ")
	return &s
}

func LicenseURL(doc *etree.Document) *string {
	return first(root(doc), raw.LicenseURL)
}

// FullLicense assembles the permissions block. Nil when the document has
// neither license nor copyright statement.
func FullLicense(doc *etree.Document) *LicenseInfo {
	lic, hasLicense := raw.MustFirst(root(doc), raw.License)
	statement := CopyrightStatement(doc)
	if !hasLicense && statement == nil {
		return nil
	}
	out := &LicenseInfo{
		Href:               LicenseURL(doc),
		Holder:             CopyrightHolder(doc),
		Year:               CopyrightYear(doc),
		CopyrightStatement: statement,
	}
	if hasLicense {
		out.Type = attr(lic.Node, "license-type")
		var parts []RichText
		for _, p := range raw.Must(root(doc), raw.LicenseP) {
			parts = append(parts, Rich(p.Node))
		}
		out.Statement = joinRich(parts)
	}
	return out
}
