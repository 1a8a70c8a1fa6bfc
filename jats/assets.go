package jats

import (
	"strings"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// parentOf finds the closest enclosing element with an id below the article
// root.
func parentOf(el *etree.Element, pos int) Parent {
	p := Parent{Position: pos}
	for e := el.Parent(); e != nil && e.Tag != "article" && e.Tag != ""; e = e.Parent() {
		if id, ok := raw.AttrValue(e, "id"); ok {
			tag := e.Tag
			p.ParentType, p.ParentID = &tag, &id
			break
		}
	}
	return p
}

func graphics(frags []raw.Fragment) []Graphic {
	if len(frags) == 0 {
		return nil
	}
	out := make([]Graphic, 0, len(frags))
	for i, f := range frags {
		out = append(out, Graphic{
			ID:     attr(f.Node, "id"),
			Href:   first(f.Node, raw.Href),
			Parent: parentOf(f.Node, i+1),
		})
	}
	return out
}

// Graphics returns every graphic of the article, figures and tables
// included, in document order.
func Graphics(doc *etree.Document) []Graphic {
	return graphics(raw.Must(root(doc), raw.Graphics))
}

func InlineGraphics(doc *etree.Document) []Graphic {
	return graphics(raw.Must(root(doc), raw.InlineGraphics))
}

// caption returns caption paragraphs as one rich text. Captions without
// paragraphs are taken whole.
func caption(el *etree.Element) RichText {
	c, ok := raw.MustFirst(el, raw.Caption)
	if !ok {
		return nil
	}
	paras := paragraphsRich(c.Node)
	if len(paras) == 0 {
		return Rich(c.Node)
	}
	return joinRich(paras)
}

func Media(doc *etree.Document) []MediaItem {
	frags := raw.Must(root(doc), raw.Media)
	if len(frags) == 0 {
		return nil
	}
	out := make([]MediaItem, 0, len(frags))
	for i, f := range frags {
		out = append(out, MediaItem{
			ID:          attr(f.Node, "id"),
			Label:       first(f.Node, raw.Label),
			Title:       first(f.Node, raw.CaptionTitle),
			Caption:     caption(f.Node),
			Href:        first(f.Node, raw.Href),
			MimeType:    attr(f.Node, "mimetype"),
			MimeSubtype: attr(f.Node, "mime-subtype"),
			ContentType: attr(f.Node, "content-type"),
			DOI:         first(f.Node, raw.ObjectDOI),
			Parent:      parentOf(f.Node, i+1),
		})
	}
	return out
}

func SupplementaryMaterial(doc *etree.Document) []SuppMaterial {
	frags := raw.Must(root(doc), raw.Supplementary)
	if len(frags) == 0 {
		return nil
	}
	out := make([]SuppMaterial, 0, len(frags))
	for i, f := range frags {
		sm := SuppMaterial{
			ID:      attr(f.Node, "id"),
			Label:   first(f.Node, raw.Label),
			Title:   first(f.Node, raw.CaptionTitle),
			Caption: caption(f.Node),
			Href:    first(f.Node, raw.Href),
			DOI:     first(f.Node, raw.ObjectDOI),
			Parent:  parentOf(f.Node, i+1),
		}
		// files are usually wrapped into a media element
		file := f.Node
		if m := file.SelectElement("media"); m != nil {
			file = m
			if sm.Href == nil {
				sm.Href = first(m, raw.Href)
			}
		}
		sm.MimeType = attr(file, "mimetype")
		sm.MimeSubtype = attr(file, "mime-subtype")
		out = append(out, sm)
	}
	return out
}

// Components returns every part of the article which carries its own DOI.
func Components(doc *etree.Document) []Component {
	frags := raw.Must(root(doc), raw.ComponentIDs)
	if len(frags) == 0 {
		return nil
	}
	out := make([]Component, 0, len(frags))
	for i, f := range frags {
		owner := f.Node.Parent()
		if owner == nil {
			continue
		}
		c := Component{
			Type:   owner.Tag,
			ID:     attr(owner, "id"),
			Label:  first(owner, raw.Label),
			Title:  first(owner, raw.CaptionTitle),
			DOI:    strings.TrimSpace(f.Value()),
			Parent: parentOf(owner, i+1),
		}
		if c.Title == nil {
			c.Title = first(owner, raw.Title)
		}
		out = append(out, c)
	}
	return out
}

// ComponentDOI returns DOIs of article components in document order.
func ComponentDOI(doc *etree.Document) []string {
	return values(root(doc), raw.ComponentIDs)
}

func SelfURIs(doc *etree.Document) []SelfURI {
	frags := raw.Must(root(doc), raw.SelfURI)
	if len(frags) == 0 {
		return nil
	}
	out := make([]SelfURI, 0, len(frags))
	for _, f := range frags {
		out = append(out, SelfURI{
			ContentType: attr(f.Node, "content-type"),
			Href:        first(f.Node, raw.Href),
		})
	}
	return out
}

func RelatedArticles(doc *etree.Document) []RelatedArticle {
	frags := raw.Must(root(doc), raw.RelatedArticle)
	if len(frags) == 0 {
		return nil
	}
	out := make([]RelatedArticle, 0, len(frags))
	for _, f := range frags {
		out = append(out, RelatedArticle{
			ID:          attr(f.Node, "id"),
			Type:        attr(f.Node, "related-article-type"),
			ExtLinkType: attr(f.Node, "ext-link-type"),
			Href:        first(f.Node, raw.Href),
		})
	}
	return out
}

// RelatedObjectIDs returns ids of related objects such as clinical trial
// registrations.
func RelatedObjectIDs(doc *etree.Document) []string {
	var out []string
	for _, f := range raw.Must(root(doc), raw.RelatedObject) {
		if id, ok := raw.AttrValue(f.Node, "id"); ok {
			out = append(out, id)
		}
	}
	return out
}
