package jats

import (
	"time"
)

// SpanKind distinguishes different inline content types.
type SpanKind string

const (
	SpanText      SpanKind = "text"
	SpanItalic    SpanKind = "italic"
	SpanBold      SpanKind = "bold"
	SpanUnderline SpanKind = "underline"
	SpanMonospace SpanKind = "monospace"
	SpanSmallCaps SpanKind = "smallcaps"
	SpanSub       SpanKind = "sub"
	SpanSup       SpanKind = "sup"
	SpanLink      SpanKind = "link"
	SpanXref      SpanKind = "xref"
)

// Span stores a text run or styled/linked inline content. Leaf spans carry
// Text, others carry Children.
type Span struct {
	Kind     SpanKind `json:"kind" yaml:"kind"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty"` // href for links, rid for xrefs
	Children []Span   `json:"children,omitempty" yaml:"children,omitempty"`
}

// RichText is an ordered sequence of spans in document order.
type RichText []Span

// Date is a calendar date where month and day may be unknown. Day is never
// set without Month.
type Date struct {
	Year  int  `json:"year" yaml:"year"`
	Month *int `json:"month" yaml:"month"`
	Day   *int `json:"day" yaml:"day"`
}

// Timestamp returns seconds since epoch of UTC midnight of the date, only
// when all three parts are known.
func (d *Date) Timestamp() *int64 {
	t, ok := d.Time()
	if !ok {
		return nil
	}
	ts := t.Unix()
	return &ts
}

// Time converts complete dates to time.Time.
func (d *Date) Time() (time.Time, bool) {
	if d == nil || d.Month == nil || d.Day == nil {
		return time.Time{}, false
	}
	t := time.Date(d.Year, time.Month(*d.Month), *d.Day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(*d.Month) || t.Day() != *d.Day {
		// not a calendar date, never shift it into the next month
		return time.Time{}, false
	}
	return t, true
}

// Name is a personal or collective name. Collab is set for group authors.
type Name struct {
	Surname    *string `json:"surname,omitempty" yaml:"surname,omitempty"`
	GivenNames *string `json:"given_names,omitempty" yaml:"given_names,omitempty"`
	Suffix     *string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Collab     *string `json:"collab,omitempty" yaml:"collab,omitempty"`
}

// Person is a contributor of the article.
type Person struct {
	Type               string        `json:"type" yaml:"type"`
	ID                 *string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name               Name          `json:"name" yaml:"name"`
	Affiliations       []string      `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
	InlineAffiliations []Affiliation `json:"inline_affiliations,omitempty" yaml:"inline_affiliations,omitempty"`
	Roles              []string      `json:"roles,omitempty" yaml:"roles,omitempty"`
	Email              []string      `json:"email,omitempty" yaml:"email,omitempty"`
	ORCID              *string       `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	Corresponding      bool          `json:"corresponding" yaml:"corresponding"`
	EqualContrib       *string       `json:"equal_contrib,omitempty" yaml:"equal_contrib,omitempty"`
	Deceased           bool          `json:"deceased" yaml:"deceased"`
	Footnotes          []string      `json:"footnotes,omitempty" yaml:"footnotes,omitempty"`
	Funding            []string      `json:"funding,omitempty" yaml:"funding,omitempty"`
	Position           int           `json:"position" yaml:"position"`
}

// Affiliation is declared once per document and referenced by ID.
type Affiliation struct {
	ID          *string `json:"id,omitempty" yaml:"id,omitempty"`
	Label       *string `json:"label,omitempty" yaml:"label,omitempty"`
	Department  *string `json:"dept,omitempty" yaml:"dept,omitempty"`
	Institution *string `json:"institution,omitempty" yaml:"institution,omitempty"`
	City        *string `json:"city,omitempty" yaml:"city,omitempty"`
	Country     *string `json:"country,omitempty" yaml:"country,omitempty"`
	Email       *string `json:"email,omitempty" yaml:"email,omitempty"`
	Text        string  `json:"text" yaml:"text"`
}

// Reference is one entry of the reference list.
type Reference struct {
	ID              *string `json:"id,omitempty" yaml:"id,omitempty"`
	PublicationType *string `json:"publication_type,omitempty" yaml:"publication_type,omitempty"`
	Authors         []Name  `json:"authors,omitempty" yaml:"authors,omitempty"`
	Editors         []Name  `json:"editors,omitempty" yaml:"editors,omitempty"`
	Etal            bool    `json:"etal" yaml:"etal"`
	Title           *string `json:"title,omitempty" yaml:"title,omitempty"`
	Source          *string `json:"source,omitempty" yaml:"source,omitempty"`
	Year            *string `json:"year,omitempty" yaml:"year,omitempty"`
	YearNumeric     *int    `json:"year_numeric,omitempty" yaml:"year_numeric,omitempty"`
	Volume          *string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue           *string `json:"issue,omitempty" yaml:"issue,omitempty"`
	FPage           *string `json:"fpage,omitempty" yaml:"fpage,omitempty"`
	LPage           *string `json:"lpage,omitempty" yaml:"lpage,omitempty"`
	Pages           *string `json:"pages,omitempty" yaml:"pages,omitempty"`
	ElocationID     *string `json:"elocation_id,omitempty" yaml:"elocation_id,omitempty"`
	DOI             *string `json:"doi,omitempty" yaml:"doi,omitempty"`
	PMID            *string `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	URI             *string `json:"uri,omitempty" yaml:"uri,omitempty"`
	PublisherName   *string `json:"publisher_name,omitempty" yaml:"publisher_name,omitempty"`
	PublisherLoc    *string `json:"publisher_loc,omitempty" yaml:"publisher_loc,omitempty"`
	Comment         *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// LicenseInfo is the permissions block of the article.
type LicenseInfo struct {
	Type               *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Href               *string  `json:"href,omitempty" yaml:"href,omitempty"`
	Statement          RichText `json:"statement,omitempty" yaml:"statement,omitempty"`
	Holder             *string  `json:"copyright_holder,omitempty" yaml:"copyright_holder,omitempty"`
	Year               *int     `json:"copyright_year,omitempty" yaml:"copyright_year,omitempty"`
	CopyrightStatement *string  `json:"copyright_statement,omitempty" yaml:"copyright_statement,omitempty"`
}

// Parent locates an asset in the article structure.
type Parent struct {
	ParentType *string `json:"parent_type,omitempty" yaml:"parent_type,omitempty"`
	ParentID   *string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Position   int     `json:"position" yaml:"position"`
}

// MediaItem is a media element (video, audio, data file).
type MediaItem struct {
	ID          *string  `json:"id,omitempty" yaml:"id,omitempty"`
	Label       *string  `json:"label,omitempty" yaml:"label,omitempty"`
	Title       *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Caption     RichText `json:"caption,omitempty" yaml:"caption,omitempty"`
	Href        *string  `json:"href,omitempty" yaml:"href,omitempty"`
	MimeType    *string  `json:"mimetype,omitempty" yaml:"mimetype,omitempty"`
	MimeSubtype *string  `json:"mime_subtype,omitempty" yaml:"mime_subtype,omitempty"`
	ContentType *string  `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	DOI         *string  `json:"doi,omitempty" yaml:"doi,omitempty"`
	Parent      `yaml:",inline"`
}

// Graphic is a graphic or inline-graphic element.
type Graphic struct {
	ID     *string `json:"id,omitempty" yaml:"id,omitempty"`
	Href   *string `json:"href,omitempty" yaml:"href,omitempty"`
	Parent `yaml:",inline"`
}

// SuppMaterial is a supplementary file attached to the article.
type SuppMaterial struct {
	ID          *string  `json:"id,omitempty" yaml:"id,omitempty"`
	Label       *string  `json:"label,omitempty" yaml:"label,omitempty"`
	Title       *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Caption     RichText `json:"caption,omitempty" yaml:"caption,omitempty"`
	Href        *string  `json:"href,omitempty" yaml:"href,omitempty"`
	MimeType    *string  `json:"mimetype,omitempty" yaml:"mimetype,omitempty"`
	MimeSubtype *string  `json:"mime_subtype,omitempty" yaml:"mime_subtype,omitempty"`
	DOI         *string  `json:"doi,omitempty" yaml:"doi,omitempty"`
	Parent      `yaml:",inline"`
}

// Component is any part of the article addressable by its own DOI.
type Component struct {
	Type   string  `json:"type" yaml:"type"`
	ID     *string `json:"id,omitempty" yaml:"id,omitempty"`
	Label  *string `json:"label,omitempty" yaml:"label,omitempty"`
	Title  *string `json:"title,omitempty" yaml:"title,omitempty"`
	DOI    string  `json:"doi" yaml:"doi"`
	Parent `yaml:",inline"`
}

// AwardGroup is a single funding award.
type AwardGroup struct {
	ID                *string  `json:"id,omitempty" yaml:"id,omitempty"`
	Institution       *string  `json:"institution,omitempty" yaml:"institution,omitempty"`
	InstitutionID     *string  `json:"institution_id,omitempty" yaml:"institution_id,omitempty"`
	InstitutionIDType *string  `json:"institution_id_type,omitempty" yaml:"institution_id_type,omitempty"`
	AwardIDs          []string `json:"award_ids,omitempty" yaml:"award_ids,omitempty"`
	Recipients        []Name   `json:"recipients,omitempty" yaml:"recipients,omitempty"`
}

// FundingSource is the funder part of an award group.
type FundingSource struct {
	ID            *string `json:"id,omitempty" yaml:"id,omitempty"`
	Institution   *string `json:"institution,omitempty" yaml:"institution,omitempty"`
	InstitutionID *string `json:"institution_id,omitempty" yaml:"institution_id,omitempty"`
}

// AbstractInfo is any abstract of the article, including digests.
type AbstractInfo struct {
	Type       *string    `json:"abstract_type,omitempty" yaml:"abstract_type,omitempty"`
	Title      *string    `json:"title,omitempty" yaml:"title,omitempty"`
	DOI        *string    `json:"doi,omitempty" yaml:"doi,omitempty"`
	Paragraphs []RichText `json:"paragraphs" yaml:"paragraphs"`
}

// Footnote is an author note or back matter footnote.
type Footnote struct {
	ID    *string  `json:"id,omitempty" yaml:"id,omitempty"`
	Type  *string  `json:"fn_type,omitempty" yaml:"fn_type,omitempty"`
	Label *string  `json:"label,omitempty" yaml:"label,omitempty"`
	Text  RichText `json:"text" yaml:"text"`
}

// KeywordGroup is a kwd-group.
type KeywordGroup struct {
	Type     *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Title    *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// RelatedArticle references another article.
type RelatedArticle struct {
	ID          *string `json:"id,omitempty" yaml:"id,omitempty"`
	Type        *string `json:"related_article_type,omitempty" yaml:"related_article_type,omitempty"`
	ExtLinkType *string `json:"ext_link_type,omitempty" yaml:"ext_link_type,omitempty"`
	Href        *string `json:"xlink_href,omitempty" yaml:"xlink_href,omitempty"`
}

// SelfURI points at an alternative representation of the article.
type SelfURI struct {
	ContentType *string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Href        *string `json:"xlink_href,omitempty" yaml:"xlink_href,omitempty"`
}
