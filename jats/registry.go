package jats

import (
	"fmt"
	"reflect"

	"github.com/beevik/etree"

	"jatsmeta/raw"
)

// FieldSpec binds an output field name to its parsed accessor.
type FieldSpec struct {
	Name    string
	Extract func(*etree.Document) any
}

func languageField(doc *etree.Document) any {
	tag, ok := Language(doc)
	if !ok {
		return (*string)(nil)
	}
	s := tag.String()
	return &s
}

func timestamp(get func(*etree.Document) *Date) func(*etree.Document) any {
	return func(doc *etree.Document) any {
		return get(doc).Timestamp()
	}
}

// datePart picks year, month or day of a date, absent when the date or the
// part is.
func datePart(get func(*etree.Document) *Date, part func(*Date) *int) func(*etree.Document) any {
	return func(doc *etree.Document) any {
		if d := get(doc); d != nil {
			return part(d)
		}
		return (*int)(nil)
	}
}

func year(d *Date) *int { return &d.Year }
func month(d *Date) *int { return d.Month }
func day(d *Date) *int { return d.Day }

var registry = []FieldSpec{
	{"journal_id", func(d *etree.Document) any { return JournalID(d) }},
	{"journal_title", func(d *etree.Document) any { return JournalTitle(d) }},
	{"journal_issn", func(d *etree.Document) any { return JournalISSN(d, "electronic") }},
	{"publisher", func(d *etree.Document) any { return Publisher(d) }},
	{"article_type", func(d *etree.Document) any { return ArticleType(d) }},
	{"doi", func(d *etree.Document) any { return DOI(d) }},
	{"publisher_id", func(d *etree.Document) any { return PublisherID(d) }},
	{"elocation_id", func(d *etree.Document) any { return ElocationID(d) }},
	{"volume", func(d *etree.Document) any { return Volume(d) }},
	{"language", languageField},
	{"title", func(d *etree.Document) any { return Title(d) }},
	{"full_title", func(d *etree.Document) any { return FullTitle(d) }},
	{"title_short", func(d *etree.Document) any { return TitleShort(d) }},
	{"title_slug", func(d *etree.Document) any { return TitleSlug(d) }},
	{"is_poa", func(d *etree.Document) any { return IsPOA(d) }},
	{"display_channel", func(d *etree.Document) any { return DisplayChannel(d) }},
	{"category", func(d *etree.Document) any { return Category(d) }},
	{"subject_area", func(d *etree.Document) any { return SubjectArea(d) }},
	{"full_subject_area", func(d *etree.Document) any { return FullSubjectArea(d) }},
	{"keywords", func(d *etree.Document) any { return Keywords(d) }},
	{"full_keyword_groups", func(d *etree.Document) any { return FullKeywordGroups(d) }},
	{"research_organism", func(d *etree.Document) any { return ResearchOrganism(d) }},
	{"abstract", func(d *etree.Document) any { return Abstract(d) }},
	{"full_abstract", func(d *etree.Document) any { return FullAbstract(d) }},
	{"abstracts", func(d *etree.Document) any { return Abstracts(d) }},
	{"digest", func(d *etree.Document) any { return Digest(d) }},
	{"full_digest", func(d *etree.Document) any { return FullDigest(d) }},
	{"impact_statement", func(d *etree.Document) any { return ImpactStatement(d) }},
	{"ack", func(d *etree.Document) any { return Ack(d) }},
	{"acknowledgements", func(d *etree.Document) any { return Ack(d) }},
	{"full_ack", func(d *etree.Document) any { return FullAck(d) }},
	{"funding_statement", func(d *etree.Document) any { return FundingStatement(d) }},
	{"conflict", func(d *etree.Document) any { return Conflict(d) }},
	{"author_contributions", func(d *etree.Document) any { return FootnotesOfType(d, "con") }},
	{"competing_interests", func(d *etree.Document) any { return FootnotesOfType(d, "conflict") }},
	{"author_notes", func(d *etree.Document) any { return AuthorNotes(d) }},
	{"full_author_notes", func(d *etree.Document) any { return FullAuthorNotes(d) }},
	{"copyright_statement", func(d *etree.Document) any { return CopyrightStatement(d) }},
	{"copyright_year", func(d *etree.Document) any { return CopyrightYear(d) }},
	{"copyright_holder", func(d *etree.Document) any { return CopyrightHolder(d) }},
	{"license", func(d *etree.Document) any { return License(d) }},
	{"license_url", func(d *etree.Document) any { return LicenseURL(d) }},
	{"full_license", func(d *etree.Document) any { return FullLicense(d) }},
	{"pub_date", func(d *etree.Document) any { return PubDate(d) }},
	{"pub_date_timestamp", timestamp(PubDate)},
	{"pub_date_year", datePart(PubDate, year)},
	{"pub_date_month", datePart(PubDate, month)},
	{"pub_date_day", datePart(PubDate, day)},
	{"collection_year", func(d *etree.Document) any { return CollectionYear(d) }},
	{"received_date", func(d *etree.Document) any { return ReceivedDate(d) }},
	{"received_date_timestamp", timestamp(ReceivedDate)},
	{"received_date_year", datePart(ReceivedDate, year)},
	{"received_date_month", datePart(ReceivedDate, month)},
	{"received_date_day", datePart(ReceivedDate, day)},
	{"accepted_date", func(d *etree.Document) any { return AcceptedDate(d) }},
	{"accepted_date_timestamp", timestamp(AcceptedDate)},
	{"accepted_date_year", datePart(AcceptedDate, year)},
	{"accepted_date_month", datePart(AcceptedDate, month)},
	{"accepted_date_day", datePart(AcceptedDate, day)},
	{"authors", func(d *etree.Document) any { return Authors(d) }},
	{"authors_non_byline", func(d *etree.Document) any { return AuthorsNonByline(d) }},
	{"contributors", func(d *etree.Document) any { return Contributors(d) }},
	{"full_affiliation", func(d *etree.Document) any { return Affiliations(d) }},
	{"correspondence", func(d *etree.Document) any { return Correspondence(d) }},
	{"full_correspondence", func(d *etree.Document) any { return FullCorrespondence(d) }},
	{"award_groups", func(d *etree.Document) any { return AwardGroups(d) }},
	{"full_award_groups", func(d *etree.Document) any { return AwardGroups(d) }},
	{"full_award_group_funding_source", func(d *etree.Document) any { return FundingSources(d) }},
	{"refs", func(d *etree.Document) any { return Refs(d) }},
	{"references", func(d *etree.Document) any { return Refs(d) }},
	{"graphics", func(d *etree.Document) any { return Graphics(d) }},
	{"inline_graphics", func(d *etree.Document) any { return InlineGraphics(d) }},
	{"media", func(d *etree.Document) any { return Media(d) }},
	{"supplementary_material", func(d *etree.Document) any { return SupplementaryMaterial(d) }},
	{"components", func(d *etree.Document) any { return Components(d) }},
	{"component_doi", func(d *etree.Document) any { return ComponentDOI(d) }},
	{"self_uri", func(d *etree.Document) any { return SelfURIs(d) }},
	{"related_article", func(d *etree.Document) any { return RelatedArticles(d) }},
	{"related_object_ids", func(d *etree.Document) any { return RelatedObjectIDs(d) }},
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, f := range registry {
		idx[f.Name] = i
	}
	return idx
}()

// Fields returns all output fields in their canonical order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds field by name. Unknown names give raw.ErrUnsupportedField.
func Lookup(name string) (FieldSpec, error) {
	i, ok := registryIndex[name]
	if !ok {
		return FieldSpec{}, fmt.Errorf("%w: %q", raw.ErrUnsupportedField, name)
	}
	return registry[i], nil
}

// IsAbsent reports whether an extracted value stands for a field missing
// from the document: nil, nil pointer, nil slice or nil map.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
