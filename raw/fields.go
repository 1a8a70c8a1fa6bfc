package raw

// Field is a stable logical name of a piece of metadata, independent of the
// tag shape used to encode it.
type Field string

// Document level fields. Paths are absolute.
const (
	Article            Field = "article"
	ArticleType        Field = "article_type"
	Language           Field = "language"
	JournalID          Field = "journal_id"
	JournalTitle       Field = "journal_title"
	ISSN               Field = "issn" // $1 publication format, $2 legacy pub-type
	Publisher          Field = "publisher"
	DOI                Field = "doi"
	PublisherID        Field = "publisher_id"
	ElocationID        Field = "elocation_id"
	Volume             Field = "volume"
	ArticleTitle       Field = "article_title"
	Body               Field = "body"
	Subjects           Field = "subjects" // $1 subj-group-type
	SubjectGroups      Field = "subject_groups"
	KeywordGroups      Field = "keyword_groups"
	AuthorKeywords     Field = "author_keywords"
	ResearchOrganism   Field = "research_organism"
	Abstracts          Field = "abstracts"
	Abstract           Field = "abstract"
	Digest             Field = "digest"
	ImpactStatement    Field = "impact_statement"
	Ack                Field = "ack"
	FundingStatement   Field = "funding_statement"
	AwardGroups        Field = "award_groups"
	AuthorNotes        Field = "author_notes"
	FootnotesOfType    Field = "footnotes_of_type" // $1 fn-type
	Conflict           Field = "conflict"
	Corresp            Field = "corresp"
	CopyrightStatement Field = "copyright_statement"
	CopyrightYear      Field = "copyright_year"
	CopyrightHolder    Field = "copyright_holder"
	License            Field = "license"
	LicenseP           Field = "license_p"
	LicenseURL         Field = "license_url"
	PubDate            Field = "pub_date"
	CollectionDate     Field = "collection_date"
	HistoryDate        Field = "history_date" // $1 date-type
	SelfURI            Field = "self_uri"
	RelatedArticle     Field = "related_article"
	RelatedObject      Field = "related_object"
	Contribs           Field = "contribs"
	NonBylineContribs  Field = "non_byline_contribs"
	AllContribs        Field = "all_contribs"
	SubArticleContribs Field = "sub_article_contribs"
	Affs               Field = "affs"
	Refs               Field = "refs"
	Graphics           Field = "graphics"
	InlineGraphics     Field = "inline_graphics"
	Media              Field = "media"
	Supplementary      Field = "supplementary_material"
	ComponentIDs       Field = "component_ids"
)

// Context fields, evaluated against an element located by a document level
// field. Paths are relative.
const (
	ContribName        Field = "contrib_name"
	ContribCollab      Field = "contrib_collab"
	Surname            Field = "surname"
	GivenNames         Field = "given_names"
	Suffix             Field = "suffix"
	ContribORCID       Field = "contrib_orcid"
	ContribEmail       Field = "contrib_email"
	ContribRole        Field = "contrib_role"
	ContribAffRef      Field = "contrib_aff_ref"
	ContribFnRef       Field = "contrib_fn_ref"
	ContribCorrespRef  Field = "contrib_corresp_ref"
	ContribFundingRef  Field = "contrib_funding_ref"
	ContribInlineAff   Field = "contrib_inline_aff"
	AffInstitution     Field = "aff_institution"
	AffDepartment      Field = "aff_department"
	AffCity            Field = "aff_city"
	AffCountry         Field = "aff_country"
	AffEmail           Field = "aff_email"
	Label              Field = "label"
	Title              Field = "title"
	Paragraphs         Field = "paragraphs"
	Keywords           Field = "keywords"
	Email              Field = "email"
	Citation           Field = "citation"
	RefAuthorGroup     Field = "ref_author_group"
	RefEditorGroup     Field = "ref_editor_group"
	RefTitle           Field = "ref_title"
	RefSource          Field = "ref_source"
	RefYear            Field = "ref_year"
	RefVolume          Field = "ref_volume"
	RefIssue           Field = "ref_issue"
	RefFPage           Field = "ref_fpage"
	RefLPage           Field = "ref_lpage"
	RefElocationID     Field = "ref_elocation_id"
	RefDOI             Field = "ref_doi"
	RefPMID            Field = "ref_pmid"
	RefURI             Field = "ref_uri"
	RefPublisherName   Field = "ref_publisher_name"
	RefPublisherLoc    Field = "ref_publisher_loc"
	RefComment         Field = "ref_comment"
	RefEtal            Field = "ref_etal"
	PublicationType    Field = "publication_type"
	AwardInstitution   Field = "award_institution"
	AwardInstitutionID Field = "award_institution_id"
	AwardID            Field = "award_id"
	AwardRecipients    Field = "award_recipients"
	Caption            Field = "caption"
	CaptionTitle       Field = "caption_title"
	ObjectDOI          Field = "object_doi"
	Href               Field = "href"
	SubjectTerms       Field = "subject_terms"
	Year               Field = "year"
	Month              Field = "month"
	Day                Field = "day"
	ISODate            Field = "iso_date"
)

const (
	meta  = "/article/front/article-meta"
	jmeta = "/article/front/journal-meta"
	perms = meta + "/permissions"
)

// Locations are ordered: current shape first, then legacy and publisher
// shapes, then provisional article shapes. New shapes are appended so that
// documents already extracted correctly keep their values.
var table = map[Field][]Location{
	Article:     {at(DialectCurrent, "/article")},
	ArticleType: {at(DialectCurrent, "/article").attr("article-type")},
	Language:    {at(DialectCurrent, "/article").attr("xml:lang")},
	JournalID: {
		at(DialectCurrent, jmeta+"/journal-id[@journal-id-type='publisher-id']"),
		at(DialectLegacy, jmeta+"/journal-id[@journal-id-type='nlm-ta']"),
		at(DialectPublisher, jmeta+"/journal-id"),
	},
	JournalTitle: {
		at(DialectCurrent, jmeta+"/journal-title-group/journal-title"),
		at(DialectLegacy, jmeta+"/journal-title"),
	},
	ISSN: {
		at(DialectCurrent, jmeta+"/issn[@publication-format='$1']"),
		at(DialectLegacy, jmeta+"/issn[@pub-type='$2']"),
	},
	Publisher: {at(DialectCurrent, jmeta+"/publisher/publisher-name")},
	DOI: {
		at(DialectCurrent, meta+"/article-id[@pub-id-type='doi']"),
		at(DialectLegacy, meta+"/article-id[@pub-id-type='DOI']"),
	},
	PublisherID: {
		at(DialectCurrent, meta+"/article-id[@pub-id-type='publisher-id']"),
		at(DialectPublisher, meta+"/article-id[@pub-id-type='manuscript']"),
	},
	ElocationID:  {at(DialectCurrent, meta+"/elocation-id")},
	Volume:       {at(DialectCurrent, meta+"/volume")},
	ArticleTitle: {at(DialectCurrent, meta+"/title-group/article-title")},
	Body:         {at(DialectCurrent, "/article/body")},
	Subjects: {
		at(DialectCurrent, meta+"/article-categories/subj-group[@subj-group-type='$1']/subject"),
		at(DialectLegacy, meta+"/article-categories//subj-group[@subj-group-type='$1']/subject"),
	},
	SubjectGroups: {at(DialectCurrent, meta+"/article-categories//subj-group").attr("subj-group-type")},
	KeywordGroups: {at(DialectCurrent, meta+"/kwd-group")},
	AuthorKeywords: {
		at(DialectCurrent, meta+"/kwd-group[@kwd-group-type='author-keywords']/kwd"),
		at(DialectPublisher, meta+"/kwd-group[@kwd-group-type='author generated']/kwd"),
		at(DialectLegacy, meta+"/kwd-group/kwd"),
	},
	ResearchOrganism: {at(DialectCurrent, meta+"/kwd-group[@kwd-group-type='research-organism']/kwd")},
	Abstracts:        {at(DialectCurrent, meta+"/abstract")},
	Abstract:         {at(DialectCurrent, meta+"/abstract").without("abstract-type")},
	Digest: {
		at(DialectCurrent, meta+"/abstract[@abstract-type='executive-summary']"),
		at(DialectPublisher, meta+"/abstract[@abstract-type='plain-language-summary']"),
	},
	ImpactStatement: {
		at(DialectCurrent, meta+"/custom-meta-group/custom-meta[meta-name='Author impact statement']/meta-value"),
		at(DialectPublisher, meta+"/abstract[@abstract-type='toc']"),
	},
	Ack: {
		at(DialectCurrent, "/article/back/ack"),
		at(DialectLegacy, "/article/back/sec[@sec-type='acknowledgements']"),
	},
	FundingStatement: {at(DialectCurrent, meta+"/funding-group/funding-statement")},
	AwardGroups:      {at(DialectCurrent, meta+"/funding-group/award-group")},
	AuthorNotes:      {at(DialectCurrent, meta+"/author-notes/fn")},
	FootnotesOfType: {
		at(DialectCurrent, meta+"/author-notes/fn[@fn-type='$1']"),
		at(DialectLegacy, "/article/back/fn-group/fn[@fn-type='$1']"),
		at(DialectPublisher, "/article/back/sec//fn[@fn-type='$1']"),
	},
	Conflict: {
		at(DialectCurrent, meta+"/author-notes/fn[@fn-type='conflict']"),
		at(DialectLegacy, "/article/back/fn-group/fn[@fn-type='conflict']"),
	},
	Corresp:            {at(DialectCurrent, meta+"/author-notes/corresp")},
	CopyrightStatement: {at(DialectCurrent, perms+"/copyright-statement")},
	CopyrightYear:      {at(DialectCurrent, perms+"/copyright-year")},
	CopyrightHolder:    {at(DialectCurrent, perms+"/copyright-holder")},
	License:            {at(DialectCurrent, perms+"/license")},
	LicenseP:           {at(DialectCurrent, perms+"/license/license-p")},
	LicenseURL: {
		at(DialectCurrent, perms+"/license/ali:license_ref"),
		at(DialectCurrent, perms+"/ali:license_ref"),
		at(DialectLegacy, perms+"/license").attr("xlink:href"),
		at(DialectPublisher, perms+"/license/license-p/ext-link").attr("xlink:href"),
	},
	PubDate: {
		at(DialectCurrent, meta+"/pub-date[@date-type='pub'][@publication-format='electronic']"),
		at(DialectLegacy, meta+"/pub-date[@pub-type='epub']"),
		at(DialectPublisher, meta+"/pub-date[@pub-type='pub']"),
		at(DialectPOA, meta+"/pub-date[@date-type='pub']"),
	},
	CollectionDate: {
		at(DialectCurrent, meta+"/pub-date[@date-type='collection']"),
		at(DialectLegacy, meta+"/pub-date[@pub-type='collection']"),
	},
	HistoryDate:    {at(DialectCurrent, meta+"/history/date[@date-type='$1']")},
	SelfURI:        {at(DialectCurrent, meta+"/self-uri")},
	RelatedArticle: {at(DialectCurrent, meta+"/related-article")},
	RelatedObject:  {at(DialectCurrent, meta+"/related-object")},
	Contribs:       {at(DialectCurrent, meta+"/contrib-group/contrib[@contrib-type='author']")},
	NonBylineContribs: {
		at(DialectCurrent, meta+"//contrib[@contrib-type='author non-byline']"),
		at(DialectLegacy, meta+"/contrib-group/contrib/collab/contrib-group/contrib"),
	},
	AllContribs:        {at(DialectCurrent, meta+"//contrib")},
	SubArticleContribs: {at(DialectCurrent, "/article/sub-article/front-stub//contrib")},
	Affs: {
		at(DialectCurrent, meta+"/contrib-group/aff"),
		at(DialectLegacy, meta+"/aff"),
	},
	Refs: {
		at(DialectCurrent, "/article/back/ref-list/ref"),
		at(DialectLegacy, "/article/back//ref-list/ref"),
	},
	Graphics:       {at(DialectCurrent, "/article//graphic")},
	InlineGraphics: {at(DialectCurrent, "/article//inline-graphic")},
	Media:          {at(DialectCurrent, "/article//media")},
	Supplementary:  {at(DialectCurrent, "/article//supplementary-material")},
	ComponentIDs:   {at(DialectCurrent, "/article//object-id[@pub-id-type='doi']")},

	ContribName: {
		at(DialectCurrent, "./name"),
		at(DialectCurrent, "./name-alternatives/name"),
		at(DialectPublisher, "./string-name"),
	},
	ContribCollab: {at(DialectCurrent, "./collab")},
	Surname:       {at(DialectCurrent, "./surname")},
	GivenNames:    {at(DialectCurrent, "./given-names")},
	Suffix:        {at(DialectCurrent, "./suffix")},
	ContribORCID: {
		at(DialectCurrent, "./contrib-id[@contrib-id-type='orcid']"),
		at(DialectLegacy, "./uri[@content-type='orcid']").attr("xlink:href"),
		at(DialectPublisher, "./ext-link[@ext-link-type='orcid']").attr("xlink:href"),
	},
	ContribEmail: {
		at(DialectCurrent, "./email"),
		at(DialectPublisher, "./address/email"),
	},
	ContribRole:       {at(DialectCurrent, "./role")},
	ContribAffRef:     {at(DialectCurrent, "./xref[@ref-type='aff']").attr("rid")},
	ContribFnRef:      {at(DialectCurrent, "./xref[@ref-type='fn']").attr("rid")},
	ContribCorrespRef: {at(DialectCurrent, "./xref[@ref-type='corresp']").attr("rid")},
	ContribFundingRef: {at(DialectCurrent, "./xref[@ref-type='other']").attr("rid")},
	ContribInlineAff:  {at(DialectCurrent, "./aff")},
	AffInstitution: {
		at(DialectCurrent, "./institution-wrap/institution"),
		at(DialectCurrent, "./institution").without("content-type"),
		at(DialectLegacy, "./addr-line/named-content[@content-type='institution']"),
	},
	AffDepartment: {
		at(DialectCurrent, "./institution[@content-type='dept']"),
		at(DialectPublisher, "./addr-line/named-content[@content-type='department']"),
	},
	AffCity: {
		at(DialectCurrent, "./addr-line/named-content[@content-type='city']"),
		at(DialectLegacy, "./city"),
	},
	AffCountry: {at(DialectCurrent, "./country")},
	AffEmail:   {at(DialectCurrent, "./email")},
	Label:      {at(DialectCurrent, "./label")},
	Title:      {at(DialectCurrent, "./title")},
	Paragraphs: {
		at(DialectCurrent, "./p"),
		at(DialectLegacy, "./sec/p"),
	},
	Keywords: {at(DialectCurrent, "./kwd")},
	Email:    {at(DialectCurrent, "./email")},
	Citation: {
		at(DialectCurrent, "./element-citation"),
		at(DialectCurrent, "./mixed-citation"),
		at(DialectLegacy, "./citation"),
		at(DialectLegacy, "./nlm-citation"),
	},
	RefAuthorGroup: {
		at(DialectCurrent, "./person-group[@person-group-type='author']"),
		at(DialectLegacy, "./person-group").without("person-group-type"),
		at(DialectLegacy, "."),
	},
	RefEditorGroup: {at(DialectCurrent, "./person-group[@person-group-type='editor']")},
	RefTitle: {
		at(DialectCurrent, "./article-title"),
		at(DialectCurrent, "./chapter-title"),
		at(DialectCurrent, "./data-title"),
		at(DialectLegacy, "./title"),
	},
	RefSource: {at(DialectCurrent, "./source")},
	RefYear: {
		at(DialectCurrent, "./year"),
		at(DialectLegacy, "./date/year"),
		at(DialectPublisher, "./date-in-citation").attr("iso-8601-date"),
	},
	RefVolume:      {at(DialectCurrent, "./volume")},
	RefIssue:       {at(DialectCurrent, "./issue")},
	RefFPage:       {at(DialectCurrent, "./fpage")},
	RefLPage:       {at(DialectCurrent, "./lpage")},
	RefElocationID: {at(DialectCurrent, "./elocation-id")},
	RefDOI: {
		at(DialectCurrent, "./pub-id[@pub-id-type='doi']"),
		at(DialectPublisher, "./ext-link[@ext-link-type='doi']"),
		at(DialectLegacy, "./pub-id[@pub-id-type='DOI']"),
	},
	RefPMID: {at(DialectCurrent, "./pub-id[@pub-id-type='pmid']")},
	RefURI: {
		at(DialectCurrent, "./ext-link[@ext-link-type='uri']").attr("xlink:href"),
		at(DialectLegacy, "./uri").attr("xlink:href"),
		at(DialectLegacy, "./uri"),
	},
	RefPublisherName: {at(DialectCurrent, "./publisher-name")},
	RefPublisherLoc:  {at(DialectCurrent, "./publisher-loc")},
	RefComment:       {at(DialectCurrent, "./comment")},
	RefEtal: {
		at(DialectCurrent, "./person-group/etal"),
		at(DialectLegacy, "./etal"),
	},
	PublicationType: {
		at(DialectCurrent, ".").attr("publication-type"),
		at(DialectLegacy, ".").attr("citation-type"),
	},
	AwardInstitution: {
		at(DialectCurrent, "./funding-source/institution-wrap/institution"),
		at(DialectLegacy, "./funding-source"),
	},
	AwardInstitutionID: {
		at(DialectCurrent, "./funding-source/institution-wrap/institution-id"),
		at(DialectLegacy, "./funding-source/named-content[@content-type='funder-id']"),
	},
	AwardID:         {at(DialectCurrent, "./award-id")},
	AwardRecipients: {at(DialectCurrent, "./principal-award-recipient/*")},
	Caption:         {at(DialectCurrent, "./caption")},
	CaptionTitle:    {at(DialectCurrent, "./caption/title")},
	ObjectDOI:       {at(DialectCurrent, "./object-id[@pub-id-type='doi']")},
	Href:            {at(DialectCurrent, ".").attr("xlink:href")},
	SubjectTerms:    {at(DialectCurrent, "./subject")},
	Year:            {at(DialectCurrent, "./year")},
	Month:           {at(DialectCurrent, "./month")},
	Day:             {at(DialectCurrent, "./day")},
	ISODate:         {at(DialectCurrent, ".").attr("iso-8601-date")},
}
