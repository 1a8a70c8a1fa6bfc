package jats

import (
	"github.com/beevik/etree"

	"jatsmeta/raw"
)

func dateOf(doc *etree.Document, f raw.Field, args ...string) *Date {
	frag, ok := raw.MustFirst(root(doc), f, args...)
	if !ok {
		return nil
	}
	return DateFrom(frag.Node)
}

// PubDate returns the electronic publication date.
func PubDate(doc *etree.Document) *Date {
	return dateOf(doc, raw.PubDate)
}

// CollectionYear returns the year of the collection (volume) date.
func CollectionYear(doc *etree.Document) *int {
	d := dateOf(doc, raw.CollectionDate)
	if d == nil {
		return nil
	}
	return &d.Year
}

// HistoryDate returns the history date of dateType ("received", "accepted"
// and so on). Types not present in the document give nil.
func HistoryDate(doc *etree.Document, dateType string) *Date {
	if dateType == "" {
		return nil
	}
	return dateOf(doc, raw.HistoryDate, dateType)
}

func ReceivedDate(doc *etree.Document) *Date {
	return HistoryDate(doc, "received")
}

func AcceptedDate(doc *etree.Document) *Date {
	return HistoryDate(doc, "accepted")
}
