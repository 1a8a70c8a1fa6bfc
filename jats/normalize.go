package jats

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/net/html"

	"jatsmeta/raw"
)

// stringValue returns fragment value trimmed of surrounding whitespace. Zero
// fragment (nil node) is absent.
func stringValue(f raw.Fragment) *string {
	if f.Node == nil {
		return nil
	}
	s := strings.TrimSpace(f.Value())
	return &s
}

// first returns trimmed value of the first fragment of field under ctx.
func first(ctx *etree.Element, f raw.Field, args ...string) *string {
	frag, ok := raw.MustFirst(ctx, f, args...)
	if !ok {
		return nil
	}
	return stringValue(frag)
}

// values returns trimmed values of all fragments of field under ctx.
func values(ctx *etree.Element, f raw.Field, args ...string) []string {
	frags := raw.Must(ctx, f, args...)
	if len(frags) == 0 {
		return nil
	}
	out := make([]string, 0, len(frags))
	for _, frag := range frags {
		out = append(out, strings.TrimSpace(frag.Value()))
	}
	return out
}

// attr returns attribute value of el or nil when there is none.
func attr(el *etree.Element, key string) *string {
	v, ok := raw.AttrValue(el, key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	return &v
}

// intValue parses leading decimal digits of s: "2008a" gives 2008. No digits
// give nil.
func intValue(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func intPtr(s *string) *int {
	if s == nil {
		return nil
	}
	return intValue(*s)
}

// DateFrom builds a date from year, month and day children of el, falling
// back to its iso-8601-date attribute (YYYY[-MM[-DD]]) when there are no
// usable children. Unparsable parts are dropped, a day without month or past
// the end of its month is dropped and no year means no date.
func DateFrom(el *etree.Element) *Date {
	if el == nil {
		return nil
	}
	day, month, year := YMD(el)
	if year == "" {
		if iso := first(el, raw.ISODate); iso != nil {
			parts := strings.SplitN(*iso, "-", 3)
			year = parts[0]
			if len(parts) > 1 {
				month = parts[1]
			}
			if len(parts) > 2 {
				day = parts[2]
			}
		}
	}
	y := intValue(year)
	if y == nil {
		return nil
	}
	d := &Date{Year: *y}
	if m := intValue(month); m != nil && *m >= 1 && *m <= 12 {
		d.Month = m
		if dd := intValue(day); dd != nil && validDay(*y, *m, *dd) {
			d.Day = dd
		}
	}
	return d
}

func validDay(y, m, d int) bool {
	return d >= 1 && time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Day() == d
}

// YMD returns raw day, month and year text of a date element.
func YMD(el *etree.Element) (day, month, year string) {
	if v := first(el, raw.Day); v != nil {
		day = *v
	}
	if v := first(el, raw.Month); v != nil {
		month = *v
	}
	if v := first(el, raw.Year); v != nil {
		year = *v
	}
	return day, month, year
}

// Email recovers an address from text. Bare addresses are returned
// unchanged, markup is parsed and the text of the first email element (or
// of the root element) is returned. Text which is not well formed markup is
// stripped of anything looking like tags.
func Email(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil || doc.Root() == nil {
		return stripTags(text)
	}
	el := doc.FindElement("//email")
	if el == nil {
		el = doc.Root()
	}
	return strings.TrimSpace(raw.Text(el))
}

// stripTags is lenient version of Email for broken markup: text of the first
// email element if there is one, all text otherwise.
func stripTags(text string) string {
	var all, email strings.Builder
	var inside, found bool

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if found {
				return strings.TrimSpace(email.String())
			}
			return strings.TrimSpace(all.String())
		case html.TextToken:
			s := string(z.Text())
			all.WriteString(s)
			if inside {
				email.WriteString(s)
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "email" && !found {
				inside, found = true, true
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "email" {
				inside = false
			}
		}
	}
}

// splitIDs splits space separated id references.
func splitIDs(vals []string) []string {
	var out []string
	for _, v := range vals {
		out = append(out, strings.Fields(v)...)
	}
	return out
}
