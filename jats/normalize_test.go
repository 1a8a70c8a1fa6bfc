package jats

import (
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"bare", "test@example.org", "test@example.org"},
		{"markup", "<email>test@example.org</email>", "test@example.org"},
		{"nested markup", `<corresp id="c1">Contact: <email>a@b.org</email></corresp>`, "a@b.org"},
		{"broken markup", "a < b@example.org", "a < b@example.org"},
		{"unclosed email", "<email>a@b.org", "a@b.org"},
		{"unbalanced markup", "Contact: <email>a@b.org</email></corresp>", "a@b.org"},
		{"unbalanced without email", "<bold>a@b.org</italic>", "a@b.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Email(tt.text); got != tt.want {
				t.Fatalf("Email(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDateFrom(t *testing.T) {
	tests := []struct {
		name             string
		xml              string
		nilDate          bool
		year, month, day int
		timestamp        bool
	}{
		{
			name: "full", xml: `<date><day>22</day><month>06</month><year>2012</year></date>`,
			year: 2012, month: 6, day: 22, timestamp: true,
		},
		{
			name: "year only", xml: `<pub-date><year>2014</year></pub-date>`,
			year: 2014, month: -1, day: -1,
		},
		{
			name: "textual month dropped", xml: `<pub-date><day>28</day><month>Feb</month><year>2014</year></pub-date>`,
			year: 2014, month: -1, day: -1,
		},
		{
			name: "day without month dropped", xml: `<date><day>3</day><year>2001</year></date>`,
			year: 2001, month: -1, day: -1,
		},
		{
			name: "bad day kept month", xml: `<date><day>x</day><month>7</month><year>2001</year></date>`,
			year: 2001, month: 7, day: -1,
		},
		{
			name: "iso attribute", xml: `<date iso-8601-date="2016-03-09"/>`,
			year: 2016, month: 3, day: 9, timestamp: true,
		},
		{
			name: "iso year only", xml: `<date iso-8601-date="2016"/>`,
			year: 2016, month: -1, day: -1,
		},
		{
			name: "day past end of february", xml: `<date><day>30</day><month>02</month><year>2013</year></date>`,
			year: 2013, month: 2, day: -1,
		},
		{
			name: "day past end of april", xml: `<date><day>31</day><month>4</month><year>2020</year></date>`,
			year: 2020, month: 4, day: -1,
		},
		{
			name: "leap day", xml: `<date><day>29</day><month>2</month><year>2016</year></date>`,
			year: 2016, month: 2, day: 29, timestamp: true,
		},
		{
			name: "iso day past end of month", xml: `<date iso-8601-date="2015-02-29"/>`,
			year: 2015, month: 2, day: -1,
		},
		{
			name: "no year", xml: `<date><month>1</month></date>`, nilDate: true,
		},
		{
			name: "non numeric year", xml: `<date><year>unknown</year></date>`, nilDate: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DateFrom(mustElement(t, tt.xml))
			if tt.nilDate {
				if d != nil {
					t.Fatalf("DateFrom = %+v, want nil", d)
				}
				return
			}
			if d == nil {
				t.Fatal("DateFrom = nil")
			}
			if d.Year != tt.year || num(d.Month) != tt.month || num(d.Day) != tt.day {
				t.Fatalf("DateFrom = %d/%d/%d, want %d/%d/%d", d.Year, num(d.Month), num(d.Day), tt.year, tt.month, tt.day)
			}
			if (d.Timestamp() != nil) != tt.timestamp {
				t.Fatalf("Timestamp() presence = %v, want %v", d.Timestamp() != nil, tt.timestamp)
			}
		})
	}

	if DateFrom(nil) != nil {
		t.Fatal("DateFrom(nil) must be nil")
	}
	var d *Date
	if d.Timestamp() != nil {
		t.Fatal("nil date timestamp must be nil")
	}
}

func TestDateTimestamp(t *testing.T) {
	d := DateFrom(mustElement(t, `<date><day>22</day><month>06</month><year>2012</year></date>`))
	ts := d.Timestamp()
	if ts == nil || *ts != 1340323200 {
		t.Fatalf("Timestamp() = %v, want 1340323200", ts)
	}

	month, day := 4, 31
	if _, ok := (&Date{Year: 2020, Month: &month, Day: &day}).Time(); ok {
		t.Fatal("Time() of 31 April must fail")
	}
}

func TestYMD(t *testing.T) {
	day, month, year := YMD(mustElement(t, `<pub-date><day>28</day><month>02</month><year>2014</year></pub-date>`))
	if day != "28" || month != "02" || year != "2014" {
		t.Fatalf("YMD = %q %q %q", day, month, year)
	}
	day, month, year = YMD(nil)
	if day != "" || month != "" || year != "" {
		t.Fatalf("YMD(nil) = %q %q %q", day, month, year)
	}
}

func TestIntValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2008", 2008},
		{" 2008a ", 2008},
		{"07", 7},
		{"a2008", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := num(intValue(tt.in)); got != tt.want {
			t.Errorf("intValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
