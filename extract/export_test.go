package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
	yaml "gopkg.in/yaml.v3"

	"jatsmeta/config"
	"jatsmeta/jats"
	"jatsmeta/raw"
)

func TestSelectFields(t *testing.T) {
	all, err := selectFields(nil)
	if err != nil {
		t.Fatalf("selectFields(nil) error = %v", err)
	}
	if len(all) != len(jats.Fields()) {
		t.Errorf("selectFields(nil) = %d fields, want %d", len(all), len(jats.Fields()))
	}

	specs, err := selectFields([]string{"title", " doi", "title", "authors"})
	if err != nil {
		t.Fatalf("selectFields() error = %v", err)
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	if strings.Join(names, ",") != "title,doi,authors" {
		t.Errorf("selected = %v", names)
	}

	_, err = selectFields([]string{"doi", "no_such", "also_missing"})
	if !errors.Is(err, raw.ErrUnsupportedField) {
		t.Fatalf("selectFields() error = %v, want unsupported field", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("reported %d errors, want 2", n)
	}
}

func loadCurrent(t *testing.T) *etree.Document {
	t.Helper()
	doc, err := loadDocument(bytes.NewReader(article(t, "00013")), encUnknown)
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	return doc
}

func TestExtractRecord(t *testing.T) {
	names := []string{"doi", "funding_statement", "volume", "pub_date_timestamp"}
	specs, err := selectFields(names)
	if err != nil {
		t.Fatalf("selectFields() error = %v", err)
	}
	log := zaptest.NewLogger(t)

	rec := extractRecord(loadCurrent(t), "elife.xml", specs, log)
	if rec.Source != "elife.xml" || len(rec.Values) != len(names) {
		t.Fatalf("record = %+v", rec)
	}
	for i, name := range names {
		if rec.Values[i].Name != name {
			t.Errorf("values[%d] = %s, want %s", i, rec.Values[i].Name, name)
		}
		if rec.Values[i].Absent {
			t.Errorf("field %s marked absent", name)
		}
	}

	empty, err := loadDocument(strings.NewReader(`<article><front><article-meta/></front></article>`), encUnknown)
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	rec = extractRecord(empty, "empty.xml", specs, log)
	for _, v := range rec.Values {
		if !v.Absent {
			t.Errorf("field %s must be absent, got %#v", v.Name, v.Value)
		}
	}
}

func sampleRecord() Record {
	doi, vol := "10.7554/eLife.00013", 3
	return Record{
		Source: "elife.xml",
		Values: []Value{
			{Name: "title", Value: (*string)(nil), Absent: true},
			{Name: "doi", Value: &doi},
			{Name: "volume", Value: &vol},
			{Name: "keywords", Value: []string{"b", "a"}},
		},
	}
}

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		indent     int
		omitAbsent bool
		want       string
	}{
		{"compact", 0, false, `{"title":null,"doi":"10.7554/eLife.00013","volume":3,"keywords":["b","a"]}` + "\n"},
		{"omit absent", 0, true, `{"doi":"10.7554/eLife.00013","volume":3,"keywords":["b","a"]}` + "\n"},
		{"indented", 2, true, "{\n  \"doi\": \"10.7554/eLife.00013\",\n  \"volume\": 3,\n  \"keywords\": [\n    \"b\",\n    \"a\"\n  ]\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := encodeRecord(buf, sampleRecord(), config.OutputFmtJson, tt.indent, tt.omitAbsent); err != nil {
				t.Fatalf("encodeRecord() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("encodeRecord() =\n%s\nwant\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := encodeRecord(buf, sampleRecord(), config.OutputFmtYaml, 2, false); err != nil {
		t.Fatalf("encodeRecord() error = %v", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &node); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	m := node.Content[0]
	var keys []string
	for i := 0; i < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	if strings.Join(keys, ",") != "title,doi,volume,keywords" {
		t.Errorf("keys = %v, want field order", keys)
	}
	if m.Content[1].Tag != "!!null" {
		t.Errorf("absent title encoded as %s %q", m.Content[1].Tag, m.Content[1].Value)
	}
	if !strings.Contains(buf.String(), "doi: 10.7554/eLife.00013\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestEncodeFullDocument(t *testing.T) {
	doc := loadCurrent(t)
	rec := extractRecord(doc, "elife.xml", jats.Fields(), zaptest.NewLogger(t))

	buf := new(bytes.Buffer)
	if err := encodeRecord(buf, rec, config.OutputFmtJson, 0, false); err != nil {
		t.Fatalf("encodeRecord() error = %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(out) != len(jats.Fields()) {
		t.Errorf("encoded %d fields, want %d", len(out), len(jats.Fields()))
	}
	if authors, ok := out["authors"].([]any); !ok || len(authors) != 3 {
		t.Errorf("authors = %v", out["authors"])
	}

	buf.Reset()
	if err := encodeRecord(buf, rec, config.OutputFmtYaml, 2, true); err != nil {
		t.Fatalf("encodeRecord(yaml) error = %v", err)
	}
	var y map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &y); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if y["doi"] != "10.7554/eLife.00013" {
		t.Errorf("yaml doi = %v", y["doi"])
	}
}
