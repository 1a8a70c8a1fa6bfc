package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"jatsmeta/config"
	"jatsmeta/jats"
)

// Value is a single extracted field.
type Value struct {
	Name   string
	Value  any
	Absent bool
}

// Record keeps extracted fields of a single document in requested order.
type Record struct {
	Source string
	Values []Value
}

// selectFields resolves field identifiers, empty list selects every
// registered field. All unknown identifiers are reported at once.
func selectFields(names []string) ([]jats.FieldSpec, error) {
	if len(names) == 0 {
		return jats.Fields(), nil
	}
	var (
		specs []jats.FieldSpec
		errs  error
		seen  = make(map[string]bool, len(names))
	)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		spec, err := jats.Lookup(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		specs = append(specs, spec)
	}
	if errs != nil {
		return nil, errs
	}
	return specs, nil
}

// extractRecord runs requested accessors against the document.
func extractRecord(doc *etree.Document, src string, specs []jats.FieldSpec, log *zap.Logger) Record {
	rec := Record{Source: src, Values: make([]Value, 0, len(specs))}
	absent := 0
	for _, spec := range specs {
		v := spec.Extract(doc)
		a := jats.IsAbsent(v)
		if a {
			absent++
			log.Debug("Field is absent", zap.String("field", spec.Name), zap.String("source", src))
		}
		rec.Values = append(rec.Values, Value{Name: spec.Name, Value: v, Absent: a})
	}
	log.Debug("Fields extracted", zap.String("source", src), zap.Int("total", len(specs)), zap.Int("absent", absent))
	return rec
}

// encodeRecord serializes record as a single object preserving field order.
func encodeRecord(w io.Writer, rec Record, format config.OutputFmt, indent int, omitAbsent bool) error {
	switch format {
	case config.OutputFmtJson:
		return encodeJSON(w, rec, indent, omitAbsent)
	case config.OutputFmtYaml:
		return encodeYAML(w, rec, indent, omitAbsent)
	}
	return fmt.Errorf("unsupported output format %s", format)
}

func encodeJSON(w io.Writer, rec Record, indent int, omitAbsent bool) error {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	n := 0
	for _, v := range rec.Values {
		if omitAbsent && v.Absent {
			continue
		}
		key, err := json.Marshal(v.Name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v.Value)
		if err != nil {
			return fmt.Errorf("unable to encode field %s: %w", v.Name, err)
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		n++
	}
	buf.WriteByte('}')

	out := buf
	if indent > 0 {
		out = new(bytes.Buffer)
		if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
			return err
		}
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func encodeYAML(w io.Writer, rec Record, indent int, omitAbsent bool) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range rec.Values {
		if omitAbsent && v.Absent {
			continue
		}
		val := new(yaml.Node)
		if err := val.Encode(v.Value); err != nil {
			return fmt.Errorf("unable to encode field %s: %w", v.Name, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Name}, val)
	}

	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}
