package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"jatsmeta/config"
	"jatsmeta/jats"
	"jatsmeta/state"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context     string
	SourceFile  string
	DOI         string
	Title       string
	TitleSlug   string
	ArticleType string
	Volume      string
	Year        string
	ElocationID string
	Format      string
}

func deref[T any](p *T) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}

func templateValues(doc *etree.Document, src string, name config.TemplateFieldName, format config.OutputFmt) Values {
	v := Values{
		Context:     string(name),
		SourceFile:  strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		DOI:         deref(jats.DOI(doc)),
		Title:       deref(jats.Title(doc)),
		TitleSlug:   deref(jats.TitleSlug(doc)),
		ArticleType: deref(jats.ArticleType(doc)),
		Volume:      deref(jats.Volume(doc)),
		ElocationID: deref(jats.ElocationID(doc)),
		Format:      format.String(),
	}
	if d := jats.PubDate(doc); d != nil {
		v.Year = strconv.Itoa(d.Year)
	}
	return v
}

func expandTemplate(doc *etree.Document, src string, name config.TemplateFieldName, field string, format config.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, templateValues(doc, src, name, format)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildOutputPath returns output file path for the document. "src" is the
// source path relative to processed input (base name for a single file). It
// uses either default naming scheme (source file name) or user-defined
// template, keeps source directory structure when requested and cleans up path
// segments transliterating them if requested.
func buildOutputPath(doc *etree.Document, src, dst string, env *state.LocalEnv, log *zap.Logger) string {
	ex := &env.Cfg.Extraction

	outDir := dst
	if ex.KeepDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}
	ext := env.Format.Ext()

	defaultPath := filepath.Join(outDir, cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), ex.FileNameTransliterate)+ext)
	if ex.OutputNameTemplate == "" {
		return defaultPath
	}

	expanded, err := expandTemplate(doc, src, config.OutputNameTemplateFieldName, ex.OutputNameTemplate, env.Format)
	if err != nil {
		log.Warn("Unable to prepare output filename", zap.Error(err))
		return defaultPath
	}
	segments := splitPath(expanded)
	if len(segments) == 0 {
		// fallback to default name if template expanded to nothing
		return defaultPath
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments {
		parts = append(parts, cleanPathSegment(segment, ex.FileNameTransliterate))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

// splitPath splits path into non-empty segments dropping relative
// references, so template cannot escape destination directory.
func splitPath(path string) []string {
	var segments []string
	for s := range strings.SplitSeq(filepath.ToSlash(path), "/") {
		if s = strings.TrimSpace(s); s != "" && s != "." && s != ".." {
			segments = append(segments, s)
		}
	}
	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// prepareOutput makes sure output file could be written.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
