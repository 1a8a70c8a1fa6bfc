package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte{0x00, 0x01, 0x02, 0x03}, encUnknown},
		{"Short", []byte{0xEF}, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	realZip := filepath.Join(tmpDir, "bundle.zip")
	writeZip(t, realZip, map[string][]byte{"a.xml": make([]byte, 300)}, "a.xml")
	renamedZip := filepath.Join(tmpDir, "bundle.bin")
	data, _ := os.ReadFile(realZip)
	writeFile(t, renamedZip, data)
	fakeZip := filepath.Join(tmpDir, "fake.zip")
	writeFile(t, fakeZip, []byte("not a real zip file"))

	tests := []struct {
		path string
		want bool
	}{
		{realZip, true},
		{renamedZip, false},
		{fakeZip, false},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			got, err := isArchiveFile(tt.path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := isArchiveFile(filepath.Join(tmpDir, "missing.zip")); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("unable to encode: %v", err)
	}
	return out
}

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("unable to encode: %v", err)
	}
	return out
}

func TestIsArticleFile(t *testing.T) {
	tmpDir := t.TempDir()
	doc := article(t, "00013")

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     bool
		wantEnc  srcEncoding
	}{
		{"JATS article", "elife.xml", doc, true, encUnknown},
		{"nxml extension", "elife.nxml", doc, true, encUnknown},
		{"uppercase extension", "elife.XML", doc, true, encUnknown},
		{"UTF-8 BOM", "bom.xml", append([]byte{0xEF, 0xBB, 0xBF}, doc...), true, encUTF8},
		{"UTF-16 with BOM", "wide.xml", utf16le(t, `<?xml version="1.0" encoding="UTF-16"?><article><front/></article>`), true, encUTF16LittleEndian},
		{"latin1 declared", "latin.xml", latin1(t, `<?xml version="1.0" encoding="ISO-8859-1"?><!-- Müller --><article/>`), true, encUnknown},
		{"other root", "manifest.xml", []byte(`<?xml version="1.0"?><manifest><item/></manifest>`), false, encUnknown},
		{"not xml", "readme.xml", []byte("just text"), false, encUnknown},
		{"wrong extension", "elife.txt", doc, false, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.filename)
			writeFile(t, path, tt.content)

			got, enc, err := isArticleFile(path)
			if err != nil {
				t.Fatalf("isArticleFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArticleFile() = %v, want %v", got, tt.want)
			}
			if enc != tt.wantEnc {
				t.Errorf("isArticleFile() encoding = %v, want %v", enc, tt.wantEnc)
			}
		})
	}

	if _, _, err := isArticleFile(filepath.Join(tmpDir, "missing.xml")); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestIsArticleInArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "bundle.zip")
	files := map[string][]byte{
		"elife-00013.xml":  article(t, "00013"),
		"manifest.xml":     []byte(`<manifest/>`),
		"elife-00013.pdf":  []byte("%PDF-1.4"),
		"bom/elife-15.xml": append([]byte{0xEF, 0xBB, 0xBF}, article(t, "00015")...),
	}
	writeZip(t, zipPath, files, "elife-00013.xml", "manifest.xml", "elife-00013.pdf", "bom/elife-15.xml")

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("unable to open zip: %v", err)
	}
	defer r.Close()

	want := []struct {
		ok  bool
		enc srcEncoding
	}{
		{true, encUnknown},
		{false, encUnknown},
		{false, encUnknown},
		{true, encUTF8},
	}
	for i, w := range want {
		ok, enc, err := isArticleInArchive(r.File[i])
		if err != nil {
			t.Fatalf("%s: isArticleInArchive() error = %v", r.File[i].Name, err)
		}
		if ok != w.ok || enc != w.enc {
			t.Errorf("%s: isArticleInArchive() = %v, %v, want %v, %v", r.File[i].Name, ok, enc, w.ok, w.enc)
		}
	}
}

func TestSelectReader(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		enc  srcEncoding
	}{
		{"unknown", []byte("text"), encUnknown},
		{"utf8 bom", []byte("\xEF\xBB\xBFtext"), encUTF8},
		{"utf16 le", utf16le(t, "text"), encUTF16LittleEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := io.ReadAll(selectReader(bytes.NewReader(tt.in), tt.enc))
			if err != nil {
				t.Fatalf("read error: %v", err)
			}
			if string(out) != "text" {
				t.Errorf("selectReader() produced %q", out)
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	t.Run("entities", func(t *testing.T) {
		doc, err := loadDocument(bytes.NewReader([]byte(`<article><front><article-meta><title-group><article-title>A&nbsp;B &mdash; C</article-title></title-group></article-meta></front></article>`)), encUnknown)
		if err != nil {
			t.Fatalf("loadDocument() error = %v", err)
		}
		if got := doc.FindElement("//article-title").Text(); got != "A\u00a0B \u2014 C" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("declared encoding", func(t *testing.T) {
		doc, err := loadDocument(bytes.NewReader(latin1(t, `<?xml version="1.0" encoding="ISO-8859-1"?><article><front><article-meta><title-group><article-title>Müller</article-title></title-group></article-meta></front></article>`)), encUnknown)
		if err != nil {
			t.Fatalf("loadDocument() error = %v", err)
		}
		if got := doc.FindElement("//article-title").Text(); got != "Müller" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("utf16 with declaration", func(t *testing.T) {
		doc, err := loadDocument(bytes.NewReader(utf16le(t, `<?xml version="1.0" encoding="UTF-16"?><article><front><article-meta><title-group><article-title>Wide</article-title></title-group></article-meta></front></article>`)), encUTF16LittleEndian)
		if err != nil {
			t.Fatalf("loadDocument() error = %v", err)
		}
		if got := doc.FindElement("//article-title").Text(); got != "Wide" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("not an article", func(t *testing.T) {
		if _, err := loadDocument(bytes.NewReader([]byte(`<manifest/>`)), encUnknown); !errors.Is(err, errNotArticle) {
			t.Errorf("loadDocument() error = %v, want %v", err, errNotArticle)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := loadDocument(bytes.NewReader(nil), encUnknown); err == nil {
			t.Error("expected error for empty input")
		}
	})
}
