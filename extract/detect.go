package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// how much of the file is looked at to decide what it is
const sniffLen = 4096

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks for byte order mark. UTF-32LE must be checked before
// UTF-16LE, they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 with BOM removed. For unknown
// encoding the reader is returned as is, XML declaration will take care of
// the rest.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF8:
		return unicode.UTF8BOM.NewDecoder().Reader(r)
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	}
	return r
}

// charsetReader returns CharsetReader for XML decoder. Input with BOM is
// already decoded to UTF-8 by selectReader and declared encoding must be
// ignored.
func charsetReader(enc srcEncoding) func(string, io.Reader) (io.Reader, error) {
	if enc == encUnknown {
		return charset.NewReaderLabel
	}
	return func(_ string, r io.Reader) (io.Reader, error) {
		return r, nil
	}
}

func isArticleName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml", ".nxml", ".jats":
		return true
	}
	return false
}

func readHead(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:got], nil
}

// isArticleData checks if buffer starts an XML document with <article> root.
// Buffer may be truncated, only tokens before root element are looked at.
func isArticleData(head []byte) (bool, srcEncoding) {
	enc := detectUTF(head)
	dec := xml.NewDecoder(selectReader(bytes.NewReader(head), enc))
	dec.Strict = false
	dec.CharsetReader = charsetReader(enc)
	for {
		tok, err := dec.Token()
		if err != nil {
			return false, enc
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local == "article", enc
		}
	}
}

// isArchiveFile checks if file is a zip archive by name and content.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	// 261 bytes is what filetype needs to recognize any of its types
	head, err := readHead(f, 261)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// isArticleFile checks if file is JATS article by name and content.
func isArticleFile(path string) (bool, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	if !isArticleName(path) {
		return false, encUnknown, nil
	}
	head, err := readHead(f, sniffLen)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := isArticleData(head)
	return ok, enc, nil
}

// isArticleInArchive checks if archive entry is JATS article by name and
// content.
func isArticleInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !isArticleName(f.FileHeader.Name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHead(r, sniffLen)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := isArticleData(head)
	return ok, enc, nil
}
