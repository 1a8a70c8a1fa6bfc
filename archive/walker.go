// Package archive builds Walk abstraction on top of "archive/zip" for article
// bundles: zip files carrying JATS XML together with figures and media.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// Entry is a regular file inside an archive. Name is the entry path, decoded
// from the forced code page when the entry was not marked as UTF-8.
type Entry struct {
	Name string
	File *zip.File
}

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, entry Entry) error

// Walk walks the all files in the archive whose decoded names start with
// prefix, calling walkFn for each item in archive order. Archives having
// entries with path traversal components ("..") or absolute paths are
// rejected to prevent Zip Slip attacks. When cp is not nil it is used to
// decode names of entries which do not have UTF-8 flag set.
func Walk(archive, prefix string, cp encoding.Encoding, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := entryName(f, cp)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, Entry{Name: name, File: f}); err != nil {
			return err
		}
	}
	return nil
}

func entryName(f *zip.File, cp encoding.Encoding) string {
	name := f.FileHeader.Name
	if cp == nil || !f.FileHeader.NonUTF8 {
		return name
	}
	if n, err := cp.NewDecoder().String(name); err == nil {
		return n
	}
	return name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
