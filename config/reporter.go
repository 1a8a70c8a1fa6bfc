package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"jatsmeta/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {

	r := &Report{entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

// entry is either a file to be read when report is finalized (logs are
// still being written until then) or data captured at the time of a call.
type entry struct {
	path  string
	data  []byte
	stamp time.Time
}

// Report accumulates debug artifacts: log files, processed documents and
// extraction results. Documents are handled in parallel so all methods are
// safe for concurrent use, and all of them may be called on nil Report, which
// means no report has been requested.
type Report struct {
	mu      sync.Mutex
	entries map[string]entry
	file    *os.File
}

// Close finalizes debug report.
func (r *Report) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

func (r *Report) add(name string, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		// two documents mapped to the same name is a bug in the caller
		panic(fmt.Sprintf("Attempt to overwrite entry in the report for [%s]", name))
	}
	r.entries[name] = e
}

// Store remembers file to be put in the final archive under requested name.
// File is read at the time report is closed.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	r.add(name, entry{path: path})
}

// StoreData saves binary data to be put in the final archive as a file under
// requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.add(name, entry{data: data, stamp: time.Now()})
}

// StoreYAML saves v marshaled as YAML under requested name.
func (r *Report) StoreYAML(name string, v any) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("unable to marshal report entry %s: %w", name, err)
	}
	r.StoreData(name, data)
	return nil
}

// finalize creates the final archive (report) with all previously stored items.
func (r *Report) finalize() error {

	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names, manifest := prepareManifest(r.entries)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	// in the same order as in manifest
	for _, name := range names {
		e := r.entries[name]
		if len(e.path) == 0 {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		// ignoring absent and non regular files
		info, err := os.Stat(e.path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := storeFile(arc, name, e.path, info.ModTime()); err != nil {
			return err
		}
	}
	return nil
}

func storeFile(arc *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(arc, name, t, f)
}

// prepareManifest lists entries in natural order, so documents with numeric
// prefixes follow processing order.
func prepareManifest(entries map[string]entry) ([]string, *bytes.Buffer) {

	now := time.Now()

	buf := new(bytes.Buffer)
	if len(entries) == 0 {
		return nil, buf
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	for _, k := range keys {
		e := entries[k]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		src := e.path
		if len(src) == 0 {
			src = fmt.Sprintf("<%d bytes>", len(e.data))
		}
		fmt.Fprintf(buf, "%s\t%s\t%s\n", e.stamp.UTC().Format(time.UnixDate), k, src)
	}
	return keys, buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return nil
}
