package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

type zipEntry struct {
	name    string
	content string
	nonUTF8 bool
	dir     bool
}

func makeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "bundle.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		fh := &zip.FileHeader{Name: e.name, Method: zip.Deflate, NonUTF8: e.nonUTF8}
		if e.dir {
			fh.SetMode(os.ModeDir | 0755)
		}
		fw, err := w.CreateHeader(fh)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", e.name, err)
		}
		if e.dir {
			continue
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{
		{name: "elife-00013/", dir: true},
		{name: "elife-00013/elife-00013.xml", content: "<article/>"},
		{name: "elife-00013/elife-00013-fig1.tif", content: "II*"},
		{name: "elife-00015/elife-00015.xml", content: "<article/>"},
		{name: "manifest.xml", content: "<manifest/>"},
	})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"elife-00013/", []string{"elife-00013/elife-00013.xml", "elife-00013/elife-00013-fig1.tif"}},
		{"elife-00015/", []string{"elife-00015/elife-00015.xml"}},
		{"nonexistent/", nil},
		{"", []string{"elife-00013/elife-00013.xml", "elife-00013/elife-00013-fig1.tif", "elife-00015/elife-00015.xml", "manifest.xml"}},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.prefix, nil, func(archive string, e Entry) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				if e.Name != e.File.Name {
					t.Errorf("entry name %q differs from header %q", e.Name, e.File.Name)
				}
				visited = append(visited, e.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if len(visited) != len(tt.want) {
				t.Fatalf("visited %v, want %v", visited, tt.want)
			}
			for i := range tt.want {
				if visited[i] != tt.want[i] {
					t.Errorf("visited[%d] = %s, want %s", i, visited[i], tt.want[i])
				}
			}
		})
	}

	t.Run("early termination", func(t *testing.T) {
		stopErr := errors.New("stop walking")
		visited := 0
		err := Walk(zipPath, "", nil, func(string, Entry) error {
			visited++
			if visited == 2 {
				return stopErr
			}
			return nil
		})
		if !errors.Is(err, stopErr) {
			t.Errorf("Walk() error = %v, want %v", err, stopErr)
		}
		if visited != 2 {
			t.Errorf("visited %d files, want 2", visited)
		}
	})

	t.Run("content", func(t *testing.T) {
		err := Walk(zipPath, "manifest", nil, func(_ string, e Entry) error {
			rc, err := e.File.Open()
			if err != nil {
				return err
			}
			defer rc.Close()
			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(rc); err != nil {
				return err
			}
			if buf.String() != "<manifest/>" {
				t.Errorf("content = %q", buf.String())
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}
	})
}

func TestWalk_CodePage(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("статья.xml")
	if err != nil {
		t.Fatalf("unable to encode name: %v", err)
	}
	zipPath := makeZip(t, []zipEntry{{name: encoded, content: "<article/>", nonUTF8: true}})

	var names []string
	collect := func(_ string, e Entry) error {
		names = append(names, e.Name)
		return nil
	}

	if err := Walk(zipPath, "статья", charmap.Windows1251, collect); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(names) != 1 || names[0] != "статья.xml" {
		t.Fatalf("decoded names = %q", names)
	}

	names = nil
	if err := Walk(zipPath, "статья", nil, collect); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("undecoded names must not match UTF-8 prefix: %q", names)
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{{name: "../evil.xml", content: "<article/>"}})
	err := Walk(zipPath, "", nil, func(string, Entry) error {
		t.Error("walkFn must not be called")
		return nil
	})
	if err == nil {
		t.Error("expected error for unsafe entry")
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/file.zip", "", nil, func(string, Entry) error { return nil }); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(invalidZip, "", nil, func(string, Entry) error { return nil }); err == nil {
		t.Error("Expected error for invalid zip file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a/b.xml", true},
		{"a..b/c.xml", true},
		{"../a.xml", false},
		{"a/../../b.xml", false},
		{"/etc/passwd", false},
		{`\windows\system.ini`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
