package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"jatsmeta/config"
	"jatsmeta/state"
)

func testEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Format = config.OutputFmtJson
	return ctx, env
}

// article returns test article with its DOI suffix replaced.
func article(t *testing.T, suffix string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "jats", "testdata", "current.xml"))
	if err != nil {
		t.Fatalf("unable to read test article: %v", err)
	}
	return []byte(strings.ReplaceAll(string(data), "eLife.00013", "eLife."+suffix))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("unable to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unable to write %s: %v", path, err)
	}
}

func writeZip(t *testing.T, path string, files map[string][]byte, order ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("unable to create directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unable to create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range order {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			t.Fatalf("unable to create %s in zip: %v", name, err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			t.Fatalf("unable to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unable to close zip: %v", err)
	}
}
