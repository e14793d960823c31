package source_test

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"dataextract/pkg/source"
)

func TestWalkLocal(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"book.json":               `{}`,
		"shelf/book.xml":          `<book/>`,
		"shelf/notes.txt":         "skip me",
		".git/config.json":        `{}`,
		"node_modules/pkg/a.json": `{}`,
	}
	for relPath, content := range files {
		fullPath := filepath.Join(tmpDir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	keep := func(p string) bool {
		return !strings.HasSuffix(p, ".txt")
	}

	var found []string
	err := source.Walk(nil, tmpDir, keep, func(p string) error {
		rel, err := filepath.Rel(tmpDir, p)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	sort.Strings(found)
	want := []string{"book.json", "shelf/book.xml"}
	if strings.Join(found, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, found %v", want, found)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	var reported string
	err := source.Walk(&source.LocalFS{}, missing, nil, func(string) error {
		t.Error("no files expected")
		return nil
	}, func(p string, err error) {
		reported = p
	})
	if err != nil {
		t.Fatal(err)
	}
	if reported != missing {
		t.Errorf("expected error reported for %s, got %q", missing, reported)
	}
}

func TestLocalOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := source.OrLocal(nil).Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":1}` {
		t.Errorf("read %q", b)
	}

	if _, err := source.Local.Open(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}
