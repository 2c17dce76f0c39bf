package archive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"charades/internal/archive"
)

func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	writer := zip.NewWriter(file)
	for name, content := range entries {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestUnzipExtractsNestedEntries(t *testing.T) {
	src := writeArchive(t, map[string]string{
		"Charades/Charades_v1_train.csv":   "id,subject\n",
		"Charades/Charades_v1_classes.txt": "c000 Holding some clothes\n",
	})
	dest := t.TempDir()

	if err := archive.Unzip(src, dest); err != nil {
		t.Fatalf("Unzip failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "Charades", "Charades_v1_classes.txt"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "c000 Holding some clothes\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestUnzipRejectsPathTraversal(t *testing.T) {
	src := writeArchive(t, map[string]string{
		"../escape.txt": "nope",
	})
	dest := t.TempDir()

	if err := archive.Unzip(src, dest); err == nil {
		t.Fatal("expected zip-slip entry to be rejected")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "escape.txt")); !os.IsNotExist(err) {
		t.Fatalf("escaped file written: %v", err)
	}
}

func TestUnzipMissingArchive(t *testing.T) {
	if err := archive.Unzip(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing archive")
	}
}
