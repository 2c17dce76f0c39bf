// Package testsupport builds the on-disk fixtures shared by tests: a
// miniature extracted dataset with a class file and split CSVs.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"charades/internal/config"
)

// ClassLines is the vocabulary used by fixture splits.
const ClassLines = `c000 Holding some clothes
c092 Sitting in a chair
c147 Watching television
`

const annotationHeader = "id,subject,scene,quality,relevance,verified,script,objects,descriptions,actions,length"

// TrainRows and TestRows are the fixture annotation rows, header excluded.
var (
	TrainRows = []string{
		`AO8RW,HR43,Living room,6,7,Yes,A person sits in a chair.,chair;television,A person sits down,c092 11.0 13.0;c147 0.0 5.0,30.59`,
		`XYZ12,BB21,Kitchen,,,No,A person holds clothes.,clothes,Someone folds laundry,c000 2.5 9.0,21.12`,
		`QQ7PL,HR43,Bedroom,4,5,Yes,A person watches television.,television;,Watching tv;,c147 1.0 8.0,18.20`,
	}
	TestRows = []string{
		`ZZ9AB,KD02,Living room,5,6,Yes,A person holds clothes then sits.,clothes;chair,Holding and sitting,c000 0.0 4.0;c092 4.0 12.0,25.00`,
	}
)

// NewDatasetRoot lays out an extracted dataset under a temp directory and
// returns its root.
func NewDatasetRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	annotationsDir := filepath.Join(root, "Charades")
	if err := os.MkdirAll(annotationsDir, 0o755); err != nil {
		t.Fatalf("create annotations dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "Charades_v1"), 0o755); err != nil {
		t.Fatalf("create videos dir: %v", err)
	}

	writeFile(t, filepath.Join(annotationsDir, "Charades_v1_classes.txt"), ClassLines)
	writeFile(t, filepath.Join(annotationsDir, "Charades_v1_train.csv"), csvContent(TrainRows))
	writeFile(t, filepath.Join(annotationsDir, "Charades_v1_test.csv"), csvContent(TestRows))
	return root
}

// NewConfig returns a validated config rooted in temp directories.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.RootDir = filepath.Join(base, "data")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fixture config invalid: %v", err)
	}
	return &cfg
}

func csvContent(rows []string) string {
	content := annotationHeader + "\n"
	for _, row := range rows {
		content += row + "\n"
	}
	return content
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
