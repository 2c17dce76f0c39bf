package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// Split selects an annotation CSV within the bundle.
type Split string

const (
	SplitTrain Split = "train"
	SplitTest  Split = "test"
)

// ParseSplit validates a user-supplied split name.
func ParseSplit(name string) (Split, error) {
	switch Split(name) {
	case SplitTrain, SplitTest:
		return Split(name), nil
	default:
		return "", fmt.Errorf("unknown split %q (want %q or %q)", name, SplitTrain, SplitTest)
	}
}

// Layout maps the extracted bundles to paths under a dataset root:
// annotation CSVs and the class file under <root>/Charades, videos under
// <root>/Charades_v1 as <id>.mp4.
type Layout struct {
	Root string
}

// AnnotationsDir returns the directory holding the annotation CSVs.
func (l Layout) AnnotationsDir() string {
	return filepath.Join(l.Root, "Charades")
}

// VideosDir returns the directory holding the extracted videos.
func (l Layout) VideosDir() string {
	return filepath.Join(l.Root, "Charades_v1")
}

// SplitCSV returns the annotation CSV path for a split.
func (l Layout) SplitCSV(split Split) string {
	return filepath.Join(l.AnnotationsDir(), fmt.Sprintf("Charades_v1_%s.csv", split))
}

// ClassFile returns the path of the class vocabulary file.
func (l Layout) ClassFile() string {
	return filepath.Join(l.AnnotationsDir(), "Charades_v1_classes.txt")
}

// Verify reports whether the extracted dataset is present: both split CSVs,
// the class file, and the video directory. Individual video files are never
// checked.
func (l Layout) Verify() error {
	for _, path := range []string{
		l.SplitCSV(SplitTrain),
		l.SplitCSV(SplitTest),
		l.ClassFile(),
	} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("dataset layout: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("dataset layout: %s is a directory", path)
		}
	}
	info, err := os.Stat(l.VideosDir())
	if err != nil {
		return fmt.Errorf("dataset layout: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dataset layout: %s is not a directory", l.VideosDir())
	}
	return nil
}
