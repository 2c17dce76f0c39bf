package dataset_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"charades/internal/annotations"
	"charades/internal/dataset"
	"charades/internal/testsupport"
)

func TestLayoutPaths(t *testing.T) {
	layout := dataset.Layout{Root: "/data"}

	if got := layout.SplitCSV(dataset.SplitTrain); got != filepath.Join("/data", "Charades", "Charades_v1_train.csv") {
		t.Fatalf("unexpected train csv path: %q", got)
	}
	if got := layout.SplitCSV(dataset.SplitTest); got != filepath.Join("/data", "Charades", "Charades_v1_test.csv") {
		t.Fatalf("unexpected test csv path: %q", got)
	}
	if got := layout.ClassFile(); got != filepath.Join("/data", "Charades", "Charades_v1_classes.txt") {
		t.Fatalf("unexpected class file path: %q", got)
	}
	if got := layout.VideosDir(); got != filepath.Join("/data", "Charades_v1") {
		t.Fatalf("unexpected videos dir: %q", got)
	}
}

func TestParseSplit(t *testing.T) {
	if _, err := dataset.ParseSplit("train"); err != nil {
		t.Fatalf("train should parse: %v", err)
	}
	if _, err := dataset.ParseSplit("validation"); err == nil {
		t.Fatal("expected error for unknown split")
	}
}

func TestOpenWalksSplit(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	layout := dataset.Layout{Root: root}

	reader, err := dataset.Open(layout, dataset.SplitTrain)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if reader.Classes().Size() != 3 {
		t.Fatalf("unexpected vocabulary size: %d", reader.Classes().Size())
	}

	var records []annotations.Record
	for reader.Scan() {
		records = append(records, reader.Record())
	}
	if err := reader.Err(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(records) != len(testsupport.TrainRows) {
		t.Fatalf("got %d records, want %d", len(records), len(testsupport.TrainRows))
	}

	first := records[0]
	if first.VideoID != "AO8RW" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.VideoPath != filepath.Join(root, "Charades_v1", "AO8RW.mp4") {
		t.Fatalf("video path not anchored under layout: %q", first.VideoPath)
	}
	if len(first.Labels) != len(first.ActionTimings) {
		t.Fatal("labels and timings misaligned")
	}

	// Trailing ";" artifacts in objects/descriptions survive intact.
	third := records[2]
	if !reflect.DeepEqual(third.Objects, []string{"television", ""}) {
		t.Fatalf("unexpected objects: %v", third.Objects)
	}
}

func TestOpenTwiceYieldsIdenticalSequences(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	layout := dataset.Layout{Root: root}

	collect := func() []annotations.Record {
		reader, err := dataset.Open(layout, dataset.SplitTest)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer reader.Close()
		var out []annotations.Record
		for reader.Scan() {
			out = append(out, reader.Record())
		}
		if err := reader.Err(); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		return out
	}

	if !reflect.DeepEqual(collect(), collect()) {
		t.Fatal("reopened split produced a different sequence")
	}
}

func TestOpenMissingSplitFails(t *testing.T) {
	layout := dataset.Layout{Root: t.TempDir()}
	if _, err := dataset.Open(layout, dataset.SplitTrain); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestVerify(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	layout := dataset.Layout{Root: root}
	if err := layout.Verify(); err != nil {
		t.Fatalf("Verify failed on complete layout: %v", err)
	}

	empty := dataset.Layout{Root: t.TempDir()}
	if err := empty.Verify(); err == nil {
		t.Fatal("expected Verify to fail on empty root")
	}
}
