package index_test

import (
	"context"
	"path/filepath"
	"testing"

	"charades/internal/annotations"
	"charades/internal/dataset"
	"charades/internal/index"
	"charades/internal/testsupport"
)

func openStore(t *testing.T) *index.Store {
	t.Helper()
	store, err := index.Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func importSplit(t *testing.T, store *index.Store, root string, split dataset.Split) int {
	t.Helper()
	reader, err := dataset.Open(dataset.Layout{Root: root}, split)
	if err != nil {
		t.Fatalf("open %s split: %v", split, err)
	}
	defer reader.Close()

	count, err := store.ImportSplit(context.Background(), reader)
	if err != nil {
		t.Fatalf("import %s split: %v", split, err)
	}
	return count
}

func TestImportSplitCounts(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	store := openStore(t)
	ctx := context.Background()

	if got := importSplit(t, store, root, dataset.SplitTrain); got != len(testsupport.TrainRows) {
		t.Fatalf("imported %d train records, want %d", got, len(testsupport.TrainRows))
	}
	if got := importSplit(t, store, root, dataset.SplitTest); got != len(testsupport.TestRows) {
		t.Fatalf("imported %d test records, want %d", got, len(testsupport.TestRows))
	}

	total, err := store.Count(ctx, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := len(testsupport.TrainRows) + len(testsupport.TestRows); total != want {
		t.Fatalf("total count = %d, want %d", total, want)
	}

	trainOnly, err := store.Count(ctx, string(dataset.SplitTrain))
	if err != nil {
		t.Fatalf("count train: %v", err)
	}
	if trainOnly != len(testsupport.TrainRows) {
		t.Fatalf("train count = %d, want %d", trainOnly, len(testsupport.TrainRows))
	}
}

func TestImportSplitReplacesPriorImport(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	store := openStore(t)
	ctx := context.Background()

	importSplit(t, store, root, dataset.SplitTrain)
	importSplit(t, store, root, dataset.SplitTrain)

	count, err := store.Count(ctx, string(dataset.SplitTrain))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(testsupport.TrainRows) {
		t.Fatalf("re-import duplicated rows: count = %d, want %d", count, len(testsupport.TrainRows))
	}
}

func TestRecordRoundTrip(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	store := openStore(t)
	ctx := context.Background()
	importSplit(t, store, root, dataset.SplitTrain)

	record, split, err := store.Record(ctx, "AO8RW")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record == nil {
		t.Fatal("record AO8RW not found")
	}
	if split != string(dataset.SplitTrain) {
		t.Fatalf("split = %q, want train", split)
	}
	if record.Scene != "Living room" || record.Quality != 6 {
		t.Fatalf("unexpected scalars: %+v", record)
	}
	if len(record.Labels) != 2 || record.Labels[0] != 1 || record.Labels[1] != 2 {
		t.Fatalf("labels = %v", record.Labels)
	}
	if len(record.ActionTimings) != 2 || record.ActionTimings[0][0] != 11.0 {
		t.Fatalf("timings = %v", record.ActionTimings)
	}
	if record.VideoPath != filepath.Join(root, "Charades_v1", "AO8RW.mp4") {
		t.Fatalf("video path = %q", record.VideoPath)
	}

	missing, _, err := store.Record(ctx, "NOPE0")
	if err != nil {
		t.Fatalf("get missing record: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestSceneAndClassCounts(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	store := openStore(t)
	ctx := context.Background()
	importSplit(t, store, root, dataset.SplitTrain)
	importSplit(t, store, root, dataset.SplitTest)

	scenes, err := store.SceneCounts(ctx, 0)
	if err != nil {
		t.Fatalf("scene counts: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("scene count rows = %d, want 3", len(scenes))
	}
	if scenes[0].Scene != "Living room" || scenes[0].Count != 2 {
		t.Fatalf("top scene = %+v", scenes[0])
	}

	byClass, err := store.ClassCounts(ctx, 0)
	if err != nil {
		t.Fatalf("class counts: %v", err)
	}
	if len(byClass) != 3 {
		t.Fatalf("class count rows = %d, want 3", len(byClass))
	}
	for _, cc := range byClass {
		if cc.Count != 2 {
			t.Fatalf("class %d count = %d, want 2", cc.ClassIndex, cc.Count)
		}
	}

	limited, err := store.ClassCounts(ctx, 1)
	if err != nil {
		t.Fatalf("limited class counts: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: got %d rows", len(limited))
	}
}

func TestQualityHistogramKeepsSentinel(t *testing.T) {
	root := testsupport.NewDatasetRoot(t)
	store := openStore(t)
	ctx := context.Background()
	importSplit(t, store, root, dataset.SplitTrain)

	histogram, err := store.QualityHistogram(ctx)
	if err != nil {
		t.Fatalf("quality histogram: %v", err)
	}
	if len(histogram) != 3 {
		t.Fatalf("histogram rows = %d, want 3", len(histogram))
	}
	if histogram[0].Quality != annotations.Unset || histogram[0].Count != 1 {
		t.Fatalf("expected unset bucket first, got %+v", histogram[0])
	}
}
