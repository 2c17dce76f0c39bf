package annotations_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"charades/internal/annotations"
	"charades/internal/classes"
)

func testTable(t *testing.T) *classes.Table {
	t.Helper()
	table, err := classes.Load(strings.NewReader(
		"c000 Holding some clothes\nc092 Sitting in a chair\nc147 Watching television\n"))
	if err != nil {
		t.Fatalf("load test table: %v", err)
	}
	return table
}

func sampleRow() annotations.Row {
	return annotations.Row{
		ID:           "AO8RW",
		Subject:      "HR43",
		Scene:        "Living room",
		Quality:      "6",
		Relevance:    "7",
		Verified:     "Yes",
		Script:       "A person sits in a chair watching television.",
		Objects:      "chair;television",
		Descriptions: "A person sits down;They watch tv",
		Actions:      "c092 11.0 13.0;c147 0.0 5.0",
		Length:       "30.59",
	}
}

func TestParseAssemblesRecord(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data/Charades_v1")

	record, err := parser.Parse(sampleRow())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if record.VideoID != "AO8RW" {
		t.Fatalf("unexpected video id: %q", record.VideoID)
	}
	if record.VideoPath != filepath.Join("/data/Charades_v1", "AO8RW.mp4") {
		t.Fatalf("unexpected video path: %q", record.VideoPath)
	}
	if record.Subject != "HR43" || record.Scene != "Living room" || record.Verified != "Yes" {
		t.Fatalf("passthrough fields corrupted: %+v", record)
	}
	if record.Quality != 6 || record.Relevance != 7 {
		t.Fatalf("unexpected scores: quality=%d relevance=%d", record.Quality, record.Relevance)
	}
	if record.Length != 30.59 {
		t.Fatalf("unexpected length: %v", record.Length)
	}

	wantLabels := []int{1, 2}
	if !reflect.DeepEqual(record.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", record.Labels, wantLabels)
	}
	wantTimings := [][]float64{{11.0, 13.0}, {0.0, 5.0}}
	if !reflect.DeepEqual(record.ActionTimings, wantTimings) {
		t.Fatalf("timings = %v, want %v", record.ActionTimings, wantTimings)
	}
	if len(record.Labels) != len(record.ActionTimings) {
		t.Fatal("labels and timings misaligned")
	}
}

func TestParseEmptyActionsYieldsNoLabels(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Actions = ""

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(record.Labels) != 0 || len(record.ActionTimings) != 0 {
		t.Fatalf("expected no labels, got %v / %v", record.Labels, record.ActionTimings)
	}
}

func TestParseFiltersEmptyActionTokensOnly(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	// Trailing separator yields an empty action token that must be dropped.
	row.Actions = "c092 11.0 13.0;"

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(record.Labels) != 1 || record.Labels[0] != 1 {
		t.Fatalf("unexpected labels: %v", record.Labels)
	}
}

func TestParsePreservesSplitArtifactsInObjects(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Objects = "c090;c148;"
	row.Descriptions = ""

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Objects and descriptions keep plain split semantics, trailing empties
	// included. Only action tokens are filtered.
	wantObjects := []string{"c090", "c148", ""}
	if !reflect.DeepEqual(record.Objects, wantObjects) {
		t.Fatalf("objects = %v, want %v", record.Objects, wantObjects)
	}
	wantDescriptions := []string{""}
	if !reflect.DeepEqual(record.Descriptions, wantDescriptions) {
		t.Fatalf("descriptions = %v, want %v", record.Descriptions, wantDescriptions)
	}
}

func TestParseEmptyScoresBecomeSentinel(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Quality = ""
	row.Relevance = ""
	row.Length = ""

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if record.Quality != annotations.Unset {
		t.Fatalf("quality = %d, want sentinel %d", record.Quality, annotations.Unset)
	}
	if record.Relevance != annotations.Unset {
		t.Fatalf("relevance = %d, want sentinel %d", record.Relevance, annotations.Unset)
	}
	if record.Length != annotations.Unset {
		t.Fatalf("length = %v, want sentinel %d", record.Length, annotations.Unset)
	}
}

func TestParseScoreValues(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Quality = "5"

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if record.Quality != 5 {
		t.Fatalf("quality = %d, want 5", record.Quality)
	}
}

func TestParseRejectsUnknownClassCode(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Actions = "czzz 1.0 2.0"

	_, err := parser.Parse(row)
	if !errors.Is(err, classes.ErrUnknownClassCode) {
		t.Fatalf("expected ErrUnknownClassCode, got %v", err)
	}
}

func TestParseRejectsMalformedTiming(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Actions = "c092 11.0 end"

	_, err := parser.Parse(row)
	if !errors.Is(err, annotations.ErrMalformedTiming) {
		t.Fatalf("expected ErrMalformedTiming, got %v", err)
	}
}

func TestParseRejectsMalformedInteger(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Quality = "good"

	_, err := parser.Parse(row)
	if !errors.Is(err, annotations.ErrMalformedInteger) {
		t.Fatalf("expected ErrMalformedInteger, got %v", err)
	}
}

func TestParseRejectsNonNumericLength(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	row.Length = "half a minute"

	_, err := parser.Parse(row)
	if !errors.Is(err, annotations.ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
}

func TestParseActionWithoutTimings(t *testing.T) {
	parser := annotations.NewParser(testTable(t), "/data")
	row := sampleRow()
	// The grammar nominally carries start and end, but zero timings are legal.
	row.Actions = "c000"

	record, err := parser.Parse(row)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(record.Labels) != 1 || record.Labels[0] != 0 {
		t.Fatalf("unexpected labels: %v", record.Labels)
	}
	if len(record.ActionTimings) != 1 || len(record.ActionTimings[0]) != 0 {
		t.Fatalf("unexpected timings: %v", record.ActionTimings)
	}
}
