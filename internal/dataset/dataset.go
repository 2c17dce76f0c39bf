package dataset

import (
	"fmt"
	"os"

	"charades/internal/annotations"
	"charades/internal/classes"
)

// Reader walks one open split. It owns the underlying CSV file; Close must
// be called on every exit path. Iteration is forward-only; call Open again
// for a fresh pass.
type Reader struct {
	split   Split
	table   *classes.Table
	file    *os.File
	scanner *annotations.Scanner
}

// Open loads the class vocabulary and opens the split's annotation CSV.
func Open(layout Layout, split Split) (*Reader, error) {
	table, err := classes.LoadFile(layout.ClassFile())
	if err != nil {
		return nil, err
	}
	return OpenWithClasses(layout, split, table)
}

// OpenWithClasses opens a split against an already-loaded vocabulary table,
// sparing the reload when multiple splits are read in one process.
func OpenWithClasses(layout Layout, split Split, table *classes.Table) (*Reader, error) {
	file, err := os.Open(layout.SplitCSV(split))
	if err != nil {
		return nil, fmt.Errorf("open %s split: %w", split, err)
	}

	parser := annotations.NewParser(table, layout.VideosDir())
	scanner, err := annotations.NewScanner(file, parser)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s split: %w", split, err)
	}

	return &Reader{split: split, table: table, file: file, scanner: scanner}, nil
}

// Scan advances to the next record; see annotations.Scanner.
func (r *Reader) Scan() bool {
	return r.scanner.Scan()
}

// Record returns the record produced by the last successful Scan.
func (r *Reader) Record() annotations.Record {
	return r.scanner.Record()
}

// Index returns the row index of the last successful Scan.
func (r *Reader) Index() int {
	return r.scanner.Index()
}

// Err returns the error that terminated the scan, if any.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Split returns the split this reader walks.
func (r *Reader) Split() Split {
	return r.split
}

// Classes returns the vocabulary table the reader resolves labels against.
func (r *Reader) Classes() *classes.Table {
	return r.table
}

// Close releases the underlying CSV file.
func (r *Reader) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
