package annotations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Columns the annotation CSV must carry, keyed by header name.
var requiredColumns = []string{
	"id", "subject", "scene", "quality", "relevance",
	"verified", "script", "objects", "descriptions", "actions", "length",
}

// Scanner lazily walks an annotation CSV stream, producing one record per
// row in input order. It is forward-only and not restartable; reopen the
// stream for a fresh pass. A parse failure on any row terminates the scan
// and surfaces through Err.
type Scanner struct {
	reader  *csv.Reader
	parser  *Parser
	columns map[string]int

	record  Record
	current int
	next    int
	err     error
	done    bool
}

// NewScanner reads the header row from r and prepares a scan. Missing
// expected columns fail immediately with ErrMalformedRow.
func NewScanner(r io.Reader, parser *Parser) (*Scanner, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrMalformedRow)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrMalformedRow, strings.Join(missing, ", "))
	}

	return &Scanner{
		reader:  reader,
		parser:  parser,
		columns: columns,
		current: -1,
	}, nil
}

// Scan advances to the next record. It returns false at end of input or on
// the first error; check Err after the loop.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}

	fields, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		s.done = true
		return false
	}
	if err != nil {
		s.err = fmt.Errorf("row %d: %w", s.next, err)
		return false
	}

	row := s.rowFromFields(fields)
	record, err := s.parser.Parse(row)
	if err != nil {
		s.err = fmt.Errorf("row %d (id %q): %w: raw %q", s.next, row.ID, err, strings.Join(fields, ","))
		return false
	}

	s.record = record
	s.current = s.next
	s.next++
	return true
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Index returns the zero-based row index of the last successful Scan, or -1
// before the first.
func (s *Scanner) Index() int {
	return s.current
}

// Err returns the error that terminated the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) rowFromFields(fields []string) Row {
	get := func(name string) string {
		idx := s.columns[name]
		if idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}
	return Row{
		ID:           get("id"),
		Subject:      get("subject"),
		Scene:        get("scene"),
		Quality:      get("quality"),
		Relevance:    get("relevance"),
		Verified:     get("verified"),
		Script:       get("script"),
		Objects:      get("objects"),
		Descriptions: get("descriptions"),
		Actions:      get("actions"),
		Length:       get("length"),
	}
}
