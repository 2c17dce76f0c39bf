package annotations

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"charades/internal/classes"
)

// Parser converts annotation rows into records. It is a pure function of its
// inputs plus the injected class table and may be shared across goroutines.
type Parser struct {
	table     *classes.Table
	videoRoot string
}

// NewParser returns a parser resolving action codes through table and
// anchoring video paths under videoRoot.
func NewParser(table *classes.Table, videoRoot string) *Parser {
	return &Parser{table: table, videoRoot: videoRoot}
}

// Parse converts one row into a record or fails on the first malformed field.
// Rows are never partially repaired; a bad class code or numeric aborts the
// whole row.
func (p *Parser) Parse(row Row) (Record, error) {
	quality, err := parseSentinelInt(row.Quality)
	if err != nil {
		return Record{}, fmt.Errorf("quality: %w", err)
	}
	relevance, err := parseSentinelInt(row.Relevance)
	if err != nil {
		return Record{}, fmt.Errorf("relevance: %w", err)
	}
	length, err := parseLength(row.Length)
	if err != nil {
		return Record{}, err
	}
	labels, timings, err := p.parseActions(row.Actions)
	if err != nil {
		return Record{}, err
	}

	return Record{
		VideoID:   row.ID,
		VideoPath: filepath.Join(p.videoRoot, row.ID+".mp4"),
		Subject:   row.Subject,
		Scene:     row.Scene,
		Quality:   quality,
		Relevance: relevance,
		Verified:  row.Verified,
		Script:    row.Script,
		// Plain split semantics: empty cells become [""] and trailing
		// separators leave a trailing empty element. Unlike action tokens,
		// these are deliberately not filtered.
		Objects:       strings.Split(row.Objects, ";"),
		Descriptions:  strings.Split(row.Descriptions, ";"),
		Labels:        labels,
		ActionTimings: timings,
		Length:        length,
	}, nil
}

// parseActions decodes the actions cell grammar: ";"-separated tokens, each a
// class code followed by space-separated float timings. Empty tokens (from a
// trailing ";" or an empty cell) are dropped; this is the only split that
// filters.
func (p *Parser) parseActions(raw string) ([]int, [][]float64, error) {
	labels := []int{}
	timings := [][]float64{}
	for _, token := range strings.Split(raw, ";") {
		if len(token) == 0 {
			continue
		}
		parts := strings.Split(token, " ")
		index, err := p.table.Resolve(parts[0])
		if err != nil {
			return nil, nil, fmt.Errorf("action %q: %w", token, err)
		}
		timing := make([]float64, 0, len(parts)-1)
		for _, part := range parts[1:] {
			value, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q in action %q", ErrMalformedTiming, part, token)
			}
			timing = append(timing, value)
		}
		labels = append(labels, index)
		timings = append(timings, timing)
	}
	return labels, timings, nil
}

// parseSentinelInt maps an empty field to the Unset sentinel rather than
// zero; the corpus uses empty cells for "not scored".
func parseSentinelInt(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unset, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInteger, raw)
	}
	return value, nil
}

func parseLength(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unset, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: length %q is not numeric", ErrMalformedRow, raw)
	}
	return value, nil
}
