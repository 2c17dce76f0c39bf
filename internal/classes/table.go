package classes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownClassCode reports a class code absent from the vocabulary table.
var ErrUnknownClassCode = errors.New("unknown class code")

// Table is the fixed action-class vocabulary: an ordered mapping from short
// class codes (such as "c092") to display names. Enumeration order follows
// the source table, so each code has a stable zero-based index. A Table is
// immutable after construction and safe for concurrent readers.
type Table struct {
	codes   []string
	names   []string
	indexes map[string]int
}

// New builds a table from parallel code/name pairs in enumeration order.
func New(codes, names []string) (*Table, error) {
	if len(codes) != len(names) {
		return nil, fmt.Errorf("class table: %d codes but %d names", len(codes), len(names))
	}
	t := &Table{
		codes:   make([]string, len(codes)),
		names:   make([]string, len(names)),
		indexes: make(map[string]int, len(codes)),
	}
	for i, code := range codes {
		if err := checkCode(code); err != nil {
			return nil, err
		}
		if _, dup := t.indexes[code]; dup {
			return nil, fmt.Errorf("class table: duplicate code %q", code)
		}
		t.codes[i] = code
		t.names[i] = names[i]
		t.indexes[code] = i
	}
	return t, nil
}

// Load parses a class table from its external line format: one class per
// line, code followed by the display name, as shipped in
// Charades_v1_classes.txt. Blank lines are ignored.
func Load(r io.Reader) (*Table, error) {
	var codes, names []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		code, name, found := strings.Cut(text, " ")
		if !found {
			return nil, fmt.Errorf("class table line %d: expected \"code name\", got %q", line, text)
		}
		codes = append(codes, code)
		names = append(names, strings.TrimSpace(name))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read class table: %w", err)
	}
	if len(codes) == 0 {
		return nil, errors.New("class table: no entries")
	}
	return New(codes, names)
}

// LoadFile reads a class table from path.
func LoadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open class table: %w", err)
	}
	defer file.Close()
	table, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Resolve returns the zero-based index of code in the table's enumeration
// order, or ErrUnknownClassCode.
func (t *Table) Resolve(code string) (int, error) {
	idx, ok := t.indexes[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClassCode, code)
	}
	return idx, nil
}

// Name returns the display name for a class index.
func (t *Table) Name(index int) (string, error) {
	if index < 0 || index >= len(t.names) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", index, len(t.names))
	}
	return t.names[index], nil
}

// Code returns the class code for a class index.
func (t *Table) Code(index int) (string, error) {
	if index < 0 || index >= len(t.codes) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", index, len(t.codes))
	}
	return t.codes[index], nil
}

// Size returns the number of classes in the table.
func (t *Table) Size() int {
	return len(t.codes)
}

// Names returns the display names in enumeration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func checkCode(code string) error {
	if len(code) < 2 || len(code) > 4 || code[0] != 'c' {
		return fmt.Errorf("class table: malformed code %q", code)
	}
	for _, r := range code[1:] {
		if r < '0' || r > '9' {
			return fmt.Errorf("class table: malformed code %q", code)
		}
	}
	return nil
}
