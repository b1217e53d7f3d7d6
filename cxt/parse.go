package cxt

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/bitset"
	"github.com/katalvlaran/galois/formal"
)

// maxLine bounds a single row; one byte per attribute.
const maxLine = 64 << 20

// lineReader numbers lines and strips trailing whitespace.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &lineReader{sc: sc}
}

// next returns the following line, or ok == false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", false, errors.Wrapf(err, "cxt: reading line %d", lr.line+1)
		}
		return "", false, nil
	}
	lr.line++

	return strings.TrimRight(lr.sc.Text(), " \t\r"), true, nil
}

// Parse reads one context in Burmeister format.
func Parse(r io.Reader) (*formal.Context, error) {
	lr := newLineReader(r)

	header, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(header) != "B" {
		return nil, failf(lr.line+boolInt(!ok), ErrHeader, `the first line must be the single letter "B"`,
			"expected %q, got %q", "B", header)
	}

	name, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, failf(lr.line+1, ErrCount, "", "unexpected end of input before the name line")
	}

	objects, err := readCount(lr, "object")
	if err != nil {
		return nil, err
	}
	attributes, err := readCount(lr, "attribute")
	if err != nil {
		return nil, err
	}

	sep, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(sep) != "" {
		return nil, failf(lr.line+boolInt(!ok), ErrSeparator, "insert an empty line after the attribute count",
			"expected blank line, got %q", sep)
	}

	objectLabels, err := readLabels(lr, objects, "object")
	if err != nil {
		return nil, err
	}
	attributeLabels, err := readLabels(lr, attributes, "attribute")
	if err != nil {
		return nil, err
	}

	rows := make([]bitset.Bitset, objects)
	for o := range rows {
		if rows[o], err = readRow(lr, attributes, objectLabels[o]); err != nil {
			return nil, err
		}
	}

	for {
		rest, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(rest) != "" {
			return nil, failf(lr.line, ErrRow, "check the object count in line 3",
				"unexpected content after %d rows: %q", objects, rest)
		}
	}

	fc, err := formal.FromRows(rows, attributes,
		formal.WithName(strings.TrimSpace(name)),
		formal.WithObjectLabels(objectLabels...),
		formal.WithAttributeLabels(attributeLabels...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "cxt: building context")
	}

	return fc, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*formal.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cxt: open %s", path)
	}
	defer f.Close()

	fc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return fc, nil
}

func readCount(lr *lineReader, what string) (int, error) {
	s, ok, err := lr.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, failf(lr.line+1, ErrCount, "", "unexpected end of input, expected the %s count", what)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil || n < 0 {
		return 0, failf(lr.line, ErrCount, "counts must be non-negative decimal integers",
			"%s count %q is not a non-negative integer", what, s)
	}

	return n, nil
}

func readLabels(lr *lineReader, n int, what string) ([]string, error) {
	labels := make([]string, n)
	for i := range labels {
		s, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, failf(lr.line+1, ErrLabels, "provide one label per line for every "+what,
				"input ended after %d of %d %s labels", i, n, what)
		}
		labels[i] = strings.TrimSpace(s)
	}

	return labels, nil
}

func readRow(lr *lineReader, attributes int, object string) (bitset.Bitset, error) {
	row := bitset.New(attributes)
	s, ok, err := lr.next()
	if err != nil {
		return row, err
	}
	if !ok {
		return row, failf(lr.line+1, ErrRow, "", "input ended before the row of object %q", object)
	}
	if len(s) != attributes {
		return row, failf(lr.line, ErrRow, "each row needs exactly one symbol per attribute",
			"row of object %q has %d symbols, want %d", object, len(s), attributes)
	}
	for a := 0; a < len(s); a++ {
		switch s[a] {
		case 'X', 'x':
			row.Set(a)
		case '.':
		default:
			return row, failf(lr.line, ErrSymbol, `use "X" for a cross and "." for an empty cell`,
				"column %d: unexpected %q", a+1, s[a])
		}
	}

	return row, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
