package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldsPerRecord is the exact token count of one vertex line: x1 y1 x2 y2.
const fieldsPerRecord = 4

// Load reads vertex records from r, one per line, four whitespace-separated
// real numbers each. Blank lines are skipped. IDs are assigned 1..n in input
// order, deterministically.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the 1-based line number) when a
//     non-blank line does not parse as exactly four numbers;
//   - ErrEmptyInstance when no record was read;
//   - any underlying read error, verbatim.
//
// Complexity: O(total input size).
func Load(r io.Reader) (Instance, error) {
	var (
		vertices []Vertex
		line     int
		sc       = bufio.NewScanner(r)
	)

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		v, err := parseRecord(text)
		if err != nil {
			return Instance{}, fmt.Errorf("line %d: %w", line, err)
		}
		v.ID = len(vertices) + 1
		vertices = append(vertices, v)
	}
	if err := sc.Err(); err != nil {
		return Instance{}, err
	}
	if len(vertices) == 0 {
		return Instance{}, ErrEmptyInstance
	}

	return Instance{vertices: vertices}, nil
}

// LoadFile opens path and delegates to Load. A missing file is reported as
// ErrEmptyInstance wrapped with the path, matching the empty-input category.
func LoadFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("%q: %w", path, ErrEmptyInstance)
	}
	defer f.Close()

	in, err := Load(f)
	if err != nil {
		return Instance{}, fmt.Errorf("%q: %w", path, err)
	}

	return in, nil
}

// parseRecord parses "x1 y1 x2 y2" into a Vertex with a zero ID
// (the caller assigns IDs).
func parseRecord(text string) (Vertex, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerRecord {
		return Vertex{}, fmt.Errorf("%w: want %d fields, got %d",
			ErrMalformedRecord, fieldsPerRecord, len(fields))
	}

	var (
		nums [fieldsPerRecord]float64
		err  error
	)
	for i, field := range fields {
		nums[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return Vertex{}, fmt.Errorf("%w: field %d %q", ErrMalformedRecord, i+1, field)
		}
	}

	return Vertex{
		A: Point{X: nums[0], Y: nums[1]},
		B: Point{X: nums[2], Y: nums[3]},
	}, nil
}
