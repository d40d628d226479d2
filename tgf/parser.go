package tgf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/atrgraph/probmatrix"
)

// ParseFile opens path and parses it as described by Parse.
func ParseFile(path string) (*probmatrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tgf: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("tgf: %s: %w", path, err)
	}
	return m, nil
}

// Parse reads a Trivial Graph Format stream: the first non-blank line is
// an integer vertex count N, and every subsequent non-blank line is a
// "u v p" triple with u, v in [1, N] (1-indexed) and p the survival
// probability written symmetrically into the result. Blank lines are
// skipped. No validation beyond integer/float parsing and range checks is
// performed, per the format's own minimalism.
func Parse(r io.Reader) (*probmatrix.Matrix, error) {
	scanner := bufio.NewScanner(r)

	n, err := nextInt(scanner)
	if err != nil {
		return nil, err
	}

	m := probmatrix.New(n)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}
		p, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}

		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: %q", ErrVertexOutOfRange, line)
		}

		m.AddEdge(u-1, v-1, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tgf: read: %w", err)
	}

	return m, nil
}

// nextInt scans forward to the first non-blank line and parses it as the
// vertex count.
func nextInt(scanner *bufio.Scanner) (int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: negative vertex count %q", ErrMalformedLine, line)
		}
		return n, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("tgf: read: %w", err)
	}
	return 0, ErrEmptyInput
}
