// Package loader reads process descriptions from the line-oriented input format:
//
//	# arrival burst priority
//	0 5 2
//	1 3 1
//
// Blank lines and lines starting with '#' are skipped.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrMalformedInput  = errors.New("malformed input")
	ErrMissingResource = errors.New("input file not found")
)

const fieldsPerLine = 3

// Load opens path and parses it.
func Load(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrMissingResource, path)
		}
		return nil, fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	processes, err := Parse(f, NewIDGenerator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return processes, nil
}

// Parse reads processes from r, numbering them with ids. It fails on the first bad
// line, or when r holds no process at all.
func Parse(r io.Reader, ids *IDGenerator) ([]core.Process, error) {
	var processes []core.Process

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNumber, err)
		}
		p.ID = ids.Next()
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: input contains no valid process data", ErrMalformedInput)
	}
	return processes, nil
}

func parseLine(line string) (core.Process, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerLine {
		return core.Process{}, fmt.Errorf("expected %d values (arrival_time burst_time priority), got %d", fieldsPerLine, len(fields))
	}

	values := make([]int, fieldsPerLine)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return core.Process{}, fmt.Errorf("value %q is not an integer", field)
		}
		values[i] = v
	}

	p := core.NewProcess(0, values[0], values[1], values[2])
	if err := p.Validate(); err != nil {
		return core.Process{}, err
	}
	return p, nil
}
