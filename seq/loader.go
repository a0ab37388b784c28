package seq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads a process-definition program from r, one instruction per
// line. Blank lines and lines beginning with '#' are skipped; other lines are
// returned verbatim.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, 16)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program lines: %w", err)
	}

	return lines, nil
}

// LoadFile reads a process-definition program from the file at path.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program file: %w", err)
	}
	defer file.Close()

	return ReadLines(file)
}

// DefaultRawLines returns the builtin fallback program used when no program
// file is available: initialize all stations, run one shelf/weigh cycle, and
// re-initialize before finishing.
func DefaultRawLines() []string {
	return []string{
		"slider_init cobotta_init weighing_init plc_init",
		"slider_shelf_1 plc_buzz",
		"weighing_open slider_weight_pos cobotta_test",
		"slider_init cobotta_init weighing_init plc_init",
		string(Finished),
	}
}

// Prepare compiles raw program lines into a Sequence ready for execution.
//
// The returned Sequence is always usable: on a compile failure Prepare
// returns the minimal safe sequence (a single Finished step) together with
// the compile error, so the caller can report the failure and still construct
// a controller. On success the Finished terminal marker is appended when the
// program does not already end with it.
func Prepare(rawLines []string) (Sequence, error) {
	steps, err := Compile(rawLines)
	if err != nil {
		return NewSequence(), fmt.Errorf("sequence compile failed: %w", err)
	}

	return NewSequence(steps...), nil
}
