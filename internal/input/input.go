// Package input is the one helper every solver shares: it reads a puzzle
// input from disk and splits it into lines, blank-line separated blocks or
// integers.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoInputPath is returned when no input file path was provided.
	ErrNoInputPath = errors.New("no input file path was provided")

	// ErrMalformed marks any input a solver cannot parse. Solvers wrap it
	// with the offending line so callers can match it with errors.Is.
	ErrMalformed = errors.New("malformed input")
)

// ReadFile reads the whole file at path and returns it without trailing
// newlines.
func ReadFile(path string) (string, error) {
	if path == "" {
		return "", ErrNoInputPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Lines splits s into lines, dropping carriage returns and a trailing empty
// line.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var blocks []string
	for _, b := range strings.Split(s, "\n\n") {
		b = strings.Trim(b, "\n")
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Ints parses every whitespace separated field of s as an integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Atoi is strconv.Atoi with the error wrapped as ErrMalformed.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("invalid number %q", s)
	}
	return n, nil
}

// Malformed builds an error wrapping ErrMalformed.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
