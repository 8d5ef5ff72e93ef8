package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/advent2023/internal/app"
	"github.com/specialistvlad/advent2023/internal/cli"
	"github.com/stretchr/testify/require"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_SinglePuzzle(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeInput(t, "day07.txt", sample)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-day", "7", "-part", "2", "-log-level", "error", path})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Result: 5905\n", out.String(), "stdout should carry only the answer")
}

func TestRun_ManifestMismatchFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := writeInput(t, "day07.txt", sample)
	manifest := writeInput(t, "puzzles.hcl", `
		puzzle "camel" {
			day      = 7
			part     = 1
			input    = "`+input+`"
			expected = 1
		}
	`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-m", manifest})

	// --- Assert ---
	require.ErrorIs(t, err, app.ErrPuzzlesFailed)
	require.Contains(t, out.String(), "MISMATCH want 1")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the usage output")
	require.Empty(t, out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingInputFile(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-day", "1", filepath.Join(t.TempDir(), "missing.txt")})

	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, out.String())
}
