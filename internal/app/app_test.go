package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/manifest"
	"github.com/specialistvlad/advent2023/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calibration = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

type echoModule struct{}

func (echoModule) Register(r *registry.Registry) {
	r.Register(1, 1, func(_ context.Context, in string) (string, error) { return in, nil })
	r.Register(1, 2, func(context.Context, string) (string, error) { return "", errors.New("kaput") })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{Day: 1, Part: 1})
	assert.Error(t, err, "single mode needs an input path")

	_, err = NewConfig(Config{Day: 26, Part: 1, InputPath: "x"})
	assert.Error(t, err)

	_, err = NewConfig(Config{Day: 1, Part: 3, InputPath: "x"})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{ManifestPaths: []string{"m.hcl"}})
	require.NoError(t, err)
	assert.Equal(t, ModeManifest, cfg.Mode())

	cfg, err = NewConfig(Config{List: true, ManifestPaths: []string{"m.hcl"}})
	require.NoError(t, err)
	assert.Equal(t, ModeList, cfg.Mode())
}

func TestRunSingle(t *testing.T) {
	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "day01.txt", calibration+"\n")
	a, out, logs := SetupAppTest(t, &Config{Day: 1, Part: 1, InputPath: path})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Result: 142\n", out.String())
	assert.Contains(t, logs.String(), "Solving puzzle")
}

func TestRunSingleMalformedInput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.txt", "no digits here")
	a, out, _ := SetupAppTest(t, &Config{Day: 1, Part: 1, InputPath: path})

	err := a.Run(context.Background())

	assert.ErrorIs(t, err, input.ErrMalformed)
	assert.Empty(t, out.String())
}

func TestRunSingleUnknownSolver(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.txt", "x")
	a, _, _ := SetupAppTest(t, &Config{Day: 2, Part: 1, InputPath: path}, echoModule{})

	err := a.Run(context.Background())

	assert.ErrorIs(t, err, registry.ErrUnknownSolver)
}

func TestRunList(t *testing.T) {
	a, out, _ := SetupAppTest(t, &Config{List: true}, echoModule{})

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, "day01/part1\nday01/part2\n", out.String())
}

func TestRunManifest(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "day01.txt", calibration)
	path := writeFile(t, dir, "puzzles.hcl", `
		puzzle "trebuchet" {
			day      = 1
			part     = 1
			input    = "day01.txt"
			expected = 142
		}
		puzzle "unchecked" {
			day   = 1
			part  = 1
			input = "day01.txt"
		}
	`)
	a, out, _ := SetupAppTest(t, &Config{ManifestPaths: []string{path}, WorkerCount: 2})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^trebuchet\s+day01/part1\s+142\s+OK$`, out.String())
	assert.Regexp(t, `(?m)^unchecked\s+day01/part1\s+142\s+UNCHECKED$`, out.String())
}

func TestRunManifestReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "in.txt", "abc")
	path := writeFile(t, dir, "puzzles.yaml", `
puzzles:
  - {name: wrong, day: 1, part: 1, input: in.txt, expected: xyz}
  - {name: broken, day: 1, part: 2, input: in.txt}
  - {name: right, day: 1, part: 1, input: in.txt, expected: abc}
`)
	a, out, _ := SetupAppTest(t, &Config{ManifestPaths: []string{path}}, echoModule{})

	err := a.Run(context.Background())

	assert.ErrorIs(t, err, ErrPuzzlesFailed)
	assert.ErrorContains(t, err, "1 failed, 1 mismatched of 3")
	assert.Regexp(t, `(?m)^wrong\s+day01/part1\s+abc\s+MISMATCH want xyz$`, out.String())
	assert.Regexp(t, `(?m)^broken\s+day01/part2\s+ERROR kaput$`, out.String())
	assert.Regexp(t, `(?m)^right\s+day01/part1\s+abc\s+OK$`, out.String())
}

func TestRunManifestInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "puzzles.hcl", `puzzle "a" {`)
	a, _, _ := SetupAppTest(t, &Config{ManifestPaths: []string{path}})

	err := a.Run(context.Background())

	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
}
