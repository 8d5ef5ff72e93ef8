package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

func testRegistry() *registry.Registry {
	r := registry.New()
	r.Register(1, 1, func(_ context.Context, in string) (string, error) {
		return strings.ToUpper(in), nil
	})
	r.Register(1, 2, func(_ context.Context, in string) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return strings.Repeat(in, 2), nil
	})
	r.Register(2, 1, func(context.Context, string) (string, error) {
		return "", errBoom
	})
	r.Register(2, 2, func(context.Context, string) (string, error) {
		panic("unreachable state")
	})
	return r
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func ptr(s string) *string { return &s }

func TestRunKeepsJobOrder(t *testing.T) {
	// --- Arrange ---
	in := writeInput(t, "ab\n")
	jobs := []Job{
		{Name: "slow", Key: registry.Key{Day: 1, Part: 2}, InputPath: in, Expected: ptr("abab")},
		{Name: "fast", Key: registry.Key{Day: 1, Part: 1}, InputPath: in, Expected: ptr("nope")},
		{Name: "unchecked", Key: registry.Key{Day: 1, Part: 1}, InputPath: in},
	}

	// --- Act ---
	results, err := New(testRegistry(), 4).Run(context.Background(), jobs)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "slow", results[0].Job.Name)
	assert.Equal(t, "abab", results[0].Answer)
	assert.True(t, results[0].Verified)
	assert.False(t, results[0].Mismatch())

	assert.Equal(t, "AB", results[1].Answer)
	assert.False(t, results[1].Verified)
	assert.True(t, results[1].Mismatch())

	assert.False(t, results[2].Verified)
	assert.False(t, results[2].Mismatch())
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}

func TestRunRecordsJobErrors(t *testing.T) {
	in := writeInput(t, "x")
	jobs := []Job{
		{Name: "fails", Key: registry.Key{Day: 2, Part: 1}, InputPath: in},
		{Name: "panics", Key: registry.Key{Day: 2, Part: 2}, InputPath: in},
		{Name: "missing", Key: registry.Key{Day: 1, Part: 1}, InputPath: filepath.Join(t.TempDir(), "nope.txt")},
		{Name: "no path", Key: registry.Key{Day: 1, Part: 1}},
		{Name: "ok", Key: registry.Key{Day: 1, Part: 1}, InputPath: in},
	}

	results, err := New(testRegistry(), 2).Run(context.Background(), jobs)

	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, errBoom)
	assert.ErrorContains(t, results[1].Err, "panicked: unreachable state")
	assert.ErrorIs(t, results[2].Err, os.ErrNotExist)
	assert.ErrorIs(t, results[3].Err, input.ErrNoInputPath)
	assert.NoError(t, results[4].Err)
	assert.Equal(t, "X", results[4].Answer)
}

func TestRunFailFastCancelsPendingJobs(t *testing.T) {
	in := writeInput(t, "x")
	jobs := []Job{
		{Name: "fails", Key: registry.Key{Day: 2, Part: 1}, InputPath: in},
		{Name: "skipped", Key: registry.Key{Day: 1, Part: 1}, InputPath: in},
		{Name: "also skipped", Key: registry.Key{Day: 1, Part: 2}, InputPath: in},
	}
	e := New(testRegistry(), 1)
	e.FailFast = true

	results, err := e.Run(context.Background(), jobs)

	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, errBoom)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestRunRejectsUnknownSolvers(t *testing.T) {
	jobs := []Job{{Name: "nope", Key: registry.Key{Day: 25, Part: 2}}}

	results, err := New(testRegistry(), 1).Run(context.Background(), jobs)

	assert.ErrorIs(t, err, registry.ErrUnknownSolver)
	assert.Nil(t, results)
}

func TestRunCancelledContext(t *testing.T) {
	in := writeInput(t, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New(testRegistry(), 0).Run(ctx, []Job{{Name: "a", Key: registry.Key{Day: 1, Part: 1}, InputPath: in}})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
