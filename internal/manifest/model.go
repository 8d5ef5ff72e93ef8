package manifest

import (
	"errors"

	"github.com/specialistvlad/advent2023/internal/registry"
)

// ErrInvalidManifest is wrapped by every validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is the merged result of loading one or more manifest files.
type Manifest struct {
	Puzzles []*Puzzle
}

// Puzzle is one entry of a manifest.
type Puzzle struct {
	Name string
	Day  int
	Part int
	// Input is the puzzle input path, already resolved against the directory
	// of the manifest file that declared it.
	Input string
	// Expected is nil when the manifest gives no answer to check against.
	Expected *string
	// Source is the manifest file the puzzle was read from.
	Source string
}

// Key returns the registry key of the puzzle's solver.
func (p *Puzzle) Key() registry.Key {
	return registry.Key{Day: p.Day, Part: p.Part}
}

// Keys returns the solver keys of every puzzle, in manifest order.
func (m *Manifest) Keys() []registry.Key {
	keys := make([]registry.Key, len(m.Puzzles))
	for i, p := range m.Puzzles {
		keys[i] = p.Key()
	}
	return keys
}
