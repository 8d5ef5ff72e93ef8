package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/fsutil"
)

const (
	maxDay  = 25
	maxPart = 2
)

// decoder reads the puzzles declared in a single manifest file.
type decoder func(ctx context.Context, path string) ([]*Puzzle, error)

// Loader reads manifests of every supported format.
type Loader struct {
	decoders map[string]decoder
}

// NewLoader creates a loader for .hcl, .yaml and .yml manifests.
func NewLoader() *Loader {
	return &Loader{
		decoders: map[string]decoder{
			".hcl":  decodeHCL,
			".yaml": decodeYAML,
			".yml":  decodeYAML,
		},
	}
}

// Load is a shorthand for NewLoader().Load.
func Load(ctx context.Context, paths ...string) (*Manifest, error) {
	return NewLoader().Load(ctx, paths...)
}

// Load discovers manifest files under paths, decodes them and validates the
// merged result. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := l.findAllManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	m := &Manifest{}
	for _, file := range files {
		decode := l.decoders[filepath.Ext(file)]
		puzzles, err := decode(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, p := range puzzles {
			p.Source = file
			if p.Input != "" && !filepath.IsAbs(p.Input) {
				p.Input = filepath.Join(filepath.Dir(file), p.Input)
			}
		}
		m.Puzzles = append(m.Puzzles, puzzles...)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	logger.Debug("Manifest loading complete.", "files", len(files), "puzzles", len(m.Puzzles))
	return m, nil
}

func (l *Loader) extensions() []string {
	exts := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		exts = append(exts, ext)
	}
	return exts
}

// findAllManifestFiles walks all given paths and returns a flat list of the
// manifest files found, without duplicates.
func (l *Loader) findAllManifestFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, l.extensions()...)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				if _, ok := l.decoders[filepath.Ext(f)]; ok {
					add(f)
				}
			}
		} else if _, ok := l.decoders[filepath.Ext(path)]; ok {
			add(path)
		}
	}
	return allFiles, nil
}

func (m *Manifest) validate() error {
	if len(m.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzles found", ErrInvalidManifest)
	}
	byName := make(map[string]*Puzzle, len(m.Puzzles))
	for _, p := range m.Puzzles {
		if p.Name == "" {
			return fmt.Errorf("%w: %s: puzzle without a name", ErrInvalidManifest, p.Source)
		}
		if prev, dup := byName[p.Name]; dup {
			return fmt.Errorf("%w: puzzle %q declared in both %s and %s", ErrInvalidManifest, p.Name, prev.Source, p.Source)
		}
		byName[p.Name] = p
		if p.Day < 1 || p.Day > maxDay {
			return fmt.Errorf("%w: puzzle %q: day %d out of range 1..%d", ErrInvalidManifest, p.Name, p.Day, maxDay)
		}
		if p.Part < 1 || p.Part > maxPart {
			return fmt.Errorf("%w: puzzle %q: part %d out of range 1..%d", ErrInvalidManifest, p.Name, p.Part, maxPart)
		}
		if p.Input == "" {
			return fmt.Errorf("%w: puzzle %q: input is required", ErrInvalidManifest, p.Name)
		}
	}
	return nil
}
