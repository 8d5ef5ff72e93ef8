package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}

type yamlPuzzle struct {
	Name     string     `yaml:"name"`
	Day      int        `yaml:"day"`
	Part     int        `yaml:"part"`
	Input    string     `yaml:"input"`
	// Expected has Kind zero when the key is omitted.
	Expected yaml.Node `yaml:"expected"`
}

func decodeYAML(ctx context.Context, path string) ([]*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var root yamlFile
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML file %s: %w", ErrInvalidManifest, path, err)
	}
	ctxlog.FromContext(ctx).Debug("Decoded YAML manifest.", "path", path, "puzzles", len(root.Puzzles))

	puzzles := make([]*Puzzle, 0, len(root.Puzzles))
	for _, y := range root.Puzzles {
		p := &Puzzle{Name: y.Name, Day: y.Day, Part: y.Part, Input: y.Input}
		if y.Expected.Kind != 0 && y.Expected.Tag != "!!null" {
			if y.Expected.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %s: puzzle %q: expected must be a scalar (line %d)",
					ErrInvalidManifest, path, y.Name, y.Expected.Line)
			}
			s := y.Expected.Value
			p.Expected = &s
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}
