package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileRoot decodes all top-level blocks of an HCL manifest.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is the HCL schema of a `puzzle "name" { ... }` block.
type puzzleBlock struct {
	Name     string         `hcl:"name,label"`
	Day      int            `hcl:"day"`
	Part     int            `hcl:"part"`
	Input    string         `hcl:"input"`
	Expected hcl.Expression `hcl:"expected,optional"`
}

func decodeHCL(ctx context.Context, path string) ([]*Puzzle, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrInvalidManifest, path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrInvalidManifest, path, diags)
	}

	puzzles := make([]*Puzzle, 0, len(root.Puzzles))
	for _, b := range root.Puzzles {
		p, err := translatePuzzle(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

// translatePuzzle converts the HCL-specific block into the agnostic model.
func translatePuzzle(ctx context.Context, b *puzzleBlock) (*Puzzle, error) {
	p := &Puzzle{Name: b.Name, Day: b.Day, Part: b.Part, Input: b.Input}
	if !isExprDefined(ctx, b.Expected, "expected") {
		return p, nil
	}

	val, diags := b.Expected.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: puzzle %q: %w", ErrInvalidManifest, b.Name, diags)
	}
	expected, err := expectedString(val)
	if err != nil {
		return nil, fmt.Errorf("%w: puzzle %q: expected: %w", ErrInvalidManifest, b.Name, err)
	}
	p.Expected = expected
	return p, nil
}

// expectedString accepts any primitive value; numbers and bools are
// rendered the way cty converts them to strings. Null means no answer.
func expectedString(val cty.Value) (*string, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, err
	}
	s := str.AsString()
	return &s, nil
}

// isExprDefined checks if an HCL expression was actually present in the
// source. Omitted optional attributes decode to a zero-width placeholder
// expression rather than nil.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}
