package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
)

// ErrUnknownSolver is returned when a requested key has no registered solver.
var ErrUnknownSolver = errors.New("no solver registered")

// Validate checks that every requested key has a solver. All missing keys
// are reported together.
func (r *Registry) Validate(ctx context.Context, keys ...Key) error {
	logger := ctxlog.FromContext(ctx)

	var missing []string
	seen := make(map[Key]struct{})
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := r.solvers[k]; !ok {
			missing = append(missing, k.String())
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrUnknownSolver, strings.Join(missing, "\n- "))
	}

	logger.Debug("Registry validation passed.", "requested", len(seen), "registered", len(r.solvers))
	return nil
}
