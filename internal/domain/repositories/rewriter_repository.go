package repositories

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// RewriterRepository abstracts the namespace rewrite capability.
// Rewrite transforms the assembly at pair.Input and writes the result to
// pair.Output, overwriting any existing file. It must never modify the input,
// so running it again for the same pair is safe.
type RewriterRepository interface {
	// Name returns the rewriter identifier (e.g. "exec").
	Name() string

	// Rewrite rewrites a single assembly.
	Rewrite(ctx context.Context, pair entities.PathPair, verbose bool) error

	// Executable returns the program backing the capability.
	Executable() string
}
