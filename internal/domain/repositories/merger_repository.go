package repositories

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// MergerRepository abstracts the assembly merge capability.
// Merge combines every member of the request into request.TargetPath,
// which is read as a member and then overwritten with the merged result.
type MergerRepository interface {
	// Name returns the merger identifier (e.g. "ilrepack").
	Name() string

	// Merge runs a single merge.
	Merge(ctx context.Context, request entities.MergeRequest) error

	// Executable returns the program backing the capability.
	Executable() string
}
