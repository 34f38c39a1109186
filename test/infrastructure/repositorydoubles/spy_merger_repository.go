//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
)

// SpyMergerRepository implements repositories.MergerRepository as a configurable spy.
type SpyMergerRepository struct {
	// --- identity ---
	MergerName     string
	ExecutablePath string

	// --- Merge ---
	MergeErr   error
	MergeCalls []entities.MergeRequest
}

var _ repositories.MergerRepository = (*SpyMergerRepository)(nil)

func (s *SpyMergerRepository) Name() string { return s.MergerName }

func (s *SpyMergerRepository) Executable() string { return s.ExecutablePath }

func (s *SpyMergerRepository) Merge(_ context.Context, request entities.MergeRequest) error {
	s.MergeCalls = append(s.MergeCalls, request)
	return s.MergeErr
}

// DummyMergerRepository is a no-op implementation of repositories.MergerRepository.
type DummyMergerRepository struct{}

var _ repositories.MergerRepository = (*DummyMergerRepository)(nil)

func (d *DummyMergerRepository) Name() string { return "dummy" }

func (d *DummyMergerRepository) Executable() string { return "" }

func (d *DummyMergerRepository) Merge(_ context.Context, _ entities.MergeRequest) error {
	return nil
}
