//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/commands"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(_ context.Context, settings *entities.Settings) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteErr
}
