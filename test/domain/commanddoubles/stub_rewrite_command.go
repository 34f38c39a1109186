//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/commands"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// StubRewriteCommand is a stub implementation of commands.Rewrite.
type StubRewriteCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.RewriteOptions
}

var _ commands.Rewrite = (*StubRewriteCommand)(nil)

func (s *StubRewriteCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.RewriteOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
