package commands

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	infraRepos "github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// CheckCommand verifies that the configured rewriter and merger can be started.
type CheckCommand struct {
	rewriterRegistry *infraRepos.RewriterRegistry
	mergerRegistry   *infraRepos.MergerRegistry
}

// NewCheckCommand creates a new CheckCommand with the given registries.
func NewCheckCommand(
	rewriterRegistry *infraRepos.RewriterRegistry,
	mergerRegistry *infraRepos.MergerRegistry,
) *CheckCommand {
	return &CheckCommand{
		rewriterRegistry: rewriterRegistry,
		mergerRegistry:   mergerRegistry,
	}
}

// Execute resolves every configured executable on the PATH and reports all
// the ones that cannot be found.
func (it *CheckCommand) Execute(_ context.Context, settings *entities.Settings) error {
	rewriter, err := it.rewriterRegistry.Get(settings.Rewriter)
	if err != nil {
		return err
	}
	merger, err := it.mergerRegistry.Get(settings.Merger)
	if err != nil {
		return err
	}

	var errs []error
	for _, tool := range []struct{ name, executable string }{
		{"rewriter (" + rewriter.Name() + ")", rewriter.Executable()},
		{"merger (" + merger.Name() + ")", merger.Executable()},
	} {
		path, lookErr := exec.LookPath(tool.executable)
		if lookErr != nil {
			logger.Errorf("%s: %q not found: %v", tool.name, tool.executable, lookErr)
			errs = append(errs, fmt.Errorf("%s: %w", tool.name, lookErr))
			continue
		}
		logger.Infof("%s: %s", tool.name, path)
	}

	return errors.Join(errs...)
}
