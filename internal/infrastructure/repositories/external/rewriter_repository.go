package external

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
)

// RewriterType is the settings type name of this rewriter.
const RewriterType = "exec"

const outputDirMode = 0o755

// RewriterRepository delegates the namespace rewrite to an external executable.
// The configured arguments are expanded once per pair: {input} and {output}
// are replaced by the pair's paths.
type RewriterRepository struct {
	settings entities.ToolSettings
}

// NewRewriterRepository creates a rewriter backed by the configured command.
func NewRewriterRepository(settings entities.ToolSettings) repositories.RewriterRepository {
	return &RewriterRepository{settings: settings}
}

func (it *RewriterRepository) Name() string { return RewriterType }

func (it *RewriterRepository) Executable() string { return it.settings.Executable() }

// Rewrite runs the external rewriter for one pair.
func (it *RewriterRepository) Rewrite(ctx context.Context, pair entities.PathPair, verbose bool) error {
	info, err := os.Stat(pair.Input)
	if err != nil {
		return fmt.Errorf("cannot open input assembly: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input assembly %q is not a regular file", pair.Input)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(pair.Output), outputDirMode); mkdirErr != nil {
		return fmt.Errorf("failed to create output directory: %w", mkdirErr)
	}

	_, runErr := RunTool(ctx, RewriterType, it.settings.Executable(), it.BuildArguments(pair, verbose))
	return runErr
}

// BuildArguments returns the full argument list passed to the executable.
func (it *RewriterRepository) BuildArguments(pair entities.PathPair, verbose bool) []string {
	replacer := strings.NewReplacer(
		entities.InputPlaceholder, pair.Input,
		entities.OutputPlaceholder, pair.Output,
	)

	args := it.settings.LeadingArguments()
	for _, arg := range it.settings.Arguments {
		args = append(args, replacer.Replace(arg))
	}
	if verbose {
		args = append(args, it.settings.VerboseArguments...)
	}
	return args
}
