package controllers

import (
	"context"
	"errors"
	"slices"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/commands"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// RewriteController handles the root command: rewrite every input and optionally merge the outputs.
type RewriteController struct {
	command commands.Rewrite
}

// NewRewriteController creates a new RewriteController.
func NewRewriteController(command commands.Rewrite) *RewriteController {
	return &RewriteController{command: command}
}

// GetBind returns the Cobra command metadata for the rewrite controller.
func (it *RewriteController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "assemblyrewriter",
		Short: "Rewrites assemblies and namespaces",
		Long: `Rewrites the internal namespaces of one or more compiled assemblies and,
optionally, merges the rewritten outputs into a single internalized assembly.

Each input path must have a corresponding output path: the first -i is
rewritten to the first -o, the second -i to the second -o, and so on.
With --merge all outputs are merged into the first output path.`,
	}
}

// Execute parses the flags into RewriteOptions and runs the rewrite command.
func (it *RewriteController) Execute(cmd *cobra.Command, args []string) error {
	if cmd.Flags().NFlag() == 0 && len(args) == 0 {
		_ = cmd.Help()
		return entities.NewConfigurationError(entities.ErrNoArguments, "nothing to do")
	}

	configPath, _ := cmd.Flags().GetString("config")
	inputs, _ := cmd.Flags().GetStringArray("in")
	outputs, _ := cmd.Flags().GetStringArray("out")
	merge, _ := cmd.Flags().GetBool("merge")
	keyFile, _ := cmd.Flags().GetString("keyFile")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jobs, _ := cmd.Flags().GetInt("jobs")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if jobs < 1 {
		return entities.NewConfigurationError(entities.ErrInvalidFlags, "--jobs must be at least 1, got %d", jobs)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return it.command.Execute(ctx, settings, commands.RewriteOptions{
		Inputs:  inputs,
		Outputs: outputs,
		Merge:   merge,
		KeyFile: keyFile,
		Verbose: verbose,
		DryRun:  dryRun,
		Jobs:    jobs,
	})
}

// AddFlags adds the rewrite flags to the given Cobra command.
func (it *RewriteController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("in", "i", nil,
		"input `path` for assembly to rewrite. Use multiple flags for multiple input paths")
	cmd.Flags().StringArrayP("out", "o", nil,
		"output `path` for rewritten assembly. Use multiple flags for multiple output paths")
	cmd.Flags().BoolP("merge", "m", false,
		"merge all output dlls to a single dll using the first output path as target")
	cmd.Flags().StringP("keyFile", "k", "", "resign merged dll with this keyFile")
	cmd.Flags().BoolP("verbose", "v", false, "verbose output")
	cmd.Flags().Bool("dry-run", false, "Show what would be done without rewriting or merging")
	cmd.Flags().IntP("jobs", "j", 1, "Number of assemblies rewritten at once")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to settings file (default: auto-detect)")
}

// FlagError turns a flag parsing failure into a configuration error.
func FlagError(_ *cobra.Command, err error) error {
	return entities.NewConfigurationError(
		entities.ErrInvalidFlags, "%v\nTry '--help' for more information.", err,
	)
}

// NormalizeArgs maps the "-?" help alias onto "--help" when it stands in flag
// position. A "-?" that is the value of a flag, or follows "--", is kept.
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	expectsValue := false
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(normalized, args[i:]...)
		case expectsValue:
			expectsValue = false
		case arg == "-?":
			arg = "--help"
		default:
			expectsValue = takesValue(arg)
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

// valueFlags lists the flags whose value may be given as the next argument.
var valueFlags = []string{ //nolint:gochecknoglobals // fixed flag table
	"-i", "--in", "-o", "--out", "-k", "--keyFile", "-j", "--jobs", "-c", "--config",
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(arg string) bool {
	return slices.Contains(valueFlags, arg)
}

// DescribeError renders a failed run for the error log.
func DescribeError(err error) string {
	if errors.Is(err, entities.ErrNoArguments) {
		return "no arguments supplied"
	}
	return entities.OutcomeFor(err).String() + ": " + err.Error()
}
