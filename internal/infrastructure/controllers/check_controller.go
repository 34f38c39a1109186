package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/commands"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Verify that the configured rewriter and merger are installed",
		Long: `Resolve the rewriter and merger executables named in the settings file
(or the defaults) and report where they were found.`,
	}
}

// Execute loads the settings and runs the check command.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return it.command.Execute(ctx, settings)
}
