package controllers

import (
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewRewriteController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
// The rewrite controller is the root command and is not part of the slice.
func NewControllers(
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkController,
	}
}
