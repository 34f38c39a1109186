package main

import (
	"github.com/rios0rios0/assemblyrewriter/internal"
	"github.com/rios0rios0/assemblyrewriter/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectRewriteController() *controllers.RewriteController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var rewriteController *controllers.RewriteController
	if err := container.Invoke(func(rc *controllers.RewriteController) {
		rewriteController = rc
	}); err != nil {
		panic(err)
	}

	return rewriteController
}
