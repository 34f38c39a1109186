package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblyrewriter/internal"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/infrastructure/controllers"
)

func buildRootCommand(rewriteController *controllers.RewriteController) *cobra.Command {
	bind := rewriteController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: `  assemblyrewriter -i a.dll -o a.out.dll
  assemblyrewriter -i a.dll -i b.dll -o out/a.dll -o out/b.dll --merge -k key.snk`,
		RunE: rewriteController.Execute,
	}
	cmd.SetFlagErrorFunc(controllers.FlagError)
	rewriteController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	rewriteController := injectRewriteController()
	cobraRoot := buildRootCommand(rewriteController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	cobraRoot.SetArgs(controllers.NormalizeArgs(os.Args[1:]))
	err := cobraRoot.Execute()
	if err != nil {
		logger.Error(controllers.DescribeError(err))
	}
	os.Exit(entities.ExitCodeFor(err))
}
