package repositories

import (
	extRepo "github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories/external"
	ilrepackRepo "github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories/ilrepack"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register rewriter registry with all rewriter factories
	if err := container.Provide(func() *RewriterRegistry {
		reg := NewRewriterRegistry()
		reg.Register(extRepo.RewriterType, extRepo.NewRewriterRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register merger registry with all merger factories
	if err := container.Provide(func() *MergerRegistry {
		reg := NewMergerRegistry()
		reg.Register(ilrepackRepo.MergerType, ilrepackRepo.NewMergerRepository)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
