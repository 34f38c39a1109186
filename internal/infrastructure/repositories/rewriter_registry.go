package repositories

import (
	"sort"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	domainRepos "github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
)

// RewriterFactory is a constructor function that creates a RewriterRepository from its settings.
type RewriterFactory func(settings entities.ToolSettings) domainRepos.RewriterRepository

// RewriterRegistry manages all registered rewriter implementations.
type RewriterRegistry struct {
	rewriters map[string]RewriterFactory
}

// NewRewriterRegistry creates an empty rewriter registry.
func NewRewriterRegistry() *RewriterRegistry {
	return &RewriterRegistry{
		rewriters: make(map[string]RewriterFactory),
	}
}

// Register adds a rewriter factory under the given type name (e.g. "exec").
func (r *RewriterRegistry) Register(name string, factory RewriterFactory) {
	r.rewriters[name] = factory
}

// Get returns a configured rewriter for the type named in the settings.
func (r *RewriterRegistry) Get(settings entities.ToolSettings) (domainRepos.RewriterRepository, error) {
	factory, ok := r.rewriters[settings.Type]
	if !ok {
		return nil, entities.NewConfigurationError(
			entities.ErrInvalidSettings, "unknown rewriter type: %q (known: %v)", settings.Type, r.Names(),
		)
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered rewriter types.
func (r *RewriterRegistry) Names() []string {
	names := make([]string, 0, len(r.rewriters))
	for name := range r.rewriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
