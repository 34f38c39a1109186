package repositories

import (
	"sort"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	domainRepos "github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
)

// MergerFactory is a constructor function that creates a MergerRepository from its settings.
type MergerFactory func(settings entities.ToolSettings) domainRepos.MergerRepository

// MergerRegistry manages all registered merger implementations.
type MergerRegistry struct {
	mergers map[string]MergerFactory
}

// NewMergerRegistry creates an empty merger registry.
func NewMergerRegistry() *MergerRegistry {
	return &MergerRegistry{
		mergers: make(map[string]MergerFactory),
	}
}

// Register adds a merger factory under the given type name (e.g. "ilrepack").
func (r *MergerRegistry) Register(name string, factory MergerFactory) {
	r.mergers[name] = factory
}

// Get returns a configured merger for the type named in the settings.
func (r *MergerRegistry) Get(settings entities.ToolSettings) (domainRepos.MergerRepository, error) {
	factory, ok := r.mergers[settings.Type]
	if !ok {
		return nil, entities.NewConfigurationError(
			entities.ErrInvalidSettings, "unknown merger type: %q (known: %v)", settings.Type, r.Names(),
		)
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered merger types.
func (r *MergerRegistry) Names() []string {
	names := make([]string, 0, len(r.mergers))
	for name := range r.mergers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
