//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	rewriterType      string
	rewriterCommand   []string
	rewriterArguments []string
	mergerType        string
	mergerCommand     []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:       testkit.NewBaseBuilder(),
		rewriterType:      "spy",
		rewriterCommand:   []string{"assembly-rewriter"},
		rewriterArguments: []string{"--in", entities.InputPlaceholder, "--out", entities.OutputPlaceholder},
		mergerType:        "spy",
		mergerCommand:     []string{"ilrepack"},
	}
}

// WithRewriterType sets the rewriter type.
func (b *SettingsBuilder) WithRewriterType(rewriterType string) *SettingsBuilder {
	b.rewriterType = rewriterType
	return b
}

// WithRewriterCommand sets the rewriter command line prefix.
func (b *SettingsBuilder) WithRewriterCommand(command ...string) *SettingsBuilder {
	b.rewriterCommand = command
	return b
}

// WithRewriterArguments sets the templated rewriter arguments.
func (b *SettingsBuilder) WithRewriterArguments(arguments ...string) *SettingsBuilder {
	b.rewriterArguments = arguments
	return b
}

// WithMergerType sets the merger type.
func (b *SettingsBuilder) WithMergerType(mergerType string) *SettingsBuilder {
	b.mergerType = mergerType
	return b
}

// WithMergerCommand sets the merger command line prefix.
func (b *SettingsBuilder) WithMergerCommand(command ...string) *SettingsBuilder {
	b.mergerCommand = command
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Rewriter: entities.ToolSettings{
			Type:      b.rewriterType,
			Command:   slices.Clone(b.rewriterCommand),
			Arguments: slices.Clone(b.rewriterArguments),
		},
		Merger: entities.ToolSettings{
			Type:    b.mergerType,
			Command: slices.Clone(b.mergerCommand),
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewSettingsBuilder()
	b.rewriterType = fresh.rewriterType
	b.rewriterCommand = fresh.rewriterCommand
	b.rewriterArguments = fresh.rewriterArguments
	b.mergerType = fresh.mergerType
	b.mergerCommand = fresh.mergerCommand
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:       b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rewriterType:      b.rewriterType,
		rewriterCommand:   slices.Clone(b.rewriterCommand),
		rewriterArguments: slices.Clone(b.rewriterArguments),
		mergerType:        b.mergerType,
		mergerCommand:     slices.Clone(b.mergerCommand),
	}
}
