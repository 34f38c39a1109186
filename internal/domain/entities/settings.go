package entities

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Placeholders expanded in the rewriter arguments.
const (
	InputPlaceholder  = "{input}"
	OutputPlaceholder = "{output}"
)

// Settings is the tool configuration: which external programs perform the
// rewrite and merge capabilities and how they are invoked.
type Settings struct {
	Rewriter ToolSettings `yaml:"rewriter"`
	Merger   ToolSettings `yaml:"merger"`
}

// ToolSettings describes one external capability.
type ToolSettings struct {
	Type             string   `yaml:"type"`              // "exec", "ilrepack"
	Command          []string `yaml:"command"`           // executable followed by fixed leading arguments
	Arguments        []string `yaml:"arguments"`         // per-invocation arguments (rewriter only)
	VerboseArguments []string `yaml:"verbose_arguments"` // appended when --verbose is set
}

// Executable returns the program to run.
func (t ToolSettings) Executable() string {
	if len(t.Command) == 0 {
		return ""
	}
	return t.Command[0]
}

// LeadingArguments returns the fixed arguments following the executable.
func (t ToolSettings) LeadingArguments() []string {
	if len(t.Command) < 2 { //nolint:mnd // executable + arguments
		return nil
	}
	return slices.Clone(t.Command[1:])
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Rewriter: ToolSettings{
			Type:             "exec",
			Command:          []string{"assembly-rewriter"},
			Arguments:        []string{"--in", InputPlaceholder, "--out", OutputPlaceholder},
			VerboseArguments: []string{"--verbose"},
		},
		Merger: ToolSettings{
			Type:    "ilrepack",
			Command: []string{"ilrepack"},
		},
	}
}

// NewSettings reads a settings file, fills missing sections with the defaults,
// expands environment variables and validates the result.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigurationError(ErrInvalidSettings, "failed to read settings file %q: %v", path, err)
	}

	settings := DefaultSettings()
	var parsed Settings
	if unmarshalErr := yaml.Unmarshal(data, &parsed); unmarshalErr != nil {
		return nil, NewConfigurationError(ErrInvalidSettings, "failed to parse settings file %q: %v", path, unmarshalErr)
	}
	settings.Rewriter = mergeToolSettings(settings.Rewriter, parsed.Rewriter)
	settings.Merger = mergeToolSettings(settings.Merger, parsed.Merger)

	settings.Rewriter.Command = expandAll(settings.Rewriter.Command)
	settings.Merger.Command = expandAll(settings.Merger.Command)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings loads the settings from the given path, from the first
// auto-detected settings file, or falls back to the defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No settings file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using settings file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".assemblyrewriter.yaml",
		".assemblyrewriter.yml",
		"assemblyrewriter.yaml",
		"assemblyrewriter.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// Validate checks for required settings values.
func (s *Settings) Validate() error {
	tools := []struct {
		name     string
		settings ToolSettings
	}{
		{"rewriter", s.Rewriter},
		{"merger", s.Merger},
	}
	for _, tool := range tools {
		if tool.settings.Type == "" {
			return NewConfigurationError(ErrInvalidSettings, "%s.type is required", tool.name)
		}
		if tool.settings.Executable() == "" {
			return NewConfigurationError(ErrInvalidSettings, "%s.command is required", tool.name)
		}
	}

	if s.Rewriter.Type == "exec" {
		if !referencesPlaceholder(s.Rewriter.Arguments, InputPlaceholder) ||
			!referencesPlaceholder(s.Rewriter.Arguments, OutputPlaceholder) {
			return NewConfigurationError(
				ErrInvalidSettings,
				"rewriter.arguments must reference both %s and %s",
				InputPlaceholder, OutputPlaceholder,
			)
		}
	}
	return nil
}

// referencesPlaceholder reports whether any argument contains the placeholder,
// either alone or embedded as in "--out={output}".
func referencesPlaceholder(arguments []string, placeholder string) bool {
	return slices.ContainsFunc(arguments, func(argument string) bool {
		return strings.Contains(argument, placeholder)
	})
}

// mergeToolSettings overlays the fields set in the file on top of the defaults.
// A changed type drops the default arguments, which belong to the default type.
func mergeToolSettings(base, override ToolSettings) ToolSettings {
	if override.Type != "" && override.Type != base.Type {
		base = ToolSettings{Type: override.Type}
	}
	if len(override.Command) > 0 {
		base.Command = override.Command
	}
	if override.Arguments != nil {
		base.Arguments = override.Arguments
	}
	if override.VerboseArguments != nil {
		base.VerboseArguments = override.VerboseArguments
	}
	return base
}

// expandAll expands ${VAR} references in every value.
func expandAll(values []string) []string {
	expanded := make([]string, 0, len(values))
	for _, value := range values {
		expanded = append(expanded, expandEnv(value))
	}
	return expanded
}

// expandEnv replaces ${VAR} references with the environment value, warning on unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
