//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assemblyrewriter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should fill missing sections with the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
merger:
  command: [mono, /opt/ILRepack.exe]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultSettings().Rewriter, settings.Rewriter)
		assert.Equal(t, "ilrepack", settings.Merger.Type)
		assert.Equal(t, "mono", settings.Merger.Executable())
		assert.Equal(t, []string{"/opt/ILRepack.exe"}, settings.Merger.LeadingArguments())
	})

	t.Run("should read custom rewriter arguments", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
rewriter:
  type: exec
  command: [dotnet, rewriter.dll]
  arguments: ["-i", "{input}", "-o", "{output}"]
  verbose_arguments: ["-v"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"dotnet", "rewriter.dll"}, settings.Rewriter.Command)
		assert.Equal(t, []string{"-i", "{input}", "-o", "{output}"}, settings.Rewriter.Arguments)
		assert.Equal(t, []string{"-v"}, settings.Rewriter.VerboseArguments)
	})

	t.Run("should expand environment variables in commands", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_ILREPACK_HOME", "/opt/ilrepack")
		path := writeSettingsFile(t, `
merger:
  command: ["${TEST_ILREPACK_HOME}/ILRepack"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/opt/ilrepack/ILRepack", settings.Merger.Executable())
	})

	t.Run("should reject rewriter arguments without placeholders", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
rewriter:
  arguments: ["{input}"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "{output}")
	})

	t.Run("should accept placeholders embedded in arguments", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
rewriter:
  arguments: ["--in={input}", "--out={output}"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"--in={input}", "--out={output}"}, settings.Rewriter.Arguments)
	})

	t.Run("should drop default arguments when the type changes", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
merger:
  type: custom
  command: [my-merger]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "custom", settings.Merger.Type)
		assert.Empty(t, settings.Merger.Arguments)
	})

	t.Run("should reject an empty command", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
merger:
  type: custom
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Contains(t, err.Error(), "merger.command is required")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "rewriter: [unclosed")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Equal(t, entities.ExitFailure, entities.ExitCodeFor(err))
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should be valid", func(t *testing.T) {
		t.Parallel()

		// when
		err := entities.DefaultSettings().Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should use the exec rewriter and the ilrepack merger", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "exec", settings.Rewriter.Type)
		assert.Equal(t, "ilrepack", settings.Merger.Type)
		assert.Empty(t, settings.Merger.LeadingArguments())
	})
}
