//go:build unit

package ilrepack_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories/ilrepack"
)

func newMerger(command ...string) *ilrepack.MergerRepository {
	return ilrepack.NewMergerRepository(entities.ToolSettings{
		Type:    ilrepack.MergerType,
		Command: command,
	}).(*ilrepack.MergerRepository)
}

func TestMergerRepositoryBuildArguments(t *testing.T) {
	t.Parallel()

	t.Run("should translate the request into ILRepack switches", func(t *testing.T) {
		t.Parallel()

		// given
		merger := newMerger("mono", "/opt/ILRepack.exe")
		request := entities.MergeRequest{
			TargetPath:        "out/a.dll",
			MemberPaths:       []string{"out/a.dll", "out/b.dll"},
			SearchDirectories: []string{"/work/out"},
			Internalize:       true,
			ClosedWorld:       true,
			SigningKeyPath:    "key.snk",
		}

		// when
		args := merger.BuildArguments(request)

		// then
		assert.Equal(t, []string{
			"/opt/ILRepack.exe",
			"/internalize",
			"/closed",
			"/keyfile:key.snk",
			"/lib:/work/out",
			"/out:out/a.dll",
			"out/a.dll",
			"out/b.dll",
		}, args)
		assert.Equal(t, "mono", merger.Executable())
	})

	t.Run("should omit the key file when unsigned", func(t *testing.T) {
		t.Parallel()

		// given
		merger := newMerger("ilrepack")
		request, err := entities.NewMergeRequest([]string{"a.dll"}, "")
		require.NoError(t, err)

		// when
		args := merger.BuildArguments(*request)

		// then
		for _, arg := range args {
			assert.NotContains(t, arg, "/keyfile")
			assert.NotEqual(t, "/keepotherversionreferences", arg)
		}
		assert.Contains(t, args, "/internalize")
		assert.Contains(t, args, "/closed")
	})

	t.Run("should pass one lib switch per search directory", func(t *testing.T) {
		t.Parallel()

		// given
		merger := newMerger("ilrepack")
		request := entities.MergeRequest{
			TargetPath:        "x/a.dll",
			MemberPaths:       []string{"x/a.dll", "y/b.dll"},
			SearchDirectories: []string{"/abs/x", "/abs/y"},
		}

		// when
		args := merger.BuildArguments(request)

		// then
		assert.Contains(t, args, "/lib:/abs/x")
		assert.Contains(t, args, "/lib:/abs/y")
	})

	t.Run("should keep other version references only when requested", func(t *testing.T) {
		t.Parallel()

		// given
		merger := newMerger("ilrepack")
		request := entities.MergeRequest{
			TargetPath:        "a.dll",
			MemberPaths:       []string{"a.dll"},
			KeepOtherVersions: true,
		}

		// when
		args := merger.BuildArguments(request)

		// then
		assert.Contains(t, args, "/keepotherversionreferences")
	})
}

func TestMergerRepositoryMerge(t *testing.T) {
	t.Parallel()

	t.Run("should run the configured command", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		record := filepath.Join(dir, "args.txt")
		merger := newMerger("sh", "-c", `echo "$@" > "`+record+`"`, "ilrepack")
		request := entities.MergeRequest{
			TargetPath:  "a.dll",
			MemberPaths: []string{"a.dll", "b.dll"},
			Internalize: true,
		}

		// when
		err := merger.Merge(context.Background(), request)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(record)
		require.NoError(t, readErr)
		assert.Equal(t, "/internalize /out:a.dll a.dll b.dll\n", string(content))
	})

	t.Run("should surface the merger output verbatim on failure", func(t *testing.T) {
		t.Parallel()

		// given
		merger := newMerger("sh", "-c", `echo "ERROR: Duplicate type Foo.Bar" >&2; exit 1`, "ilrepack")
		request := entities.MergeRequest{TargetPath: "a.dll", MemberPaths: []string{"a.dll"}}

		// when
		err := merger.Merge(context.Background(), request)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ERROR: Duplicate type Foo.Bar")
	})
}
