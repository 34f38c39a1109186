package ilrepack

import (
	"context"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
	"github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories/external"
)

// MergerType is the settings type name of this merger.
const MergerType = "ilrepack"

// MergerRepository merges assemblies with the ILRepack command line.
type MergerRepository struct {
	settings entities.ToolSettings
}

// NewMergerRepository creates a merger backed by the configured ILRepack command.
func NewMergerRepository(settings entities.ToolSettings) repositories.MergerRepository {
	return &MergerRepository{settings: settings}
}

func (it *MergerRepository) Name() string { return MergerType }

func (it *MergerRepository) Executable() string { return it.settings.Executable() }

// Merge runs ILRepack once for the whole request.
func (it *MergerRepository) Merge(ctx context.Context, request entities.MergeRequest) error {
	_, err := external.RunTool(ctx, MergerType, it.settings.Executable(), it.BuildArguments(request))
	return err
}

// BuildArguments translates the request into ILRepack switches.
// The target kind is left unset so it follows the primary assembly, and the
// primary assembly is always the first input.
func (it *MergerRepository) BuildArguments(request entities.MergeRequest) []string {
	args := it.settings.LeadingArguments()

	if request.Internalize {
		args = append(args, "/internalize")
	}
	if request.ClosedWorld {
		args = append(args, "/closed")
	}
	if request.KeepOtherVersions {
		args = append(args, "/keepotherversionreferences")
	}
	if request.Signed() {
		args = append(args, "/keyfile:"+request.SigningKeyPath)
	}
	for _, dir := range request.SearchDirectories {
		args = append(args, "/lib:"+dir)
	}
	args = append(args, "/out:"+request.TargetPath)
	args = append(args, it.settings.Arguments...)

	args = append(args, request.TargetPath)
	for _, member := range request.MemberPaths {
		if member == request.TargetPath {
			continue
		}
		args = append(args, member)
	}
	return args
}
