package entities

import (
	"fmt"
	"path/filepath"
)

// MergeRequest describes a single closed-world merge of the rewritten assemblies.
type MergeRequest struct {
	TargetPath        string   // first output path; both a member and the merge destination
	MemberPaths       []string // every output path, in command-line order
	SearchDirectories []string // absolute directories of the members, deduplicated
	Internalize       bool
	ClosedWorld       bool
	KeepOtherVersions bool
	SigningKeyPath    string // empty leaves signing to the merger default
}

// NewMergeRequest builds the merge configuration from the rewrite outputs.
// The merged assembly exposes only the primary assembly's public surface and
// keeps only the dependency closure reachable from it.
func NewMergeRequest(outputs []string, signingKeyPath string) (*MergeRequest, error) {
	if len(outputs) == 0 {
		return nil, newConfigurationError(ErrEmptyMerge, "merge requires at least one output path")
	}

	searchDirs, err := searchDirectories(outputs)
	if err != nil {
		return nil, err
	}

	members := make([]string, len(outputs))
	copy(members, outputs)

	return &MergeRequest{
		TargetPath:        outputs[0],
		MemberPaths:       members,
		SearchDirectories: searchDirs,
		Internalize:       true,
		ClosedWorld:       true,
		KeepOtherVersions: false,
		SigningKeyPath:    signingKeyPath,
	}, nil
}

// Signed reports whether the merged assembly is re-signed with a key file.
func (r *MergeRequest) Signed() bool {
	return r.SigningKeyPath != ""
}

// searchDirectories resolves the containing directory of every path and keeps
// the first occurrence of each.
func searchDirectories(paths []string) ([]string, error) {
	seen := make(map[string]struct{}, len(paths))
	dirs := make([]string, 0, len(paths))
	for _, path := range paths {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve directory of %q: %w", path, err)
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}
