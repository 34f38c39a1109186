package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/assemblyrewriter/internal/infrastructure/repositories"
)

// Rewrite is the interface for the rewrite command (the root command).
type Rewrite interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RewriteOptions) error
}

// RewriteOptions holds the fully parsed options of a single run.
type RewriteOptions struct {
	Inputs  []string
	Outputs []string
	Merge   bool
	KeyFile string
	Verbose bool
	DryRun  bool
	Jobs    int // rewrites running at once; 0 or 1 is sequential fail-fast
}

// stage names the step of the run, used to attribute log lines.
type stage string

const (
	stageValidating       stage = "validating"
	stageRewriting        stage = "rewriting"
	stageMergeConfiguring stage = "merge-configuring"
	stageMerging          stage = "merging"
	stageDone             stage = "done"
)

// RewriteCommand orchestrates a run:
// validate path pairs -> rewrite every pair -> (build merge request -> merge).
// Each stage runs at most once and any failure ends the run.
type RewriteCommand struct {
	rewriterRegistry *infraRepos.RewriterRegistry
	mergerRegistry   *infraRepos.MergerRegistry
}

// NewRewriteCommand creates a new RewriteCommand with the given registries.
func NewRewriteCommand(
	rewriterRegistry *infraRepos.RewriterRegistry,
	mergerRegistry *infraRepos.MergerRegistry,
) *RewriteCommand {
	return &RewriteCommand{
		rewriterRegistry: rewriterRegistry,
		mergerRegistry:   mergerRegistry,
	}
}

// Execute runs the pipeline. The returned error is one of
// *entities.ConfigurationError, *entities.RewriteError or *entities.MergeError.
func (it *RewriteCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RewriteOptions,
) error {
	enterStage(stageValidating)

	pairs, err := entities.NewPathPairs(opts.Inputs, opts.Outputs)
	if err != nil {
		return err
	}

	rewriter, err := it.rewriterRegistry.Get(settings.Rewriter)
	if err != nil {
		return err
	}

	var merger repositories.MergerRepository
	if opts.Merge {
		merger, err = it.mergerRegistry.Get(settings.Merger)
		if err != nil {
			return err
		}
	}

	if opts.DryRun {
		return planRun(pairs, opts)
	}

	enterStage(stageRewriting)
	if rewriteErr := rewriteAll(ctx, rewriter, pairs, opts); rewriteErr != nil {
		return rewriteErr
	}
	logger.Infof("Rewrote %d assemblies", len(pairs))

	if !opts.Merge {
		enterStage(stageDone)
		return nil
	}

	enterStage(stageMergeConfiguring)
	request, err := buildMergeRequest(pairs, opts.KeyFile)
	if err != nil {
		return err
	}

	enterStage(stageMerging)
	logger.Infof("Merging %d assemblies into %s", len(request.MemberPaths), request.TargetPath)
	if mergeErr := merger.Merge(ctx, *request); mergeErr != nil {
		return &entities.MergeError{Target: request.TargetPath, Err: mergeErr}
	}
	logger.Infof("Merged assembly written to %s", request.TargetPath)

	enterStage(stageDone)
	return nil
}

// rewriteAll dispatches to the sequential or the parallel rewrite loop.
func rewriteAll(
	ctx context.Context,
	rewriter repositories.RewriterRepository,
	pairs []entities.PathPair,
	opts RewriteOptions,
) error {
	if opts.Jobs <= 1 {
		return rewriteSequentially(ctx, rewriter, pairs, opts.Verbose)
	}
	return rewriteInParallel(ctx, rewriter, pairs, opts.Verbose, opts.Jobs)
}

// rewriteSequentially stops at the first failing pair; later pairs are never attempted.
func rewriteSequentially(
	ctx context.Context,
	rewriter repositories.RewriterRepository,
	pairs []entities.PathPair,
	verbose bool,
) error {
	for i, pair := range pairs {
		logger.Infof("Rewriting [%d/%d] %s", i+1, len(pairs), pair)
		if err := rewriter.Rewrite(ctx, pair, verbose); err != nil {
			return &entities.RewriteError{Index: i, Pair: pair, Err: err}
		}
	}
	return nil
}

// rewriteInParallel runs up to jobs rewrites at once. The first failure cancels
// the run: pairs not yet started are skipped and running ones are stopped.
// A pair that fails after the run was canceled is interrupted, and its error
// (often "signal: killed" from the external tool) is not the cause.
func rewriteInParallel(
	ctx context.Context,
	rewriter repositories.RewriterRepository,
	pairs []entities.PathPair,
	verbose bool,
	jobs int,
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	failures := make([]error, len(pairs))
	interrupted := make([]bool, len(pairs))
	for i, pair := range pairs {
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil // a peer already failed
			}
			logger.Infof("Rewriting [%d/%d] %s", i+1, len(pairs), pair)
			if err := rewriter.Rewrite(groupCtx, pair, verbose); err != nil {
				failures[i] = err
				interrupted[i] = groupCtx.Err() != nil
				return err
			}
			return nil
		})
	}
	_ = group.Wait() // failures are read per index below

	return firstFailure(pairs, failures, interrupted)
}

// firstFailure picks the lowest-indexed failure that was not interrupted by the
// cancellation of the run. Only when every failure was interrupted, as happens
// when the caller cancels, the lowest-indexed interrupted one is reported.
func firstFailure(pairs []entities.PathPair, failures []error, interrupted []bool) error {
	fallback := -1
	for i, failure := range failures {
		if failure == nil {
			continue
		}
		if interrupted[i] {
			if fallback < 0 {
				fallback = i
			}
			continue
		}
		return &entities.RewriteError{Index: i, Pair: pairs[i], Err: failure}
	}
	if fallback >= 0 {
		return &entities.RewriteError{Index: fallback, Pair: pairs[fallback], Err: failures[fallback]}
	}
	return nil
}

// buildMergeRequest derives the merge configuration from the rewrite outputs.
func buildMergeRequest(pairs []entities.PathPair, keyFile string) (*entities.MergeRequest, error) {
	outputs := entities.OutputsOf(pairs)
	request, err := entities.NewMergeRequest(outputs, keyFile)
	if err != nil {
		target := ""
		if len(outputs) > 0 {
			target = outputs[0]
		}
		return nil, &entities.MergeError{Target: target, Err: err}
	}
	return request, nil
}

// planRun logs what a run would do without invoking any capability.
func planRun(pairs []entities.PathPair, opts RewriteOptions) error {
	for i, pair := range pairs {
		logger.Infof("[DRY RUN] Would rewrite [%d/%d] %s", i+1, len(pairs), pair)
	}
	if !opts.Merge {
		return nil
	}

	request, err := buildMergeRequest(pairs, opts.KeyFile)
	if err != nil {
		return err
	}
	logger.WithFields(logger.Fields{
		"members":            request.MemberPaths,
		"search_directories": request.SearchDirectories,
		"internalize":        request.Internalize,
		"closed":             request.ClosedWorld,
		"signed":             request.Signed(),
	}).Infof("[DRY RUN] Would merge into %s", request.TargetPath)
	return nil
}

func enterStage(s stage) {
	logger.WithField("stage", s).Debug("Entering stage")
}
