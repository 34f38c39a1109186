//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/assemblyrewriter/internal/domain/entities"
	"github.com/rios0rios0/assemblyrewriter/internal/domain/repositories"
)

// SpyRewriterRepository implements repositories.RewriterRepository as a configurable spy.
// It is safe for concurrent use so it can back the parallel rewrite stage.
type SpyRewriterRepository struct {
	// --- identity ---
	RewriterName   string
	ExecutablePath string

	// --- Rewrite ---
	FailOn      map[string]error // input path -> error to return
	RewriteHook func(ctx context.Context, pair entities.PathPair) error

	mu           sync.Mutex
	RewriteCalls []RewriteCall
}

// RewriteCall records a single invocation of Rewrite.
type RewriteCall struct {
	Pair    entities.PathPair
	Verbose bool
}

var _ repositories.RewriterRepository = (*SpyRewriterRepository)(nil)

func (s *SpyRewriterRepository) Name() string { return s.RewriterName }

func (s *SpyRewriterRepository) Executable() string { return s.ExecutablePath }

func (s *SpyRewriterRepository) Rewrite(ctx context.Context, pair entities.PathPair, verbose bool) error {
	s.mu.Lock()
	s.RewriteCalls = append(s.RewriteCalls, RewriteCall{Pair: pair, Verbose: verbose})
	s.mu.Unlock()

	if s.RewriteHook != nil {
		if err := s.RewriteHook(ctx, pair); err != nil {
			return err
		}
	}
	if s.FailOn != nil {
		return s.FailOn[pair.Input]
	}
	return nil
}

// Calls returns a snapshot of the recorded calls.
func (s *SpyRewriterRepository) Calls() []RewriteCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]RewriteCall, len(s.RewriteCalls))
	copy(calls, s.RewriteCalls)
	return calls
}

// RewrittenInputs returns the input paths in the order they were rewritten.
func (s *SpyRewriterRepository) RewrittenInputs() []string {
	calls := s.Calls()
	inputs := make([]string, 0, len(calls))
	for _, call := range calls {
		inputs = append(inputs, call.Pair.Input)
	}
	return inputs
}
