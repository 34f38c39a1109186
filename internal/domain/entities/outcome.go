package entities

import (
	"errors"
	"fmt"
)

// Exit statuses reported by the process.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitMergeFailure = 2
)

var (
	ErrNoArguments     = errors.New("no arguments")
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrNoInputs        = errors.New("no inputs")
	ErrNoOutputs       = errors.New("no outputs")
	ErrCountMismatch   = errors.New("count mismatch")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrEmptyMerge      = errors.New("no merge members")
)

// Outcome classifies how a run ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeConfigurationError
	OutcomeRewriteFailure
	OutcomeMergeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeConfigurationError:
		return "configuration error"
	case OutcomeRewriteFailure:
		return "rewrite failure"
	case OutcomeMergeFailure:
		return "merge failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ConfigurationError reports bad or missing arguments, caught before any I/O.
type ConfigurationError struct {
	Kind error
	Msg  string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return e.Kind }

func newConfigurationError(kind error, msg string) error {
	return &ConfigurationError{Kind: kind, Msg: msg}
}

// NewConfigurationError builds a ConfigurationError of the given kind.
func NewConfigurationError(kind error, format string, args ...any) error {
	return newConfigurationError(kind, fmt.Sprintf(format, args...))
}

// RewriteError reports the failure of the rewrite capability on one pair.
type RewriteError struct {
	Index int
	Pair  PathPair
	Err   error
}

func (e *RewriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("rewrite #%d (%s) failed: %v", e.Index+1, e.Pair, e.Err)
}

func (e *RewriteError) Unwrap() error { return e.Err }

// MergeError reports the failure of the merge stage. The cause is kept verbatim.
type MergeError struct {
	Target string
	Err    error
}

func (e *MergeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("merge into %s failed: %v", e.Target, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// OutcomeFor classifies the error returned by a run.
func OutcomeFor(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}

	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return OutcomeMergeFailure
	}
	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		return OutcomeConfigurationError
	}
	return OutcomeRewriteFailure
}

// ExitCodeFor maps the error returned by a run to the process exit status.
func ExitCodeFor(err error) int {
	switch OutcomeFor(err) {
	case OutcomeSuccess:
		return ExitSuccess
	case OutcomeMergeFailure:
		return ExitMergeFailure
	case OutcomeConfigurationError, OutcomeRewriteFailure:
		return ExitFailure
	default:
		return ExitFailure
	}
}
