package commands

// FirstFailure exports firstFailure for testing.
var FirstFailure = firstFailure //nolint:gochecknoglobals // test export
