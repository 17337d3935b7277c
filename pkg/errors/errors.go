// Package errors defines the error taxonomy for the aptdown resolver.
// Sentinels distinguish run-fatal failures (command, parse, artifact,
// unresolvable) from failures that are recoverable at the dependency level
// (remote source); callers match them with errors.Is.
package errors

import "fmt"

// Common error types.
var (
	// ErrCommandFailed reports a queried subprocess exiting non-zero or
	// killed by a signal. Fatal for the run.
	ErrCommandFailed = fmt.Errorf("command failed")

	// ErrMetadataParse reports an expected line prefix or token missing
	// from tool output. Fatal for the run.
	ErrMetadataParse = fmt.Errorf("unexpected metadata format")

	// ErrEnvironment reports that the apt environment could not be read.
	ErrEnvironment = fmt.Errorf("unable to read apt environment")

	// ErrRemoteSource reports a network error, a non-2xx status or an
	// unexpected page structure while discovering remote candidates.
	// Recoverable: the aggregator falls back to local-only candidates.
	ErrRemoteSource = fmt.Errorf("remote source failed")

	// ErrPoolLinkNotFound reports a package-search page without a single
	// pool link under the configured mirror prefix.
	ErrPoolLinkNotFound = fmt.Errorf("no pool link found")

	// ErrArtifactDownload reports a failure to materialize an artifact
	// that was already selected for install. Fatal for the run.
	ErrArtifactDownload = fmt.Errorf("artifact download failed")

	// ErrUnresolvable reports a dependency no candidate satisfies.
	ErrUnresolvable = fmt.Errorf("unresolvable dependency")

	// ErrInstallNotImplemented marks the deliberately missing install
	// execution hook; the planner only emits the command line.
	ErrInstallNotImplemented = fmt.Errorf("direct installation is not implemented")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
