package constants

import "time"

// Default requeue intervals, overridable through controller flags.
const (
	// RequeueSteady re-checks a converged object for drift.
	RequeueSteady = 30 * time.Second
	// RequeueRetry follows a retryable, configuration or unexpected failure.
	RequeueRetry = 20 * time.Second
	// RequeueRemoteError follows an operation the Seq server rejected.
	RequeueRemoteError = 10 * time.Second

	// ConnectionTTL bounds how long a verified connection is reused.
	ConnectionTTL = 1 * time.Minute
	// ConnectionResolveTimeout bounds a shared connection resolution, which outlives
	// the cancellation of any single caller.
	ConnectionResolveTimeout = 1 * time.Minute
)
