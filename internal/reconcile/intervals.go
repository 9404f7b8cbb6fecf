package reconcile

import (
	"time"

	"github.com/dc-tec/seq-operator/internal/constants"
)

// Intervals are the requeue delays applied after a reconciliation.
// Zero fields take the defaults from the constants package.
type Intervals struct {
	// Steady re-checks a converged or pending-attach object for drift.
	Steady time.Duration
	// Retry follows retryable, configuration and unexpected failures.
	Retry time.Duration
	// RemoteError follows an operation the Seq server rejected.
	RemoteError time.Duration
}

func (i Intervals) withDefaults() Intervals {
	if i.Steady <= 0 {
		i.Steady = constants.RequeueSteady
	}
	if i.Retry <= 0 {
		i.Retry = constants.RequeueRetry
	}
	if i.RemoteError <= 0 {
		i.RemoteError = constants.RequeueRemoteError
	}
	return i
}
