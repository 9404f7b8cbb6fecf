package constants

// Condition reasons recorded on Ready and Healthy.
const (
	// ReasonReconciling is the initial reason before the first outcome is known.
	ReasonReconciling = "Reconciling"
	// ReasonSynced means the remote object matches the declaration.
	ReasonSynced = "Synced"
	// ReasonPendingAttach means no remote object was found and Create is not permitted.
	ReasonPendingAttach = "PendingAttach"
	// ReasonDeleting means finalization is in progress.
	ReasonDeleting = "Deleting"
)

// Event reasons.
const (
	EventReasonCreated           = "Created"
	EventReasonBound             = "Bound"
	EventReasonUpdated           = "Updated"
	EventReasonDrift             = "Drift"
	EventReasonDeleted           = "Deleted"
	EventReasonLeaked            = "Leaked"
	EventReasonReconcileFailed   = "ReconcileFailed"
	EventReasonCredentialRotated = "CredentialRotated"
)
