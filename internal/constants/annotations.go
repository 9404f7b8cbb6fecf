package constants

// Annotation keys used by the operator.
const (
	// AnnotationSkipFinalize bypasses remote deletion when set to "true" on a managed object.
	// The finalizer is removed without contacting the Seq server.
	AnnotationSkipFinalize = "seq.dc-tec.io/skip-finalize"
)

// FinalizerName is placed on every managed object so remote deletion can run first.
const FinalizerName = "seq.dc-tec.io/finalizer"
