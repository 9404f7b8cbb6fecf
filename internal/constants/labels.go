package constants

// Common Kubernetes label keys used by the operator.
const (
	LabelAppName      = "app.kubernetes.io/name"
	LabelAppInstance  = "app.kubernetes.io/instance"
	LabelAppManagedBy = "app.kubernetes.io/managed-by"

	// LabelSeqInstance is set on Secrets written by the operator (API key tokens).
	LabelSeqInstance = "seq.dc-tec.io/instance"
)

// Common label values used by the operator.
const (
	LabelValueAppManagedBySeqOperator = "seq-operator"
)
