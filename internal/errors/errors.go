package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Transient errors indicate temporary conditions that should be retried.
// These errors result in a requeue at the retry interval.

// ErrTransientConnection indicates a transient connection error that should be retried.
// This includes timeouts, connection refused, DNS resolution failures, and network unreachable errors.
var ErrTransientConnection = errors.New("transient connection error")

// ErrTransientKubernetesAPI indicates a transient Kubernetes API error that should be retried.
// This includes rate limiting, temporary server errors, and conflicts.
var ErrTransientKubernetesAPI = errors.New("transient Kubernetes API error")

// ErrTransientRemoteOverloaded indicates the Seq server shed the request (HTTP 429 or 5xx).
var ErrTransientRemoteOverloaded = errors.New("remote server overloaded")

// ErrInstanceUnresolved indicates the referenced SeqInstance does not exist (yet).
// Objects may be applied before the instance they target, so this is retried.
var ErrInstanceUnresolved = errors.New("instance unresolved")

// ErrConnectionUnavailable indicates that no authentication strategy produced a verified
// connection to a SeqInstance.
var ErrConnectionUnavailable = errors.New("connection unavailable")

// ErrDrift indicates the bound remote object no longer exists. The binding has been cleared
// and the next reconciliation re-enters the binding phase.
var ErrDrift = errors.New("remote object no longer exists")

// ErrRemoteAPI indicates the Seq server was reached but rejected the operation.
// Remote API errors carrying an HTTP status match this sentinel through errors.Is.
var ErrRemoteAPI = errors.New("remote API error")

// Permanent errors indicate configuration or state issues that require user intervention.
// They are still surfaced and requeued every cycle so that a corrected declaration is picked up.

// ErrPermanentConfig indicates a permanent configuration error that requires user intervention.
// This includes missing Secret fields, invalid create payloads, or incompatible settings.
var ErrPermanentConfig = errors.New("permanent configuration error")

// ErrPermanentPrerequisitesMissing indicates that required prerequisites are missing
// and reconciliation should wait for them to be created (e.g. the referenced SeqInstance,
// or a SeqSignal that has not been bound yet).
var ErrPermanentPrerequisitesMissing = errors.New("permanent prerequisites missing")

// ErrUnmappedValue indicates a declared enumeration value without a remote counterpart.
// It is a code defect and is never retried.
var ErrUnmappedValue = errors.New("unmapped enumeration value")

// Kind is the retry class of a reconciliation failure.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota
	// KindCanceled means the reconciliation context ended; nothing is recorded.
	KindCanceled
	// KindRemoteAPI means the remote server rejected the operation.
	KindRemoteAPI
	// KindRetryable covers unresolved prerequisites, unavailable connections, drift and transient failures.
	KindRetryable
	// KindConfig means the declaration must be corrected.
	KindConfig
	// KindFatal means a code defect; it is propagated without retry.
	KindFatal
	// KindUnexpected is any error that matches no other class.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindCanceled:
		return "Canceled"
	case KindRemoteAPI:
		return "RemoteAPI"
	case KindRetryable:
		return "Retryable"
	case KindConfig:
		return "Config"
	case KindFatal:
		return "Fatal"
	default:
		return "Unexpected"
	}
}

// Classify maps an error to its retry class. Order matters: a connection failure that
// aggregates config or remote API errors from individual strategies is still retryable.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrUnmappedValue):
		return KindFatal
	case errors.Is(err, ErrConnectionUnavailable),
		errors.Is(err, ErrInstanceUnresolved),
		errors.Is(err, ErrDrift),
		errors.Is(err, ErrPermanentPrerequisitesMissing),
		errors.Is(err, ErrTransientRemoteOverloaded):
		return KindRetryable
	case errors.Is(err, ErrRemoteAPI):
		return KindRemoteAPI
	case errors.Is(err, ErrPermanentConfig):
		return KindConfig
	case IsTransient(err):
		return KindRetryable
	default:
		return KindUnexpected
	}
}

// Reason returns the condition reason recorded for a failed reconciliation.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnmappedValue):
		return "MappingError"
	case errors.Is(err, ErrInstanceUnresolved):
		return "InstanceUnresolved"
	case errors.Is(err, ErrConnectionUnavailable):
		return "ConnectionUnavailable"
	case errors.Is(err, ErrDrift):
		return "Drift"
	case errors.Is(err, ErrPermanentPrerequisitesMissing):
		return "PrerequisitesMissing"
	case errors.Is(err, ErrTransientRemoteOverloaded):
		return "RemoteOverloaded"
	case errors.Is(err, ErrRemoteAPI):
		return "RemoteAPIError"
	case errors.Is(err, ErrPermanentConfig):
		return "ConfigurationError"
	case IsTransient(err):
		return "TransientError"
	default:
		return "UnexpectedError"
	}
}

// IsTransientConnection checks if an error is a transient connection error.
// This includes network timeouts, connection refused, DNS failures, and truncated responses.
// Typed errors are matched first; the message patterns cover errors that lost their type
// when wrapped with %v.
func IsTransientConnection(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTransientConnection) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	errStr := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"context deadline exceeded",
		"i/o timeout",
		"tls handshake timeout",
		"no such host",
		"network is unreachable",
		"temporary failure in name resolution",
		"dial tcp",
		"use of closed network connection",
		"broken pipe",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// IsTransientKubernetesAPI checks if an error is a transient Kubernetes API error.
func IsTransientKubernetesAPI(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTransientKubernetesAPI) ||
		errors.Is(err, context.DeadlineExceeded) ||
		apierrors.IsConflict(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsInternalError(err) {
		return true
	}

	errStr := strings.ToLower(err.Error())

	transientPatterns := []string{
		"rate limit",
		"too many requests",
		"server error",
		"service unavailable",
		"internal server error",
		"the object has been modified",
		"context deadline exceeded",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// IsTransient checks if an error is transient (should be retried).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return IsTransientConnection(err) ||
		IsTransientKubernetesAPI(err) ||
		errors.Is(err, ErrTransientRemoteOverloaded)
}

// IsPermanent checks if an error requires user intervention.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrPermanentConfig) || errors.Is(err, ErrPermanentPrerequisitesMissing)
}

// WrapTransientConnection wraps an error as a transient connection error.
// If the error is already a transient connection error, it is returned as-is.
func WrapTransientConnection(err error) error {
	if err == nil {
		return nil
	}

	if IsTransientConnection(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrTransientConnection, err)
}

// WrapTransientKubernetesAPI wraps an error as a transient Kubernetes API error.
func WrapTransientKubernetesAPI(err error) error {
	if err == nil {
		return nil
	}

	if IsTransientKubernetesAPI(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrTransientKubernetesAPI, err)
}

// WrapTransientRemoteOverloaded wraps an error returned by an overloaded Seq server.
func WrapTransientRemoteOverloaded(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTransientRemoteOverloaded) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrTransientRemoteOverloaded, err)
}

// WrapInstanceUnresolved wraps the lookup failure of a referenced SeqInstance.
func WrapInstanceUnresolved(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInstanceUnresolved, err)
}

// WrapConnectionUnavailable wraps the aggregated strategy failures of a connection resolution.
func WrapConnectionUnavailable(err error) error {
	if err == nil {
		return ErrConnectionUnavailable
	}

	return fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
}

// WrapPermanentConfig wraps an error as a permanent configuration error.
func WrapPermanentConfig(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrPermanentConfig, err)
}

// WrapPermanentPrerequisitesMissing wraps an error as a permanent prerequisites missing error.
func WrapPermanentPrerequisitesMissing(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrPermanentPrerequisitesMissing, err)
}

// IsCRDMissingError checks if an error indicates that a CRD is not installed.
// This is a permanent configuration error that requires user intervention.
func IsCRDMissingError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no matches for kind") ||
		strings.Contains(errStr, "no kind is registered for the type") ||
		strings.Contains(errStr, "could not find the requested resource")
}

// WrapKubernetesAPI classifies an error returned by the Kubernetes API: a missing CRD is a
// permanent configuration error, anything else is transient.
func WrapKubernetesAPI(err error) error {
	if err == nil {
		return nil
	}

	if IsCRDMissingError(err) {
		return WrapPermanentConfig(fmt.Errorf("CRD not installed: %w", err))
	}

	return WrapTransientKubernetesAPI(err)
}
