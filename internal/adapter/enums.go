package adapter

import (
	"fmt"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
)

// enumMap translates a declared enumeration to the values of the Seq API and back.
// Both directions are total: a value outside the table is a mapping defect.
type enumMap[K ~string] struct {
	name       string
	toRemote   map[K]string
	fromRemote map[string]K
}

func newEnumMap[K ~string](name string, table map[K]string) enumMap[K] {
	reverse := make(map[string]K, len(table))
	for k, v := range table {
		reverse[v] = k
	}
	return enumMap[K]{name: name, toRemote: table, fromRemote: reverse}
}

func (m enumMap[K]) remote(v K) (string, error) {
	out, ok := m.toRemote[v]
	if !ok {
		return "", fmt.Errorf("%s %q has no Seq counterpart: %w", m.name, v, operatorerrors.ErrUnmappedValue)
	}
	return out, nil
}

// declared maps a remote value back. An empty remote value means unset.
func (m enumMap[K]) declared(v string) (K, error) {
	if v == "" {
		return "", nil
	}
	out, ok := m.fromRemote[v]
	if !ok {
		return "", fmt.Errorf("remote %s %q has no declared counterpart: %w", m.name, v, operatorerrors.ErrUnmappedValue)
	}
	return out, nil
}

func (m enumMap[K]) remoteAll(vs []K) ([]string, error) {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		r, err := m.remote(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (m enumMap[K]) declaredAll(vs []string) ([]K, error) {
	out := make([]K, 0, len(vs))
	for _, v := range vs {
		d, err := m.declared(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

var permissions = newEnumMap("permission", map[seqv1alpha1.APIKeyPermission]string{
	seqv1alpha1.APIKeyPermissionIngest:       "Ingest",
	seqv1alpha1.APIKeyPermissionRead:         "Read",
	seqv1alpha1.APIKeyPermissionWrite:        "Write",
	seqv1alpha1.APIKeyPermissionProject:      "Project",
	seqv1alpha1.APIKeyPermissionOrganization: "Organization",
	seqv1alpha1.APIKeyPermissionSystem:       "System",
})

var logLevels = newEnumMap("log level", map[seqv1alpha1.LogLevel]string{
	seqv1alpha1.LogLevelVerbose: "Verbose",
	seqv1alpha1.LogLevelDebug:   "Debug",
	seqv1alpha1.LogLevelInfo:    "Information",
	seqv1alpha1.LogLevelWarning: "Warning",
	seqv1alpha1.LogLevelError:   "Error",
	seqv1alpha1.LogLevelFatal:   "Fatal",
})

var signalGroupings = newEnumMap("signal grouping", map[seqv1alpha1.SignalGrouping]string{
	seqv1alpha1.SignalGroupingInferred: "Inferred",
	seqv1alpha1.SignalGroupingExplicit: "Explicit",
	seqv1alpha1.SignalGroupingNone:     "None",
})
