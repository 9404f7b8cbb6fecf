// Package logging holds structured log helpers shared by the controllers.
package logging

import (
	"sort"

	"github.com/go-logr/logr"
)

// Audit event types.
const (
	AuditEventCredentialRotated = "CredentialRotated"
	AuditEventRemoteCreated     = "RemoteCreated"
	AuditEventRemoteDeleted     = "RemoteDeleted"
	AuditEventRemoteLeaked      = "RemoteLeaked"
)

// LogAuditEvent logs a structured audit event for a change the operator made (or
// deliberately did not make) on a Seq server. Audit events are tagged with "audit=true"
// for filtering in log aggregation systems. Fields are emitted in key order.
func LogAuditEvent(logger logr.Logger, eventType string, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kvs := make([]any, 0, 4+2*len(keys))
	kvs = append(kvs, "audit", "true", "event_type", eventType)
	for _, k := range keys {
		kvs = append(kvs, k, fields[k])
	}
	logger.WithValues(kvs...).Info("Operator audit event")
}
