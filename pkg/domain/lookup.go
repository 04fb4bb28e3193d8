package domain

import (
	"encoding/json"
	"time"
)

// LookupStatus is the normalized verdict of a provider lookup.
type LookupStatus string

const (
	LookupStatusSafe       LookupStatus = "safe"
	LookupStatusSuspicious LookupStatus = "suspicious"
	LookupStatusMalicious  LookupStatus = "malicious"
	LookupStatusUnknown    LookupStatus = "unknown"
)

// Severity orders statuses for picking the worst verdict across providers.
// Higher is worse; unknown ranks lowest so a failed provider never outranks a
// real verdict.
func (s LookupStatus) Severity() int {
	switch s {
	case LookupStatusMalicious:
		return 3
	case LookupStatusSuspicious:
		return 2
	case LookupStatusSafe:
		return 1
	case LookupStatusUnknown:
		return 0
	default:
		return 0
	}
}

// OutboundRequest captures the literal request sent to a provider so admins
// can audit exactly what left the service.
type OutboundRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
}

// ScamLookupResult is the normalized outcome of one provider call for one
// input value. It is ephemeral; results are returned to the caller and never
// persisted.
type ScamLookupResult struct {
	// Input is the value that was looked up.
	Input string `json:"input"`
	// Provider is the name of the provider config that produced this result.
	Provider string `json:"provider"`

	// RiskScore is the provider's 0-100 risk estimate; 0 when absent.
	RiskScore int `json:"riskScore"`
	// Reputation is the provider's categorical reputation, "unknown" when
	// absent and "error" when the call failed.
	Reputation string `json:"reputation"`
	// Status is the normalized verdict derived from the risk score.
	Status LookupStatus `json:"status"`

	// Details carries provider-specific fields, including a human-readable
	// "error" entry when the call failed.
	Details map[string]any `json:"details,omitempty"`
	// RawResponse is the unmodified provider response body.
	RawResponse json.RawMessage `json:"rawResponse,omitempty"`

	// CheckedAt is when the lookup completed.
	CheckedAt time.Time `json:"checkedAt"`
	// Request is the outbound request for audit display.
	Request OutboundRequest `json:"request"`
}
