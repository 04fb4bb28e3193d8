package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderConfigID uniquely identifies a provider configuration.
type ProviderConfigID uuid.UUID

// LookupType is the kind of input a provider can look up.
type LookupType string

const (
	LookupTypePhone LookupType = "phone"
	LookupTypeEmail LookupType = "email"
	LookupTypeURL   LookupType = "url"
	LookupTypeIP    LookupType = "ip"
)

// DefaultLookupTimeout applies when a provider config carries no timeout.
const DefaultLookupTimeout = 30 * time.Second

// ProviderConfig is an admin-managed definition of an external lookup
// provider. It is read-only to the lookup flow.
type ProviderConfig struct {
	// ID is the unique identifier of the configuration.
	ID ProviderConfigID `json:"id"`
	// Name is the display name of the provider. For providers without a
	// custom parameter mapping it also selects a named integration
	// (ipqs, virustotal, abuseipdb).
	Name string `json:"name"`
	// LookupType is the input kind this provider handles.
	LookupType LookupType `json:"lookupType"`
	// BaseURL is the endpoint to call. It may contain {{token}} placeholders
	// that are expanded per request.
	BaseURL string `json:"baseUrl"`
	// APIKey authenticates against the provider.
	APIKey string `json:"-"`
	// Enabled providers participate in lookups; disabled ones are skipped.
	Enabled bool `json:"enabled"`

	// ParameterMapping is an optional JSON object template for the request
	// body. String values may contain {{token}} placeholders. When non-empty
	// the generic templated path is used regardless of Name.
	ParameterMapping string `json:"parameterMapping,omitempty"`
	// Headers is an optional JSON object template for request headers.
	Headers string `json:"headers,omitempty"`
	// Timeout bounds a single provider call; zero means DefaultLookupTimeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// CallTimeout returns the effective per-call timeout for this provider.
func (c ProviderConfig) CallTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}

	return DefaultLookupTimeout
}

// CanonicalName returns the lower-cased, trimmed provider name used to match
// named integrations.
func (c ProviderConfig) CanonicalName() string {
	return strings.ToLower(strings.TrimSpace(c.Name))
}
