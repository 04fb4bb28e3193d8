package lookup

import (
	"context"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/storage"
)

//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Service interface {
	// Lookup checks the value against every enabled provider configured for
	// the lookup type, concurrently. A failing provider yields an "unknown"
	// result carrying the error instead of failing the whole lookup; results
	// preserve the configuration order.
	Lookup(ctx context.Context, lookupType domain.LookupType, value string) ([]domain.ScamLookupResult, error)
	// TestConfig runs a single lookup against one provider config using a
	// canned input for its lookup type, so admins can verify a configuration
	// end to end.
	TestConfig(ctx context.Context, id domain.ProviderConfigID) (*domain.ScamLookupResult, error)

	// ProviderConfigs returns all provider configurations.
	ProviderConfigs(ctx context.Context) ([]domain.ProviderConfig, error)
	// ProviderConfig returns a single provider configuration by ID.
	ProviderConfig(ctx context.Context, id domain.ProviderConfigID) (*domain.ProviderConfig, error)
	// CreateProviderConfig stores a new provider configuration.
	CreateProviderConfig(ctx context.Context, cfg domain.ProviderConfig) (*domain.ProviderConfig, error)
	// UpdateProviderConfig applies a partial update to a provider configuration.
	UpdateProviderConfig(ctx context.Context,
		id domain.ProviderConfigID,
		updates storage.ProviderConfigUpdates) (*domain.ProviderConfig, error)
	// DeleteProviderConfig soft-deletes a provider configuration.
	DeleteProviderConfig(ctx context.Context, id domain.ProviderConfigID) error
}
