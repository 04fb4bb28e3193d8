package storage

import (
	"context"
	"time"

	"scamwatch/pkg/domain"
)

// ProviderConfigUpdates describes optional fields to apply when updating a
// provider configuration. Only non-nil fields are changed.
type ProviderConfigUpdates struct {
	Name             *string
	LookupType       *domain.LookupType
	BaseURL          *string
	APIKey           *string
	Enabled          *bool
	ParameterMapping *string
	Headers          *string
	Timeout          *time.Duration
}

// ProviderStorage defines CRUD operations for admin-managed provider
// configurations. Reads exclude soft-deleted rows.
type ProviderStorage interface {
	// StoreProviderConfigs inserts one or more configs and returns the stored rows.
	StoreProviderConfigs(ctx context.Context, cfgs ...domain.ProviderConfig) ([]domain.ProviderConfig, error)
	// ProviderConfigByID fetches a config by ID. Returns nil when not found.
	ProviderConfigByID(ctx context.Context, id domain.ProviderConfigID) (*domain.ProviderConfig, error)
	// UpdateProviderConfigByID applies the provided field set and returns the
	// updated row, or nil when the config does not exist.
	UpdateProviderConfigByID(ctx context.Context,
		id domain.ProviderConfigID,
		updates ProviderConfigUpdates) (*domain.ProviderConfig, error)
	// DeleteProviderConfig soft-deletes a config and returns the deleted row,
	// or nil when it was not found.
	DeleteProviderConfig(ctx context.Context, id domain.ProviderConfigID) (*domain.ProviderConfig, error)
	// ProviderConfigs returns all configs ordered by name.
	ProviderConfigs(ctx context.Context) ([]domain.ProviderConfig, error)
	// EnabledProviderConfigs returns enabled configs for the given lookup type
	// in a stable order; lookup results preserve this order.
	EnabledProviderConfigs(ctx context.Context, lookupType domain.LookupType) ([]domain.ProviderConfig, error)
}
