package postgres

import (
	"context"
	"fmt"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	providerConfigsTable = "provider_configs"
)

func (p *PgSQL) StoreProviderConfigs(ctx context.Context,
	cfgs ...domain.ProviderConfig) ([]domain.ProviderConfig, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}

	pgCfgs := make([]PgProviderConfig, len(cfgs))
	for i := range pgCfgs {
		pgCfgs[i].FromDomain(cfgs[i])
	}

	var rows []PgProviderConfig
	if err := p.Builder.Insert(providerConfigsTable).
		Rows(pgCfgs).
		Returning(&PgProviderConfig{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store provider configs into pg: %w", err)
	}

	out := make([]domain.ProviderConfig, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// ProviderConfigByID returns a config by its ID, excluding soft-deleted rows.
func (p *PgSQL) ProviderConfigByID(ctx context.Context,
	id domain.ProviderConfigID) (*domain.ProviderConfig, error) {
	var row PgProviderConfig
	found, err := p.Builder.From(providerConfigsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch provider config by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateProviderConfigByID applies the provided field set to a config and
// returns the updated row. Only provided fields are changed.
func (p *PgSQL) UpdateProviderConfigByID(ctx context.Context,
	id domain.ProviderConfigID,
	updates storage.ProviderConfigUpdates) (*domain.ProviderConfig, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.LookupType != nil {
		rec["lookup_type"] = string(*updates.LookupType)
	}
	if updates.BaseURL != nil {
		rec["base_url"] = *updates.BaseURL
	}
	if updates.APIKey != nil {
		rec["api_key"] = *updates.APIKey
	}
	if updates.Enabled != nil {
		rec["enabled"] = *updates.Enabled
	}
	if updates.ParameterMapping != nil {
		rec["parameter_mapping"] = *updates.ParameterMapping
	}
	if updates.Headers != nil {
		rec["headers"] = *updates.Headers
	}
	if updates.Timeout != nil {
		rec["timeout_seconds"] = int(*updates.Timeout / time.Second)
	}

	var row PgProviderConfig
	found, err := p.Builder.Update(providerConfigsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProviderConfig{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update provider config in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProviderConfig performs a soft delete by setting deleted_at,
// returning the deleted record.
func (p *PgSQL) DeleteProviderConfig(ctx context.Context,
	id domain.ProviderConfigID) (*domain.ProviderConfig, error) {
	var row PgProviderConfig
	found, err := p.Builder.Update(providerConfigsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProviderConfig{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete provider config in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ProviderConfigs returns all configs ordered by name.
func (p *PgSQL) ProviderConfigs(ctx context.Context) ([]domain.ProviderConfig, error) {
	var rows []PgProviderConfig
	if err := p.Builder.From(providerConfigsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch provider configs from pg: %w", err)
	}

	out := make([]domain.ProviderConfig, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// EnabledProviderConfigs returns the enabled configs for a lookup type ordered
// by creation time. The order is stable so lookup results are deterministic.
func (p *PgSQL) EnabledProviderConfigs(ctx context.Context,
	lookupType domain.LookupType) ([]domain.ProviderConfig, error) {
	var rows []PgProviderConfig
	if err := p.Builder.From(providerConfigsTable).
		Where(
			goqu.I("lookup_type").Eq(string(lookupType)),
			goqu.I("enabled").IsTrue(),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch enabled provider configs from pg: %w", err)
	}

	out := make([]domain.ProviderConfig, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
