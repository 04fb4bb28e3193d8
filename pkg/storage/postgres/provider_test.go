package postgres_test

import (
	"context"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testProviderConfig(name string, lookupType domain.LookupType) domain.ProviderConfig {
	return domain.ProviderConfig{
		Name:       name,
		LookupType: lookupType,
		BaseURL:    "https://api." + name + ".example/check",
		APIKey:     "secret-" + name,
		Enabled:    true,
	}
}

func TestPgSQL_StoreProviderConfigs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store single config", func(t *testing.T) {
		res, err := pgSQL.StoreProviderConfigs(ctx, testProviderConfig("ipqs", domain.LookupTypePhone))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "ipqs", res[0].Name)
		require.Equal(t, domain.DefaultLookupTimeout, res[0].CallTimeout())
	})

	t.Run("store config with explicit timeout", func(t *testing.T) {
		cfg := testProviderConfig("slowcheck", domain.LookupTypeEmail)
		cfg.Timeout = 10 * time.Second

		res, err := pgSQL.StoreProviderConfigs(ctx, cfg)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, 10*time.Second, res[0].Timeout)
	})

	t.Run("store empty configs", func(t *testing.T) {
		res, err := pgSQL.StoreProviderConfigs(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdateProviderConfigByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProviderConfigs(ctx, testProviderConfig("virustotal", domain.LookupTypeURL))
	require.NoError(t, err)
	id := stored[0].ID

	enabled := false
	mapping := `{"url": "{{url}}", "key": "{{apiKey}}"}`
	timeout := 5 * time.Second
	got, err := pgSQL.UpdateProviderConfigByID(ctx, id, storage.ProviderConfigUpdates{
		Enabled:          &enabled,
		ParameterMapping: &mapping,
		Timeout:          &timeout,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.Enabled)
	require.Equal(t, mapping, got.ParameterMapping)
	require.Equal(t, timeout, got.Timeout)
	// untouched fields keep their values
	require.Equal(t, "virustotal", got.Name)
	require.Equal(t, domain.LookupTypeURL, got.LookupType)

	// unknown id returns nil
	missing, err := pgSQL.UpdateProviderConfigByID(ctx, domain.ProviderConfigID(uuid.New()), storage.ProviderConfigUpdates{
		Enabled: &enabled,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteProviderConfig(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProviderConfigs(ctx, testProviderConfig("abuseipdb", domain.LookupTypeIP))
	require.NoError(t, err)
	id := stored[0].ID

	deleted, err := pgSQL.DeleteProviderConfig(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	// fetching by id should return nil
	got, err := pgSQL.ProviderConfigByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)

	// listing should not include it
	all, err := pgSQL.ProviderConfigs(ctx)
	require.NoError(t, err)
	for _, cfg := range all {
		require.NotEqual(t, id, cfg.ID)
	}

	// deleting again should not error
	deleted2, err := pgSQL.DeleteProviderConfig(ctx, id)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_EnabledProviderConfigs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	first := testProviderConfig("phonecheck-a", domain.LookupTypePhone)
	second := testProviderConfig("phonecheck-b", domain.LookupTypePhone)
	disabled := testProviderConfig("phonecheck-off", domain.LookupTypePhone)
	disabled.Enabled = false
	otherType := testProviderConfig("urlcheck", domain.LookupTypeURL)

	_, err := pgSQL.StoreProviderConfigs(ctx, first, second, disabled, otherType)
	require.NoError(t, err)

	got, err := pgSQL.EnabledProviderConfigs(ctx, domain.LookupTypePhone)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// creation order is preserved
	require.Equal(t, "phonecheck-a", got[0].Name)
	require.Equal(t, "phonecheck-b", got[1].Name)
}
