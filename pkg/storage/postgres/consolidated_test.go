package postgres_test

import (
	"context"
	"scamwatch/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertConsolidatedScam(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	first := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	second := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("first upsert creates aggregate", func(t *testing.T) {
		created, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15551239999", first)
		require.NoError(t, err)
		require.Equal(t, 1, created.ReportCount)
		require.Equal(t, "+15551239999", created.Identifier)
		require.WithinDuration(t, first, created.FirstSeen, time.Second)
		require.WithinDuration(t, first, created.LastSeen, time.Second)
	})

	t.Run("second upsert bumps count and last seen", func(t *testing.T) {
		bumped, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15551239999", second)
		require.NoError(t, err)
		require.Equal(t, 2, bumped.ReportCount)
		require.WithinDuration(t, first, bumped.FirstSeen, time.Second)
		require.WithinDuration(t, second, bumped.LastSeen, time.Second)
	})

	t.Run("identifier matching is case insensitive", func(t *testing.T) {
		a, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeEmail, "Phish@Example.com", first)
		require.NoError(t, err)
		require.Equal(t, 1, a.ReportCount)

		b, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeEmail, "phish@example.com", second)
		require.NoError(t, err)
		require.Equal(t, a.ID, b.ID)
		require.Equal(t, 2, b.ReportCount)
	})

	t.Run("same identifier under different types stays separate", func(t *testing.T) {
		a, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "acme", first)
		require.NoError(t, err)
		b, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeBusiness, "acme", first)
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)
		require.Equal(t, 1, b.ReportCount)
	})
}

func TestPgSQL_LinkAndFetchConsolidations(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreReports(ctx, phoneReport(userID, "+15557770001"))
	require.NoError(t, err)
	reportID := stored[0].ID

	agg, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15557770001", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, pgSQL.LinkReportConsolidation(ctx, reportID, agg.ID))

	links, err := pgSQL.ConsolidationsByReport(ctx, reportID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, agg.ID, links[0].ConsolidatedID)

	got, err := pgSQL.ConsolidatedByID(ctx, agg.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, agg.Identifier, got.Identifier)

	// unknown id returns nil
	missing, err := pgSQL.ConsolidatedByID(ctx, domain.ConsolidatedID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_SearchConsolidatedScams(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeEmail, "billing@scamcorp.net", now.Add(-time.Minute))
	require.NoError(t, err)
	_, err = pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeEmail, "support@scamcorp.net", now)
	require.NoError(t, err)
	_, err = pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypeEmail, "hello@legit.org", now)
	require.NoError(t, err)

	// case-insensitive substring match, newest first
	res, err := pgSQL.SearchConsolidatedScams(ctx, domain.ScamTypeEmail, "SCAMCORP", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "support@scamcorp.net", res[0].Identifier)
	require.Equal(t, "billing@scamcorp.net", res[1].Identifier)

	// empty query returns everything of the type
	all, err := pgSQL.SearchConsolidatedScams(ctx, domain.ScamTypeEmail, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// limit is honored
	limited, err := pgSQL.SearchConsolidatedScams(ctx, domain.ScamTypeEmail, "", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestPgSQL_MarkVerifiedByReport(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreReports(ctx, phoneReport(userID, "+15557770002"))
	require.NoError(t, err)
	reportID := stored[0].ID

	agg, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15557770002", time.Now().UTC())
	require.NoError(t, err)
	require.False(t, agg.Verified)
	require.NoError(t, pgSQL.LinkReportConsolidation(ctx, reportID, agg.ID))

	other, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15557770003", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, pgSQL.MarkVerifiedByReport(ctx, reportID))

	got, err := pgSQL.ConsolidatedByID(ctx, agg.ID)
	require.NoError(t, err)
	require.True(t, got.Verified)

	// unrelated aggregate stays untouched
	untouched, err := pgSQL.ConsolidatedByID(ctx, other.ID)
	require.NoError(t, err)
	require.False(t, untouched.Verified)
}

func TestPgSQL_UpdateConsolidatedRisk(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	agg, err := pgSQL.UpsertConsolidatedScam(ctx, domain.ScamTypePhone, "+15557770004", time.Now().UTC())
	require.NoError(t, err)
	require.True(t, agg.EnrichedAt.IsZero())

	require.NoError(t, pgSQL.UpdateConsolidatedRisk(ctx, agg.ID, 85, domain.LookupStatusMalicious))

	got, err := pgSQL.ConsolidatedByID(ctx, agg.ID)
	require.NoError(t, err)
	require.Equal(t, 85, got.RiskScore)
	require.Equal(t, domain.LookupStatusMalicious, got.RiskStatus)
	require.False(t, got.EnrichedAt.IsZero())
}
