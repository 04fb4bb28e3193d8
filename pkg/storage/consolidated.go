package storage

import (
	"context"
	"time"

	"scamwatch/pkg/domain"
)

// ConsolidatedStorage defines operations on consolidated scam aggregates and
// their report links.
type ConsolidatedStorage interface {
	// UpsertConsolidatedScam resolves the identifier to its aggregate in a
	// single statement: it inserts a fresh aggregate with report count 1 and
	// first_seen = last_seen = seenAt, or, when one already exists for
	// (scamType, lower(identifier)), increments the report count and advances
	// last_seen. The returned row reflects the state after the operation, so
	// ReportCount == 1 means the aggregate was just created.
	UpsertConsolidatedScam(ctx context.Context,
		scamType domain.ScamType,
		identifier string,
		seenAt time.Time) (*domain.ConsolidatedScam, error)
	// LinkReportConsolidation records that the report was folded into the
	// aggregate. Exactly one link is expected per consolidated report.
	LinkReportConsolidation(ctx context.Context,
		reportID domain.ReportID,
		consolidatedID domain.ConsolidatedID) error
	// ConsolidatedByID fetches an aggregate by its ID. Returns nil when not found.
	ConsolidatedByID(ctx context.Context, id domain.ConsolidatedID) (*domain.ConsolidatedScam, error)
	// SearchConsolidatedScams returns aggregates of the given type whose
	// identifier contains the query string (case-insensitive), most recently
	// seen first. An empty query returns the most recently seen aggregates.
	SearchConsolidatedScams(ctx context.Context,
		scamType domain.ScamType,
		query string,
		limit uint) ([]domain.ConsolidatedScam, error)
	// ConsolidationsByReport returns the link rows for the given report.
	ConsolidationsByReport(ctx context.Context, reportID domain.ReportID) ([]domain.ReportConsolidation, error)
	// MarkVerifiedByReport sets the verified flag on every aggregate linked to
	// the given report. The flag is never cleared by this method.
	MarkVerifiedByReport(ctx context.Context, reportID domain.ReportID) error
	// UpdateConsolidatedRisk stores a risk enrichment snapshot on the aggregate.
	UpdateConsolidatedRisk(ctx context.Context,
		id domain.ConsolidatedID,
		riskScore int,
		riskStatus domain.LookupStatus) error
}
