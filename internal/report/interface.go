package report

import (
	"context"
	"scamwatch/pkg/domain"
)

//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go *
type Service interface {
	// Submit stores a new scam report and folds it into its consolidated
	// aggregate in the same transaction.
	Submit(ctx context.Context, report domain.ScamReport) (*domain.ScamReport, error)
	// Report returns a single report owned by the given user.
	Report(ctx context.Context, userID domain.UserID, id domain.ReportID) (*domain.ScamReport, error)
	// UserReports returns a page of the user's reports with an opaque cursor.
	UserReports(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.ScamReport, string, error)
	// Verify sets the verification flag on a report. Turning verification on
	// also marks the report's aggregates verified; turning it off never does.
	Verify(ctx context.Context,
		adminID domain.UserID,
		id domain.ReportID,
		verified bool) (*domain.ScamReport, error)
	// Publish sets the publication flag on a report.
	Publish(ctx context.Context,
		adminID domain.UserID,
		id domain.ReportID,
		published bool) (*domain.ScamReport, error)
	// SearchScams returns consolidated aggregates of the given type matching
	// the query, most recently seen first.
	SearchScams(ctx context.Context,
		scamType domain.ScamType,
		query string) ([]domain.ConsolidatedScam, error)
}
