package storage

import (
	"context"
	"time"

	"scamwatch/pkg/domain"
)

// ReportUpdates describes the set of optional fields an administrator can
// change on an existing report. Only non-nil fields are applied.
type ReportUpdates struct {
	// Verified sets the verification flag; VerifiedBy records who changed it.
	Verified   *bool
	VerifiedBy *domain.UserID
	// Published sets the publication flag; PublishedBy records who changed it.
	Published   *bool
	PublishedBy *domain.UserID
}

// UserReports groups a page of reports returned for a user together with an
// optional NextCursor used for pagination.
type UserReports struct {
	// Reports contains the current page of report records.
	Reports []domain.ScamReport
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ReportStorage defines CRUD and query operations for scam reports.
// Implementations must exclude soft-deleted rows from reads.
type ReportStorage interface {
	// StoreReports inserts one or more reports and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreReports(ctx context.Context, reports ...domain.ScamReport) ([]domain.ScamReport, error)
	// ReportByID fetches a report by its ID regardless of owner. Returns nil
	// when not found. Used by administrative flows.
	ReportByID(ctx context.Context, id domain.ReportID) (*domain.ScamReport, error)
	// UserReportByID fetches a report by its ID scoped to the given user.
	// Returns nil when not found.
	UserReportByID(ctx context.Context, userID domain.UserID, id domain.ReportID) (*domain.ScamReport, error)
	// UpdateReportByID applies the provided field set to a single report and
	// returns the updated row, or nil when the report does not exist.
	// updated_at is set automatically.
	UpdateReportByID(ctx context.Context, id domain.ReportID, updates ReportUpdates) (*domain.ScamReport, error)
	// UserReports returns a page of reports for a user created before the
	// optional cursor time, newest first, limited by limit.
	UserReports(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserReports, error)
}
