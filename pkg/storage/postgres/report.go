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
	reportsTable = "scam_reports"
)

func (p *PgSQL) StoreReports(ctx context.Context, reports ...domain.ScamReport) ([]domain.ScamReport, error) {
	if len(reports) == 0 {
		return nil, nil
	}

	var result []PgReport
	if err := p.Builder.Insert(reportsTable).
		Rows(domainReportsToPg(reports)).
		Returning(&PgReport{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store reports into pg: %w", err)
	}

	return pgReportsToDomain(result), nil
}

// ReportByID returns a report by its ID regardless of owner, excluding
// soft-deleted rows.
func (p *PgSQL) ReportByID(ctx context.Context, id domain.ReportID) (*domain.ScamReport, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserReportByID returns a report by its ID scoped to the given user,
// excluding soft-deleted rows.
func (p *PgSQL) UserReportByID(ctx context.Context,
	userID domain.UserID,
	id domain.ReportID) (*domain.ScamReport, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateReportByID applies the provided admin updates to a single report and
// returns the updated row. Only provided fields are changed; updated_at is set
// automatically.
func (p *PgSQL) UpdateReportByID(ctx context.Context,
	id domain.ReportID,
	updates storage.ReportUpdates) (*domain.ScamReport, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Verified != nil {
		rec["verified"] = *updates.Verified
	}
	if updates.VerifiedBy != nil {
		rec["verified_by"] = uuid.UUID(*updates.VerifiedBy)
	}
	if updates.Published != nil {
		rec["published"] = *updates.Published
	}
	if updates.PublishedBy != nil {
		rec["published_by"] = uuid.UUID(*updates.PublishedBy)
	}

	var row PgReport
	found, err := p.Builder.Update(reportsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReport{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update report in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserReports returns a page of reports for a user filtered by an optional
// cursor and limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserReports(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserReports, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(reportsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgReport
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserReports{}, fmt.Errorf("could not fetch user reports from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserReports{
		Reports:    pgReportsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}
