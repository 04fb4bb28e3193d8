package postgres

import (
	"context"
	"fmt"
	"time"

	"scamwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	consolidatedTable   = "consolidated_scams"
	consolidationsTable = "scam_report_consolidations"
)

// UpsertConsolidatedScam inserts a fresh aggregate or bumps the existing one
// in a single statement. The ON CONFLICT target matches the case-normalized
// unique index, so concurrent submissions of the same identifier can never
// create duplicate aggregates.
func (p *PgSQL) UpsertConsolidatedScam(ctx context.Context,
	scamType domain.ScamType,
	identifier string,
	seenAt time.Time) (*domain.ConsolidatedScam, error) {
	var row PgConsolidatedScam
	found, err := p.Builder.Insert(consolidatedTable).
		Rows(goqu.Record{
			"scam_type":    string(scamType),
			"identifier":   identifier,
			"report_count": 1,
			"first_seen":   seenAt,
			"last_seen":    seenAt,
		}).
		OnConflict(goqu.DoUpdate("scam_type, lower(identifier)", goqu.Record{
			"report_count": goqu.L("consolidated_scams.report_count + 1"),
			"last_seen":    goqu.L("EXCLUDED.last_seen"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgConsolidatedScam{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert consolidated scam in pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert of consolidated scam returned no row")
	}

	return row.ToDomain(), nil
}

// LinkReportConsolidation inserts the join row between a report and its aggregate.
func (p *PgSQL) LinkReportConsolidation(ctx context.Context,
	reportID domain.ReportID,
	consolidatedID domain.ConsolidatedID) error {
	_, err := p.Builder.Insert(consolidationsTable).
		Rows(PgReportConsolidation{
			ReportID:       uuid.UUID(reportID),
			ConsolidatedID: uuid.UUID(consolidatedID),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not link report consolidation in pg: %w", err)
	}

	return nil
}

// ConsolidatedByID returns an aggregate by its ID.
func (p *PgSQL) ConsolidatedByID(ctx context.Context,
	id domain.ConsolidatedID) (*domain.ConsolidatedScam, error) {
	var row PgConsolidatedScam
	found, err := p.Builder.From(consolidatedTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch consolidated scam by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SearchConsolidatedScams returns aggregates of the given type whose
// identifier contains the query (case-insensitive), most recently seen first.
func (p *PgSQL) SearchConsolidatedScams(ctx context.Context,
	scamType domain.ScamType,
	query string,
	limit uint) ([]domain.ConsolidatedScam, error) {
	w := []goqu.Expression{
		goqu.I("scam_type").Eq(string(scamType)),
	}
	if query != "" {
		w = append(w, goqu.I("identifier").ILike("%"+query+"%"))
	}

	var rows []PgConsolidatedScam
	if err := p.Builder.From(consolidatedTable).
		Where(w...).
		Order(goqu.I("last_seen").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search consolidated scams in pg: %w", err)
	}

	out := make([]domain.ConsolidatedScam, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// ConsolidationsByReport returns the link rows for the given report.
func (p *PgSQL) ConsolidationsByReport(ctx context.Context,
	reportID domain.ReportID) ([]domain.ReportConsolidation, error) {
	var rows []PgReportConsolidation
	if err := p.Builder.From(consolidationsTable).
		Where(goqu.I("report_id").Eq(uuid.UUID(reportID))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch consolidations by report: %w", err)
	}

	out := make([]domain.ReportConsolidation, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// MarkVerifiedByReport flags every aggregate linked to the report as verified.
// The flag is one-way; there is no corresponding unset operation.
func (p *PgSQL) MarkVerifiedByReport(ctx context.Context, reportID domain.ReportID) error {
	sub := p.Builder.From(consolidationsTable).
		Select("consolidated_id").
		Where(goqu.I("report_id").Eq(uuid.UUID(reportID)))

	_, err := p.Builder.Update(consolidatedTable).
		Set(goqu.Record{
			"verified":   true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").In(sub)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark consolidated scams verified in pg: %w", err)
	}

	return nil
}

// UpdateConsolidatedRisk stores the latest enrichment snapshot on an aggregate.
func (p *PgSQL) UpdateConsolidatedRisk(ctx context.Context,
	id domain.ConsolidatedID,
	riskScore int,
	riskStatus domain.LookupStatus) error {
	_, err := p.Builder.Update(consolidatedTable).
		Set(goqu.Record{
			"risk_score":  riskScore,
			"risk_status": string(riskStatus),
			"enriched_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update consolidated risk in pg: %w", err)
	}

	return nil
}
