package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scamwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	checklistItemsTable       = "checklist_items"
	checklistCompletionsTable = "checklist_completions"
)

// ChecklistItems returns all checklist items ordered by sort order.
func (p *PgSQL) ChecklistItems(ctx context.Context) ([]domain.ChecklistItem, error) {
	var rows []PgChecklistItem
	if err := p.Builder.From(checklistItemsTable).
		Order(goqu.I("sort_order").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch checklist items from pg: %w", err)
	}

	out := make([]domain.ChecklistItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// pgChecklistRow is the joined shape of an item with one user's completion.
type pgChecklistRow struct {
	PgChecklistItem

	CompletedAt sql.NullTime `db:"completed_at"`
}

// UserChecklist returns all items left-joined with the user's completions.
func (p *PgSQL) UserChecklist(ctx context.Context,
	userID domain.UserID) ([]domain.ChecklistEntry, error) {
	var rows []pgChecklistRow
	if err := p.Builder.From(goqu.T(checklistItemsTable).As("i")).
		Select(
			goqu.I("i.id").As("id"),
			goqu.I("i.slug").As("slug"),
			goqu.I("i.title").As("title"),
			goqu.I("i.description").As("description"),
			goqu.I("i.sort_order").As("sort_order"),
			goqu.I("c.completed_at").As("completed_at"),
		).
		LeftJoin(goqu.T(checklistCompletionsTable).As("c"), goqu.On(
			goqu.I("c.item_id").Eq(goqu.I("i.id")),
			goqu.I("c.user_id").Eq(uuid.UUID(userID)),
		)).
		Order(goqu.I("i.sort_order").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user checklist from pg: %w", err)
	}

	out := make([]domain.ChecklistEntry, 0, len(rows))
	for i := range rows {
		out = append(out, domain.ChecklistEntry{
			Item:        rows[i].ToDomain(),
			Completed:   rows[i].CompletedAt.Valid,
			CompletedAt: rows[i].CompletedAt.Time,
		})
	}

	return out, nil
}

// SetChecklistCompletion marks an item completed or not for the user. Returns
// nil when no item with the given slug exists.
func (p *PgSQL) SetChecklistCompletion(ctx context.Context,
	userID domain.UserID,
	slug string,
	completed bool) (*domain.ChecklistEntry, error) {
	var item PgChecklistItem
	found, err := p.Builder.From(checklistItemsTable).
		Where(goqu.I("slug").Eq(slug)).
		Executor().ScanStructContext(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("could not fetch checklist item by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	if completed {
		// idempotent: an existing completion keeps its original timestamp
		if _, err := p.Builder.Insert(checklistCompletionsTable).
			Rows(goqu.Record{
				"user_id": uuid.UUID(userID),
				"item_id": item.ID,
			}).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store checklist completion in pg: %w", err)
		}
	} else {
		if _, err := p.Builder.Delete(checklistCompletionsTable).
			Where(
				goqu.I("user_id").Eq(uuid.UUID(userID)),
				goqu.I("item_id").Eq(item.ID),
			).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not remove checklist completion in pg: %w", err)
		}
	}

	var completedAt time.Time
	if completed {
		var row struct {
			CompletedAt time.Time `db:"completed_at"`
		}
		found, err := p.Builder.From(checklistCompletionsTable).
			Select(goqu.I("completed_at")).
			Where(
				goqu.I("user_id").Eq(uuid.UUID(userID)),
				goqu.I("item_id").Eq(item.ID),
			).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return nil, fmt.Errorf("could not fetch checklist completion from pg: %w", err)
		}
		if found {
			completedAt = row.CompletedAt
		}
	}

	return &domain.ChecklistEntry{
		Item:        item.ToDomain(),
		Completed:   completed,
		CompletedAt: completedAt,
	}, nil
}
