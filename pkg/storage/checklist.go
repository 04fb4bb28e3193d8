package storage

import (
	"context"

	"scamwatch/pkg/domain"
)

// ChecklistStorage defines operations for the security checklist and per-user
// completion tracking.
type ChecklistStorage interface {
	// ChecklistItems returns all checklist items ordered by sort order.
	ChecklistItems(ctx context.Context) ([]domain.ChecklistItem, error)
	// UserChecklist returns all items merged with the given user's completion
	// state, ordered by sort order.
	UserChecklist(ctx context.Context, userID domain.UserID) ([]domain.ChecklistEntry, error)
	// SetChecklistCompletion marks the item with the given slug completed or
	// not for the user and returns the resulting entry, or nil when no item
	// with that slug exists. Setting an already-set state is a no-op.
	SetChecklistCompletion(ctx context.Context,
		userID domain.UserID,
		slug string,
		completed bool) (*domain.ChecklistEntry, error)
}
