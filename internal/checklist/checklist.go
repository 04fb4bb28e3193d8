// Package checklist exposes the security checklist: a fixed set of
// recommended actions seeded by migrations, with per-user completion tracking.
package checklist

import (
	"context"
	"fmt"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"
)

//go:generate mockgen -package mockchecklist -source=checklist.go -destination=mock/mockchecklist.go *
type Service interface {
	// Items returns all checklist items in display order.
	Items(ctx context.Context) ([]domain.ChecklistItem, error)
	// UserChecklist returns all items merged with the user's completion state.
	UserChecklist(ctx context.Context, userID domain.UserID) ([]domain.ChecklistEntry, error)
	// SetCompletion marks the item with the given slug completed or not for the
	// user. Setting an already-set state keeps the original completion time.
	SetCompletion(ctx context.Context,
		userID domain.UserID,
		slug string,
		completed bool) (*domain.ChecklistEntry, error)
}

type service struct {
	storage storage.Storage
}

func (s service) Items(ctx context.Context) ([]domain.ChecklistItem, error) {
	res, err := s.storage.ChecklistItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get checklist items: %w", err)
	}

	return res, nil
}

func (s service) UserChecklist(ctx context.Context,
	userID domain.UserID) ([]domain.ChecklistEntry, error) {
	res, err := s.storage.UserChecklist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user checklist: %w", err)
	}

	return res, nil
}

func (s service) SetCompletion(ctx context.Context,
	userID domain.UserID,
	slug string,
	completed bool) (*domain.ChecklistEntry, error) {
	res, err := s.storage.SetChecklistCompletion(ctx, userID, slug, completed)
	if err != nil {
		return nil, fmt.Errorf("could not set checklist completion: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "checklist item not found")
	}

	return res, nil
}

// New creates a new Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
