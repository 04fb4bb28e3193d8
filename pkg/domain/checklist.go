package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistItemID uniquely identifies a checklist item.
type ChecklistItemID uuid.UUID

// ChecklistItem is one recommended digital-security action. Items are seeded
// by migrations and shared by all users.
type ChecklistItem struct {
	ID          ChecklistItemID `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	SortOrder   int             `json:"sortOrder"`
}

// ChecklistEntry is a checklist item merged with one user's completion state.
type ChecklistEntry struct {
	Item        ChecklistItem `json:"item"`
	Completed   bool          `json:"completed"`
	CompletedAt time.Time     `json:"completedAt,omitempty"`
}
