package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system. Authentication is
// delegated to an external identity layer; the domain only carries the id.
type UserID uuid.UUID
