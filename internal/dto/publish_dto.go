package dto

import "github.com/google/uuid"

// InvalidateBookViewMessage is published after every page mutation so
// the cached book view for the family gets dropped.
type InvalidateBookViewMessage struct {
	FamilyId uuid.UUID `json:"family_id"`
}
