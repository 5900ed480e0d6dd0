package dto

import (
	"github.com/google/uuid"
)

// NavigationInfo carries the reader's position inside the book along
// with the neighbouring page ids for prev/next controls.
type NavigationInfo struct {
	PrevPageId   *uuid.UUID `json:"prev_page_id"`
	NextPageId   *uuid.UUID `json:"next_page_id"`
	CurrentIndex int        `json:"current_index"`
	TotalPages   int        `json:"total_pages"`
}

type BookPageDetailResponse struct {
	Page       PageResponse   `json:"page"`
	Navigation NavigationInfo `json:"navigation"`
}

type BookResponse struct {
	FamilyId   uuid.UUID      `json:"family_id"`
	FamilyName string         `json:"family_name"`
	ThemeId    string         `json:"theme_id"`
	Child      *ChildDTO      `json:"child,omitempty"`
	Pages      []PageResponse `json:"pages"`
	IsOwner    bool           `json:"is_owner"`
}
