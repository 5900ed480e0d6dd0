package dto

import (
	"encoding/json"
	"time"

	"babybook-be/internal/entity"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	PageType        entity.PageType `json:"page_type" validate:"required"`
	PageDate        string          `json:"page_date" validate:"required,datetime=2006-01-02"`
	TemplateVariant *string         `json:"template_variant"`
	Content         json.RawMessage `json:"content" validate:"required"`
}

type UpdatePageRequest struct {
	Id      uuid.UUID
	Content json.RawMessage `json:"content" validate:"required"`
}

type UpdateSortOrderRequest struct {
	PageIds []uuid.UUID `json:"page_ids" validate:"required,min=1"`
}

type PageResponse struct {
	Id              uuid.UUID         `json:"id"`
	PageType        entity.PageType   `json:"page_type"`
	TemplateVariant *string           `json:"template_variant,omitempty"`
	PageDate        string            `json:"page_date"`
	SortOrder       int               `json:"sort_order"`
	Status          entity.PageStatus `json:"status"`
	Content         json.RawMessage   `json:"content"`
	ContentLocked   bool              `json:"content_locked,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}
