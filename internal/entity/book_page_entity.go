package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PageType string

const (
	PageTypeCover          PageType = "cover"
	PageTypeBirthStory     PageType = "birth_story"
	PageTypeMilestone      PageType = "milestone"
	PageTypePhotoSpread    PageType = "photo_spread"
	PageTypeJournal        PageType = "journal"
	PageTypeLetter         PageType = "letter"
	PageTypeMonthlySummary PageType = "monthly_summary"
)

func (t PageType) Valid() bool {
	switch t {
	case PageTypeCover, PageTypeBirthStory, PageTypeMilestone,
		PageTypePhotoSpread, PageTypeJournal, PageTypeLetter,
		PageTypeMonthlySummary:
		return true
	}
	return false
}

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// BookPage is the core content unit. Content is the raw JSONB payload;
// its shape is governed by the schema registry for PageType and is only
// materialized into a typed struct at validation time.
//
// PageDate is the date the content is "about", distinct from CreatedAt.
// SortOrder breaks PageDate ties for manual ordering; it is stable but
// not required to be contiguous.
type BookPage struct {
	Id              uuid.UUID
	FamilyId        uuid.UUID
	ChildId         uuid.UUID
	PageType        PageType
	TemplateVariant *string
	PageDate        time.Time
	SortOrder       int
	Status          PageStatus
	Content         json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
