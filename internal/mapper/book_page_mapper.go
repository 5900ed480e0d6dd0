package mapper

import (
	"encoding/json"
	"time"

	"babybook-be/internal/entity"
	"babybook-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookPageMapper struct{}

func NewBookPageMapper() *BookPageMapper {
	return &BookPageMapper{}
}

func (m *BookPageMapper) ToEntity(p *model.BookPage) *entity.BookPage {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.BookPage{
		Id:              p.Id,
		FamilyId:        p.FamilyId,
		ChildId:         p.ChildId,
		PageType:        entity.PageType(p.PageType),
		TemplateVariant: p.TemplateVariant,
		PageDate:        p.PageDate,
		SortOrder:       p.SortOrder,
		Status:          entity.PageStatus(p.Status),
		Content:         json.RawMessage(p.Content),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       p.DeletedAt.Valid,
	}
}

func (m *BookPageMapper) ToModel(p *entity.BookPage) *model.BookPage {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.BookPage{
		Id:              p.Id,
		FamilyId:        p.FamilyId,
		ChildId:         p.ChildId,
		PageType:        string(p.PageType),
		TemplateVariant: p.TemplateVariant,
		PageDate:        p.PageDate,
		SortOrder:       p.SortOrder,
		Status:          string(p.Status),
		Content:         datatypes.JSON(p.Content),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *BookPageMapper) ToEntities(pages []*model.BookPage) []*entity.BookPage {
	entities := make([]*entity.BookPage, len(pages))
	for i, p := range pages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
