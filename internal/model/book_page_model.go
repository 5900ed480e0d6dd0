package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookPage struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ChildId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	PageType        string         `gorm:"type:varchar(30);not null"`
	TemplateVariant *string        `gorm:"type:varchar(30)"`
	PageDate        time.Time      `gorm:"type:date;not null;index"`
	SortOrder       int            `gorm:"not null;default:0"`
	Status          string         `gorm:"type:varchar(20);not null;default:'draft'"`
	Content         datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BookPage) TableName() string {
	return "book_pages"
}
