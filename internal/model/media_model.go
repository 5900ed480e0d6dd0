package model

import (
	"time"

	"github.com/google/uuid"
)

type Media struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChildId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoragePath string     `gorm:"type:text;not null"`
	PublicURL   string     `gorm:"type:text;not null"`
	MediaType   string     `gorm:"type:varchar(10);not null"`
	FileSize    int64      `gorm:"not null;default:0"`
	TakenAt     *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Media) TableName() string {
	return "media"
}
