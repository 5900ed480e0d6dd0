package model

import (
	"time"

	"github.com/google/uuid"
)

type Family struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	ThemeId   string    `gorm:"type:varchar(50);not null;default:'cotton-candy'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Family) TableName() string {
	return "families"
}

// FamilyMember rows are unique per (family, email), so a duplicate
// invite surfaces as a store constraint violation. The invite token is
// globally unique while present.
type FamilyMember struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyId     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_members_family_email"`
	UserId       *uuid.UUID `gorm:"type:uuid;index"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_family_members_family_email"`
	Role         string     `gorm:"type:varchar(20);not null"`
	InviteToken  *string    `gorm:"type:varchar(64);uniqueIndex"`
	InviteStatus string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}

type Child struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	Gender      *string   `gorm:"type:varchar(10)"`
	AvatarURL   *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Child) TableName() string {
	return "children"
}
