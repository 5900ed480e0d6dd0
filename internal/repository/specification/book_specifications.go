package specification

import (
	"babybook-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyOwnedBy scopes a query to one tenant. Every repository call made
// on behalf of a caller carries this; the family id always comes from
// the caller's resolved membership, never from client input.
type FamilyOwnedBy struct {
	FamilyID uuid.UUID
}

func (s FamilyOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("family_id = ?", s.FamilyID)
}

// ByUserID filters membership rows by linked account.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByEmail filters by email address.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByInviteToken matches a pending invite by its token.
type ByInviteToken struct {
	Token string
}

func (s ByInviteToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("invite_token = ?", s.Token)
}

// ByPageType filters book pages by kind.
type ByPageType struct {
	PageType entity.PageType
}

func (s ByPageType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_type = ?", string(s.PageType))
}

// PublishedOnly restricts a page query to what non-owners may see.
type PublishedOnly struct{}

func (s PublishedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(entity.PageStatusPublished))
}

// PageSequence is the canonical book ordering: page_date ascending with
// sort_order breaking ties.
type PageSequence struct{}

func (s PageSequence) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("page_date ASC").Order("sort_order ASC")
}
