package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string
type InviteStatus string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleViewer MemberRole = "viewer"

	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
)

// Family is the tenant root. Every other row holds a FamilyId and all
// reads/writes are scoped by it.
type Family struct {
	Id        uuid.UUID
	Name      string
	ThemeId   string
	CreatedAt time.Time
}

// FamilyMember links a person to a family. UserId stays nil and
// InviteToken set while an invite is pending; accepting the invite sets
// UserId and clears the token.
type FamilyMember struct {
	Id           uuid.UUID
	FamilyId     uuid.UUID
	UserId       *uuid.UUID
	Email        string
	Role         MemberRole
	InviteToken  *string
	InviteStatus InviteStatus
	CreatedAt    time.Time
}

type ChildGender string

const (
	ChildGenderMale   ChildGender = "male"
	ChildGenderFemale ChildGender = "female"
	ChildGenderOther  ChildGender = "other"
)

// Child is the subject of the book. One per family in current scope.
type Child struct {
	Id          uuid.UUID
	FamilyId    uuid.UUID
	Name        string
	DateOfBirth time.Time
	Gender      *ChildGender
	AvatarURL   *string
	CreatedAt   time.Time
}
