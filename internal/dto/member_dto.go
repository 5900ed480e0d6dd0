package dto

import (
	"time"

	"babybook-be/internal/entity"

	"github.com/google/uuid"
)

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InviteMemberResponse struct {
	InviteUrl string `json:"invite_url"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

type MemberResponse struct {
	Id           uuid.UUID           `json:"id"`
	Email        string              `json:"email"`
	Role         entity.MemberRole   `json:"role"`
	InviteStatus entity.InviteStatus `json:"invite_status"`
	CreatedAt    time.Time           `json:"created_at"`
}
