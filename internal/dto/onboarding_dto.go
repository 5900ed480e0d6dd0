package dto

import (
	"time"

	"babybook-be/internal/entity"

	"github.com/google/uuid"
)

type CompleteOnboardingRequest struct {
	FamilyName  string              `json:"family_name" validate:"required,min=1,max=100"`
	ChildName   string              `json:"child_name" validate:"required,min=1,max=100"`
	ChildGender *entity.ChildGender `json:"child_gender" validate:"omitempty,oneof=male female other"`
	BirthDate   string              `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BookTitle   string              `json:"book_title" validate:"omitempty,min=1,max=100"`
	Subtitle    *string             `json:"subtitle" validate:"omitempty,max=200"`
	ThemeId     *string             `json:"theme_id"`
}

type CompleteOnboardingResponse struct {
	FamilyId    uuid.UUID `json:"family_id"`
	ChildId     uuid.UUID `json:"child_id"`
	CoverPageId uuid.UUID `json:"cover_page_id"`
}

type ChildDTO struct {
	Id        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Gender    *entity.ChildGender `json:"gender,omitempty"`
	BirthDate time.Time           `json:"birth_date"`
}
