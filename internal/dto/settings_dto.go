package dto

type UpdateFamilyNameRequest struct {
	FamilyName string `json:"family_name" validate:"required,min=1,max=100"`
}

type UpdateChildRequest struct {
	ChildName   string  `json:"child_name" validate:"required,min=1,max=100"`
	ChildGender *string `json:"child_gender" validate:"omitempty,oneof=male female other"`
	BirthDate   string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type UpdateCoverRequest struct {
	BookTitle             *string `json:"book_title" validate:"omitempty,min=1,max=100"`
	Subtitle              *string `json:"subtitle" validate:"omitempty,max=200"`
	CoverPhotoStoragePath *string `json:"cover_photo_storage_path"`
}

type UpdateThemeRequest struct {
	ThemeId string `json:"theme_id" validate:"required"`
}

type FamilySettingsResponse struct {
	FamilyName string           `json:"family_name"`
	ThemeId    string           `json:"theme_id"`
	Child      *ChildDTO        `json:"child,omitempty"`
	Members    []MemberResponse `json:"members"`
}
