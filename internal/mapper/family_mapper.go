package mapper

import (
	"babybook-be/internal/entity"
	"babybook-be/internal/model"
)

type FamilyMapper struct{}

func NewFamilyMapper() *FamilyMapper {
	return &FamilyMapper{}
}

func (m *FamilyMapper) ToEntity(f *model.Family) *entity.Family {
	if f == nil {
		return nil
	}
	return &entity.Family{
		Id:        f.Id,
		Name:      f.Name,
		ThemeId:   f.ThemeId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FamilyMapper) ToModel(f *entity.Family) *model.Family {
	if f == nil {
		return nil
	}
	return &model.Family{
		Id:        f.Id,
		Name:      f.Name,
		ThemeId:   f.ThemeId,
		CreatedAt: f.CreatedAt,
	}
}

type FamilyMemberMapper struct{}

func NewFamilyMemberMapper() *FamilyMemberMapper {
	return &FamilyMemberMapper{}
}

func (m *FamilyMemberMapper) ToEntity(fm *model.FamilyMember) *entity.FamilyMember {
	if fm == nil {
		return nil
	}
	return &entity.FamilyMember{
		Id:           fm.Id,
		FamilyId:     fm.FamilyId,
		UserId:       fm.UserId,
		Email:        fm.Email,
		Role:         entity.MemberRole(fm.Role),
		InviteToken:  fm.InviteToken,
		InviteStatus: entity.InviteStatus(fm.InviteStatus),
		CreatedAt:    fm.CreatedAt,
	}
}

func (m *FamilyMemberMapper) ToModel(fm *entity.FamilyMember) *model.FamilyMember {
	if fm == nil {
		return nil
	}
	return &model.FamilyMember{
		Id:           fm.Id,
		FamilyId:     fm.FamilyId,
		UserId:       fm.UserId,
		Email:        fm.Email,
		Role:         string(fm.Role),
		InviteToken:  fm.InviteToken,
		InviteStatus: string(fm.InviteStatus),
		CreatedAt:    fm.CreatedAt,
	}
}

func (m *FamilyMemberMapper) ToEntities(members []*model.FamilyMember) []*entity.FamilyMember {
	entities := make([]*entity.FamilyMember, len(members))
	for i, fm := range members {
		entities[i] = m.ToEntity(fm)
	}
	return entities
}

type ChildMapper struct{}

func NewChildMapper() *ChildMapper {
	return &ChildMapper{}
}

func (m *ChildMapper) ToEntity(c *model.Child) *entity.Child {
	if c == nil {
		return nil
	}
	var gender *entity.ChildGender
	if c.Gender != nil {
		g := entity.ChildGender(*c.Gender)
		gender = &g
	}
	return &entity.Child{
		Id:          c.Id,
		FamilyId:    c.FamilyId,
		Name:        c.Name,
		DateOfBirth: c.DateOfBirth,
		Gender:      gender,
		AvatarURL:   c.AvatarURL,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChildMapper) ToModel(c *entity.Child) *model.Child {
	if c == nil {
		return nil
	}
	var gender *string
	if c.Gender != nil {
		g := string(*c.Gender)
		gender = &g
	}
	return &model.Child{
		Id:          c.Id,
		FamilyId:    c.FamilyId,
		Name:        c.Name,
		DateOfBirth: c.DateOfBirth,
		Gender:      gender,
		AvatarURL:   c.AvatarURL,
		CreatedAt:   c.CreatedAt,
	}
}
