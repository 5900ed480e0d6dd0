package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/constant"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/internal/schema"

	"github.com/google/uuid"
)

type ISettingsService interface {
	GetSettings(ctx context.Context, callerId uuid.UUID) (*dto.FamilySettingsResponse, error)
	UpdateFamilyName(ctx context.Context, callerId uuid.UUID, req *dto.UpdateFamilyNameRequest) error
	UpdateChild(ctx context.Context, callerId uuid.UUID, req *dto.UpdateChildRequest) error
	UpdateCover(ctx context.Context, callerId uuid.UUID, req *dto.UpdateCoverRequest) error
	UpdateTheme(ctx context.Context, callerId uuid.UUID, req *dto.UpdateThemeRequest) error
}

type settingsService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ISettingsService {
	return &settingsService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, callerId uuid.UUID) (*dto.FamilySettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	family, err := uow.FamilyRepository().FindOne(ctx, specification.ByID{ID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if family == nil {
		return nil, apperror.NotFound("family not found")
	}

	child, err := uow.ChildRepository().FindOne(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	members, err := uow.FamilyMemberRepository().FindAll(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := dto.FamilySettingsResponse{
		FamilyName: family.Name,
		ThemeId:    family.ThemeId,
		Members:    make([]dto.MemberResponse, 0, len(members)),
	}
	if child != nil {
		res.Child = &dto.ChildDTO{
			Id:        child.Id,
			Name:      child.Name,
			Gender:    child.Gender,
			BirthDate: child.DateOfBirth,
		}
	}
	for _, m := range members {
		res.Members = append(res.Members, dto.MemberResponse{
			Id:           m.Id,
			Email:        m.Email,
			Role:         m.Role,
			InviteStatus: m.InviteStatus,
			CreatedAt:    m.CreatedAt,
		})
	}

	return &res, nil
}

func (s *settingsService) UpdateFamilyName(ctx context.Context, callerId uuid.UUID, req *dto.UpdateFamilyNameRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	if err := uow.FamilyRepository().UpdateName(ctx, member.FamilyId, req.FamilyName); err != nil {
		return apperror.Persistence(err)
	}

	s.invalidate(ctx, member.FamilyId)
	return nil
}

func (s *settingsService) UpdateChild(ctx context.Context, callerId uuid.UUID, req *dto.UpdateChildRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	child, err := uow.ChildRepository().FindOne(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return apperror.Persistence(err)
	}
	if child == nil {
		return apperror.NotFound("child not found")
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return apperror.Validation([]apperror.FieldViolation{{
			Field: "birth_date", Rule: "datetime", Message: "must be a date in YYYY-MM-DD format",
		}})
	}

	child.Name = req.ChildName
	child.DateOfBirth = birthDate
	if req.ChildGender != nil {
		gender := entity.ChildGender(*req.ChildGender)
		child.Gender = &gender
	}

	if err := uow.ChildRepository().Update(ctx, child); err != nil {
		return apperror.Persistence(err)
	}

	s.invalidate(ctx, member.FamilyId)
	return nil
}

// UpdateCover merges the submitted fields into the existing cover
// content instead of replacing it, so a title edit can't wipe the photo.
func (s *settingsService) UpdateCover(ctx context.Context, callerId uuid.UUID, req *dto.UpdateCoverRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	cover, err := uow.BookPageRepository().FindOne(ctx,
		specification.FamilyOwnedBy{FamilyID: member.FamilyId},
		specification.ByPageType{PageType: entity.PageTypeCover},
	)
	if err != nil {
		return apperror.Persistence(err)
	}
	if cover == nil {
		return apperror.NotFound("cover page not found")
	}

	var content schema.CoverContent
	if err := json.Unmarshal(cover.Content, &content); err != nil {
		return apperror.Persistence(fmt.Errorf("corrupt cover content: %w", err))
	}

	if req.BookTitle != nil {
		content.BookTitle = *req.BookTitle
	}
	if req.Subtitle != nil {
		content.Subtitle = req.Subtitle
	}
	if req.CoverPhotoStoragePath != nil {
		content.CoverPhotoStoragePath = req.CoverPhotoStoragePath
	}

	merged, err := json.Marshal(content)
	if err != nil {
		return apperror.Persistence(err)
	}

	if err := uow.BookPageRepository().UpdateContent(ctx, cover.Id, member.FamilyId, merged); err != nil {
		return apperror.Persistence(err)
	}

	s.invalidate(ctx, member.FamilyId)
	return nil
}

func (s *settingsService) UpdateTheme(ctx context.Context, callerId uuid.UUID, req *dto.UpdateThemeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	if !constant.ValidThemeId(req.ThemeId) {
		return apperror.Validation([]apperror.FieldViolation{{
			Field: "theme_id", Rule: "oneof", Message: fmt.Sprintf("unknown theme %q", req.ThemeId),
		}})
	}

	if err := uow.FamilyRepository().UpdateTheme(ctx, member.FamilyId, req.ThemeId); err != nil {
		return apperror.Persistence(err)
	}

	s.invalidate(ctx, member.FamilyId)
	return nil
}

func (s *settingsService) invalidate(ctx context.Context, familyId uuid.UUID) {
	msg := dto.InvalidateBookViewMessage{FamilyId: familyId}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish book invalidation for %s: %v\n", familyId, err)
	}
}
