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
	"babybook-be/pkg/events"
	pktNats "babybook-be/pkg/nats"

	"github.com/google/uuid"
)

type IOnboardingService interface {
	CompleteOnboarding(ctx context.Context, callerId uuid.UUID, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error)
}

type onboardingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewOnboardingService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IOnboardingService {
	return &onboardingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// CompleteOnboarding sets up the whole book in one transaction: the
// family, the caller's owner membership, the child, and a published
// cover page. This is the only path that ever creates an owner row, so
// one-owner-per-family holds by construction.
func (s *onboardingService) CompleteOnboarding(ctx context.Context, callerId uuid.UUID, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error) {
	if callerId == uuid.Nil {
		return nil, apperror.Unauthenticated()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: callerId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, apperror.Unauthenticated()
	}

	existing, err := uow.FamilyMemberRepository().FindOne(ctx, specification.ByUserID{UserID: callerId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Unauthorized("account already belongs to a family")
	}

	themeId := constant.DefaultThemeId
	if req.ThemeId != nil {
		if !constant.ValidThemeId(*req.ThemeId) {
			return nil, apperror.Validation([]apperror.FieldViolation{{
				Field: "theme_id", Rule: "oneof", Message: fmt.Sprintf("unknown theme %q", *req.ThemeId),
			}})
		}
		themeId = *req.ThemeId
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, apperror.Validation([]apperror.FieldViolation{{
			Field: "birth_date", Rule: "datetime", Message: "must be a date in YYYY-MM-DD format",
		}})
	}

	title := req.BookTitle
	if title == "" {
		title = fmt.Sprintf("%s's Baby Book", req.ChildName)
	}
	subtitle := req.Subtitle
	if subtitle == nil {
		defaultSubtitle := fmt.Sprintf("The story of %s", req.ChildName)
		subtitle = &defaultSubtitle
	}

	coverContent, err := json.Marshal(schema.CoverContent{BookTitle: title, Subtitle: subtitle})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	now := time.Now()
	family := entity.Family{
		Id:        uuid.New(),
		Name:      req.FamilyName,
		ThemeId:   themeId,
		CreatedAt: now,
	}
	owner := entity.FamilyMember{
		Id:           uuid.New(),
		FamilyId:     family.Id,
		UserId:       &callerId,
		Email:        user.Email,
		Role:         entity.MemberRoleOwner,
		InviteStatus: entity.InviteStatusAccepted,
		CreatedAt:    now,
	}
	child := entity.Child{
		Id:          uuid.New(),
		FamilyId:    family.Id,
		Name:        req.ChildName,
		DateOfBirth: birthDate,
		Gender:      req.ChildGender,
		CreatedAt:   now,
	}
	cover := entity.BookPage{
		Id:        uuid.New(),
		FamilyId:  family.Id,
		ChildId:   child.Id,
		PageType:  entity.PageTypeCover,
		PageDate:  birthDate,
		SortOrder: 0,
		Status:    entity.PageStatusPublished,
		Content:   coverContent,
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.FamilyRepository().Create(ctx, &family); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.FamilyMemberRepository().Create(ctx, &owner); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.ChildRepository().Create(ctx, &child); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.BookPageRepository().Create(ctx, &cover); err != nil {
		return nil, apperror.Persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Persistence(err)
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeOnboardingComplete,
			Data: map[string]interface{}{
				"family_id": family.Id,
				"user_id":   callerId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish ONBOARDING_COMPLETE event: %v\n", err)
		}
	}

	return &dto.CompleteOnboardingResponse{
		FamilyId:    family.Id,
		ChildId:     child.Id,
		CoverPageId: cover.Id,
	}, nil
}
