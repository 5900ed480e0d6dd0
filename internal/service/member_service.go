package service

import (
	"context"
	"fmt"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/pkg/mailer"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/pkg/events"
	pktNats "babybook-be/pkg/nats"

	"github.com/google/uuid"
)

type IMemberService interface {
	InviteMember(ctx context.Context, callerId uuid.UUID, req *dto.InviteMemberRequest) (*dto.InviteMemberResponse, error)
	AcceptInvite(ctx context.Context, callerId uuid.UUID, req *dto.AcceptInviteRequest) error
	GetMembers(ctx context.Context, callerId uuid.UUID) ([]*dto.MemberResponse, error)
}

type memberService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	appBaseURL     string
}

func NewMemberService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	appBaseURL string,
) IMemberService {
	return &memberService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		appBaseURL:     appBaseURL,
	}
}

func (s *memberService) InviteMember(ctx context.Context, callerId uuid.UUID, req *dto.InviteMemberRequest) (*dto.InviteMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	token := uuid.New().String()
	invite := entity.FamilyMember{
		Id:           uuid.New(),
		FamilyId:     member.FamilyId,
		Email:        req.Email,
		Role:         entity.MemberRoleViewer,
		InviteToken:  &token,
		InviteStatus: entity.InviteStatusPending,
		CreatedAt:    time.Now(),
	}

	// A duplicate email trips the per-family unique constraint; the
	// store's message is passed through so the client sees why.
	if err := uow.FamilyMemberRepository().Create(ctx, &invite); err != nil {
		return nil, apperror.Persistence(err)
	}

	inviteUrl := fmt.Sprintf("%s/invite/%s", s.appBaseURL, token)

	family, err := uow.FamilyRepository().FindOne(ctx, specification.ByID{ID: member.FamilyId})
	if err == nil && family != nil && s.emailService != nil {
		go func(toEmail, familyName, url string) {
			if emailErr := s.emailService.SendInvite(toEmail, familyName, url); emailErr != nil {
				fmt.Printf("Error sending invite email: %v\n", emailErr)
			}
		}(req.Email, family.Name, inviteUrl)
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeMemberInvited,
			Data: map[string]interface{}{
				"family_id": member.FamilyId,
				"email":     req.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish MEMBER_INVITED event: %v\n", err)
		}
	}

	return &dto.InviteMemberResponse{InviteUrl: inviteUrl}, nil
}

func (s *memberService) AcceptInvite(ctx context.Context, callerId uuid.UUID, req *dto.AcceptInviteRequest) error {
	if callerId == uuid.Nil {
		return apperror.Unauthenticated()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invite, err := uow.FamilyMemberRepository().FindOne(ctx, specification.ByInviteToken{Token: req.Token})
	if err != nil {
		return apperror.Persistence(err)
	}
	if invite == nil || invite.InviteStatus != entity.InviteStatusPending {
		return apperror.NotFound("invite not found")
	}

	// One membership per account; accepting a second invite is refused.
	existing, err := uow.FamilyMemberRepository().FindOne(ctx, specification.ByUserID{UserID: callerId})
	if err != nil {
		return apperror.Persistence(err)
	}
	if existing != nil {
		return apperror.Unauthorized("account already belongs to a family")
	}

	invite.UserId = &callerId
	invite.InviteStatus = entity.InviteStatusAccepted
	invite.InviteToken = nil

	if err := uow.FamilyMemberRepository().Update(ctx, invite); err != nil {
		return apperror.Persistence(err)
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeInviteAccepted,
			Data: map[string]interface{}{
				"family_id": invite.FamilyId,
				"user_id":   callerId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish INVITE_ACCEPTED event: %v\n", err)
		}
	}

	return nil
}

func (s *memberService) GetMembers(ctx context.Context, callerId uuid.UUID) ([]*dto.MemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	members, err := uow.FamilyMemberRepository().FindAll(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	result := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, &dto.MemberResponse{
			Id:           m.Id,
			Email:        m.Email,
			Role:         m.Role,
			InviteStatus: m.InviteStatus,
			CreatedAt:    m.CreatedAt,
		})
	}
	return result, nil
}
