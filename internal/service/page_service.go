package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/internal/schema"
	"babybook-be/pkg/events"
	pktNats "babybook-be/pkg/nats"

	"github.com/google/uuid"
)

type IPageService interface {
	CreatePage(ctx context.Context, callerId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error)
	UpdatePage(ctx context.Context, callerId uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error)
	PublishPage(ctx context.Context, callerId, pageId uuid.UUID) (*dto.PageResponse, error)
	DeletePage(ctx context.Context, callerId, pageId uuid.UUID) error
	UpdateSortOrder(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSortOrderRequest) error
}

type pageService struct {
	uowFactory       unitofwork.RepositoryFactory
	registry         *schema.Registry
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewPageService(
	uowFactory unitofwork.RepositoryFactory,
	registry *schema.Registry,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IPageService {
	return &pageService{
		uowFactory:       uowFactory,
		registry:         registry,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// resolveOwnerContext is the gate in front of every mutation. The order
// is fixed: missing identity first, then membership, then role. The
// family id used for all subsequent filters comes from the resolved
// membership row, never from the request.
func resolveOwnerContext(ctx context.Context, uow unitofwork.UnitOfWork, callerId uuid.UUID) (*entity.FamilyMember, error) {
	if callerId == uuid.Nil {
		return nil, apperror.Unauthenticated()
	}

	member, err := uow.FamilyMemberRepository().FindOne(ctx, specification.ByUserID{UserID: callerId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if member == nil {
		return nil, apperror.Unauthorized("no family membership")
	}
	if member.Role != entity.MemberRoleOwner {
		return nil, apperror.Unauthorized("only the book owner can do this")
	}

	return member, nil
}

func (s *pageService) CreatePage(ctx context.Context, callerId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	if !req.PageType.Valid() {
		return nil, apperror.Validation([]apperror.FieldViolation{{
			Field:   "page_type",
			Rule:    "oneof",
			Message: fmt.Sprintf("unknown page type %q", req.PageType),
		}})
	}

	if _, err := s.registry.Validate(req.PageType, req.Content); err != nil {
		return nil, err
	}

	pageDate, err := time.Parse("2006-01-02", req.PageDate)
	if err != nil {
		return nil, apperror.Validation([]apperror.FieldViolation{{
			Field: "page_date", Rule: "datetime", Message: "must be a date in YYYY-MM-DD format",
		}})
	}

	child, err := uow.ChildRepository().FindOne(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if child == nil {
		return nil, apperror.NotFound("family has no child yet")
	}

	// New pages slot in after every existing page.
	count, err := uow.BookPageRepository().Count(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	page := entity.BookPage{
		Id:              uuid.New(),
		FamilyId:        member.FamilyId,
		ChildId:         child.Id,
		PageType:        req.PageType,
		TemplateVariant: req.TemplateVariant,
		PageDate:        pageDate,
		SortOrder:       int(count),
		Status:          entity.PageStatusDraft,
		Content:         req.Content,
		CreatedAt:       time.Now(),
	}

	if err := uow.BookPageRepository().Create(ctx, &page); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.invalidateBookView(ctx, member.FamilyId)

	return pageToResponse(&page), nil
}

func (s *pageService) UpdatePage(ctx context.Context, callerId uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	page, err := uow.BookPageRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.FamilyOwnedBy{FamilyID: member.FamilyId},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if page == nil {
		return nil, apperror.NotFound("page not found")
	}

	// Content is validated against the page's stored type; the type
	// itself is immutable after creation.
	if _, err := s.registry.Validate(page.PageType, req.Content); err != nil {
		return nil, err
	}

	if err := uow.BookPageRepository().UpdateContent(ctx, page.Id, member.FamilyId, req.Content); err != nil {
		return nil, apperror.Persistence(err)
	}

	page.Content = req.Content
	now := time.Now()
	page.UpdatedAt = &now

	s.invalidateBookView(ctx, member.FamilyId)

	return pageToResponse(page), nil
}

func (s *pageService) PublishPage(ctx context.Context, callerId, pageId uuid.UUID) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	page, err := uow.BookPageRepository().FindOne(ctx,
		specification.ByID{ID: pageId},
		specification.FamilyOwnedBy{FamilyID: member.FamilyId},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if page == nil {
		return nil, apperror.NotFound("page not found")
	}

	// Publishing an already-published page is a no-op, not an error.
	if page.Status != entity.PageStatusPublished {
		if err := uow.BookPageRepository().UpdateStatus(ctx, page.Id, member.FamilyId, entity.PageStatusPublished); err != nil {
			return nil, apperror.Persistence(err)
		}
		page.Status = entity.PageStatusPublished

		s.publishEvent(ctx, events.TypePagePublished, map[string]interface{}{
			"page_id":   page.Id,
			"family_id": member.FamilyId,
			"page_type": page.PageType,
		})
		s.invalidateBookView(ctx, member.FamilyId)
	}

	return pageToResponse(page), nil
}

func (s *pageService) DeletePage(ctx context.Context, callerId, pageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	page, err := uow.BookPageRepository().FindOne(ctx,
		specification.ByID{ID: pageId},
		specification.FamilyOwnedBy{FamilyID: member.FamilyId},
	)
	if err != nil {
		return apperror.Persistence(err)
	}
	if page == nil {
		return apperror.NotFound("page not found")
	}

	if err := uow.BookPageRepository().SoftDelete(ctx, page.Id, member.FamilyId); err != nil {
		return apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.TypePageDeleted, map[string]interface{}{
		"page_id":   page.Id,
		"family_id": member.FamilyId,
	})
	s.invalidateBookView(ctx, member.FamilyId)

	return nil
}

// UpdateSortOrder assigns each page its index in the submitted order.
// The per-page updates run concurrently and independently; a failure in
// one does not roll back the others, so a partial reorder is possible
// and the client is expected to refetch.
func (s *pageService) UpdateSortOrder(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSortOrderRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errs := make([]error, len(req.PageIds))

	for i, pageId := range req.PageIds {
		wg.Add(1)
		go func(idx int, id uuid.UUID) {
			defer wg.Done()
			errs[idx] = uow.BookPageRepository().UpdateSortOrder(ctx, id, member.FamilyId, idx)
		}(i, pageId)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return apperror.Persistence(e)
		}
	}

	s.invalidateBookView(ctx, member.FamilyId)

	return nil
}

func (s *pageService) invalidateBookView(ctx context.Context, familyId uuid.UUID) {
	msg := dto.InvalidateBookViewMessage{FamilyId: familyId}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish book invalidation for %s: %v\n", familyId, err)
	}
}

func (s *pageService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func pageToResponse(page *entity.BookPage) *dto.PageResponse {
	return &dto.PageResponse{
		Id:              page.Id,
		PageType:        page.PageType,
		TemplateVariant: page.TemplateVariant,
		PageDate:        page.PageDate.Format("2006-01-02"),
		SortOrder:       page.SortOrder,
		Status:          page.Status,
		Content:         page.Content,
		CreatedAt:       page.CreatedAt,
		UpdatedAt:       page.UpdatedAt,
	}
}
