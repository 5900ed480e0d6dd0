package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/pkg/viewcache"

	"github.com/google/uuid"
)

type IBookService interface {
	GetBook(ctx context.Context, callerId uuid.UUID) (*dto.BookResponse, error)
	GetPage(ctx context.Context, callerId, pageId uuid.UUID) (*dto.BookPageDetailResponse, error)
}

const bookViewTTL = 5 * time.Minute

// BookViewCacheKey is the cache key for a family's rendered viewer book.
// Only the viewer (published-only) variant is cached; owners always read
// through so drafts show up immediately.
func BookViewCacheKey(familyId uuid.UUID) string {
	return fmt.Sprintf("bookview:%s", familyId)
}

type bookService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      viewcache.Cache
}

func NewBookService(uowFactory unitofwork.RepositoryFactory, cache viewcache.Cache) IBookService {
	return &bookService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// resolveMemberContext is the read-side gate: any accepted member may
// look at the book. A caller without a membership gets NotFound rather
// than Unauthorized so outsiders can't probe which books exist.
func resolveMemberContext(ctx context.Context, uow unitofwork.UnitOfWork, callerId uuid.UUID) (*entity.FamilyMember, error) {
	if callerId == uuid.Nil {
		return nil, apperror.Unauthenticated()
	}

	member, err := uow.FamilyMemberRepository().FindOne(ctx, specification.ByUserID{UserID: callerId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if member == nil {
		return nil, apperror.NotFound("book not found")
	}

	return member, nil
}

func (s *bookService) GetBook(ctx context.Context, callerId uuid.UUID) (*dto.BookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveMemberContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}
	isOwner := member.Role == entity.MemberRoleOwner

	if !isOwner {
		if data, found := s.cache.Get(ctx, BookViewCacheKey(member.FamilyId)); found {
			var cached dto.BookResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	family, err := uow.FamilyRepository().FindOne(ctx, specification.ByID{ID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if family == nil {
		return nil, apperror.NotFound("book not found")
	}

	child, err := uow.ChildRepository().FindOne(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	pages, err := s.visiblePages(ctx, uow, member.FamilyId, isOwner)
	if err != nil {
		return nil, err
	}

	res := dto.BookResponse{
		FamilyId:   family.Id,
		FamilyName: family.Name,
		ThemeId:    family.ThemeId,
		Pages:      make([]dto.PageResponse, 0, len(pages)),
		IsOwner:    isOwner,
	}
	if child != nil {
		res.Child = &dto.ChildDTO{
			Id:        child.Id,
			Name:      child.Name,
			Gender:    child.Gender,
			BirthDate: child.DateOfBirth,
		}
	}
	for _, page := range pages {
		res.Pages = append(res.Pages, *renderPage(page, isOwner))
	}

	if !isOwner {
		if data, err := json.Marshal(res); err == nil {
			s.cache.Set(ctx, BookViewCacheKey(member.FamilyId), data, bookViewTTL)
		}
	}

	return &res, nil
}

func (s *bookService) GetPage(ctx context.Context, callerId, pageId uuid.UUID) (*dto.BookPageDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveMemberContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}
	isOwner := member.Role == entity.MemberRoleOwner

	// Navigation needs the whole visible sequence anyway, so the page is
	// located inside it rather than fetched separately. A draft or
	// foreign page simply isn't in the sequence and comes back NotFound.
	pages, err := s.visiblePages(ctx, uow, member.FamilyId, isOwner)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, page := range pages {
		if page.Id == pageId {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperror.NotFound("page not found")
	}

	nav := dto.NavigationInfo{
		CurrentIndex: index,
		TotalPages:   len(pages),
	}
	if index > 0 {
		nav.PrevPageId = &pages[index-1].Id
	}
	if index < len(pages)-1 {
		nav.NextPageId = &pages[index+1].Id
	}

	return &dto.BookPageDetailResponse{
		Page:       *renderPage(pages[index], isOwner),
		Navigation: nav,
	}, nil
}

func (s *bookService) visiblePages(ctx context.Context, uow unitofwork.UnitOfWork, familyId uuid.UUID, isOwner bool) ([]*entity.BookPage, error) {
	specs := []specification.Specification{
		specification.FamilyOwnedBy{FamilyID: familyId},
		specification.PageSequence{},
	}
	if !isOwner {
		specs = append(specs, specification.PublishedOnly{})
	}

	pages, err := uow.BookPageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return pages, nil
}

// renderPage converts a page for output, sealing letters whose reveal
// date is still in the future for anyone but the owner.
func renderPage(page *entity.BookPage, isOwner bool) *dto.PageResponse {
	res := pageToResponse(page)
	if isOwner || page.PageType != entity.PageTypeLetter {
		return res
	}

	var letter struct {
		RevealDate string `json:"reveal_date"`
	}
	if err := json.Unmarshal(page.Content, &letter); err != nil || letter.RevealDate == "" {
		return res
	}
	revealDate, err := time.Parse("2006-01-02", letter.RevealDate)
	if err != nil {
		return res
	}
	if revealDate.After(time.Now()) {
		res.Content = nil
		res.ContentLocked = true
	}
	return res
}
