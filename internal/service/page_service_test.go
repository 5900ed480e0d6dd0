package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageService(f *fixture) (IPageService, *fakePublisher) {
	pub := &fakePublisher{}
	return NewPageService(f.factory, schema.NewRegistry(), pub, nil), pub
}

const validJournal = `{"title":"First day","content_tiptap":{"type":"doc"}}`

func TestCreatePageRequiresAuthentication(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: "garbage", // even an invalid type must not shadow the auth check
		PageDate: "not-a-date",
		Content:  json.RawMessage(`{}`),
	}

	_, err := svc.CreatePage(context.Background(), uuid.Nil, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestCreatePageRejectsViewer(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(validJournal),
	}

	_, err := svc.CreatePage(context.Background(), f.viewerId, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestCreatePageRejectsOutsider(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(validJournal),
	}

	_, err := svc.CreatePage(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestCreatePageStartsAsDraftWithNextSortOrder(t *testing.T) {
	f := newFixture()
	f.addPage(entity.PageTypeCover, "2024-03-15", 0, entity.PageStatusPublished, `{"book_title":"Emma"}`)
	f.addPage(entity.PageTypeJournal, "2024-04-01", 1, entity.PageStatusDraft, validJournal)
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(validJournal),
	}

	res, err := svc.CreatePage(context.Background(), f.ownerId, req)
	require.NoError(t, err)

	assert.Equal(t, entity.PageStatusDraft, res.Status)
	assert.Equal(t, 2, res.SortOrder)
	assert.Equal(t, "2024-06-01", res.PageDate)
}

func TestCreatePageSortOrderIgnoresDeletedPages(t *testing.T) {
	f := newFixture()
	f.addPage(entity.PageTypeCover, "2024-03-15", 0, entity.PageStatusPublished, `{"book_title":"Emma"}`)
	deleted := f.addPage(entity.PageTypeJournal, "2024-04-01", 1, entity.PageStatusDraft, validJournal)
	svc, _ := newPageService(f)

	require.NoError(t, svc.DeletePage(context.Background(), f.ownerId, deleted))

	res, err := svc.CreatePage(context.Background(), f.ownerId, &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(validJournal),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.SortOrder)
}

func TestCreatePageRejectsInvalidContent(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(`{"title":""}`),
	}

	_, err := svc.CreatePage(context.Background(), f.ownerId, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestCreatePageRejectsUnknownType(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	req := &dto.CreatePageRequest{
		PageType: "scrapbook",
		PageDate: "2024-06-01",
		Content:  json.RawMessage(`{}`),
	}

	_, err := svc.CreatePage(context.Background(), f.ownerId, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestUpdatePageValidatesAgainstStoredType(t *testing.T) {
	f := newFixture()
	pageId := f.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusDraft, validJournal)
	svc, _ := newPageService(f)

	// Milestone-shaped content must not pass a journal page's schema.
	_, err := svc.UpdatePage(context.Background(), f.ownerId, &dto.UpdatePageRequest{
		Id:      pageId,
		Content: json.RawMessage(`{"milestone_name":"First steps","category":"physical","achieved_at":"2024-06-01"}`),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	res, err := svc.UpdatePage(context.Background(), f.ownerId, &dto.UpdatePageRequest{
		Id:      pageId,
		Content: json.RawMessage(`{"title":"Renamed","content_tiptap":{"type":"doc"}}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed","content_tiptap":{"type":"doc"}}`, string(res.Content))
}

func TestUpdatePageForeignPageIsNotFound(t *testing.T) {
	f := newFixture()
	svc, _ := newPageService(f)

	// A page in some other family must be indistinguishable from a
	// missing one.
	other := newFixture()
	foreignId := other.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusDraft, validJournal)
	f.store.pages = append(f.store.pages, other.store.pages...)

	_, err := svc.UpdatePage(context.Background(), f.ownerId, &dto.UpdatePageRequest{
		Id:      foreignId,
		Content: json.RawMessage(validJournal),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestPublishPageIsIdempotent(t *testing.T) {
	f := newFixture()
	pageId := f.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusDraft, validJournal)
	svc, _ := newPageService(f)

	res, err := svc.PublishPage(context.Background(), f.ownerId, pageId)
	require.NoError(t, err)
	assert.Equal(t, entity.PageStatusPublished, res.Status)

	res, err = svc.PublishPage(context.Background(), f.ownerId, pageId)
	require.NoError(t, err)
	assert.Equal(t, entity.PageStatusPublished, res.Status)
}

func TestDeletePageHidesItFromReads(t *testing.T) {
	f := newFixture()
	pageId := f.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusPublished, validJournal)
	svc, _ := newPageService(f)

	require.NoError(t, svc.DeletePage(context.Background(), f.ownerId, pageId))

	_, err := svc.PublishPage(context.Background(), f.ownerId, pageId)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	// Deleting again is NotFound, not an error on the tombstone.
	err = svc.DeletePage(context.Background(), f.ownerId, pageId)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateSortOrderAssignsIndexes(t *testing.T) {
	f := newFixture()
	a := f.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusPublished, validJournal)
	b := f.addPage(entity.PageTypeJournal, "2024-04-01", 1, entity.PageStatusPublished, validJournal)
	c := f.addPage(entity.PageTypeJournal, "2024-04-01", 2, entity.PageStatusPublished, validJournal)
	svc, _ := newPageService(f)

	err := svc.UpdateSortOrder(context.Background(), f.ownerId, &dto.UpdateSortOrderRequest{
		PageIds: []uuid.UUID{c, a, b},
	})
	require.NoError(t, err)

	got := map[uuid.UUID]int{}
	for _, p := range f.store.pages {
		got[p.Id] = p.SortOrder
	}
	assert.Equal(t, 0, got[c])
	assert.Equal(t, 1, got[a])
	assert.Equal(t, 2, got[b])
}

func TestUpdateSortOrderSurfacesStoreFailure(t *testing.T) {
	f := newFixture()
	a := f.addPage(entity.PageTypeJournal, "2024-04-01", 0, entity.PageStatusPublished, validJournal)
	svc, _ := newPageService(f)

	f.store.fail("page.updateSortOrder", errors.New("connection reset"))

	err := svc.UpdateSortOrder(context.Background(), f.ownerId, &dto.UpdateSortOrderRequest{
		PageIds: []uuid.UUID{a},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistenceFailed, apperror.KindOf(err))
}

func TestMutationsPublishInvalidation(t *testing.T) {
	f := newFixture()
	svc, pub := newPageService(f)

	res, err := svc.CreatePage(context.Background(), f.ownerId, &dto.CreatePageRequest{
		PageType: entity.PageTypeJournal,
		PageDate: "2024-06-01",
		Content:  json.RawMessage(validJournal),
	})
	require.NoError(t, err)
	_, err = svc.PublishPage(context.Background(), f.ownerId, res.Id)
	require.NoError(t, err)

	require.Len(t, pub.payloads, 2)
	var msg dto.InvalidateBookViewMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, f.familyId, msg.FamilyId)
}
