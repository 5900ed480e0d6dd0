package service

import (
	"context"
	"encoding/json"
	"testing"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(f *fixture) (ISettingsService, *fakePublisher) {
	pub := &fakePublisher{}
	return NewSettingsService(f.factory, pub), pub
}

func (f *fixture) findCover(t *testing.T) *entity.BookPage {
	t.Helper()
	cover, err := f.factory.NewUnitOfWork(context.Background()).BookPageRepository().FindOne(
		context.Background(),
		specification.FamilyOwnedBy{FamilyID: f.familyId},
		specification.ByPageType{PageType: entity.PageTypeCover},
	)
	require.NoError(t, err)
	require.NotNil(t, cover)
	return cover
}

func TestGetSettingsIsOwnerOnly(t *testing.T) {
	f := newFixture()
	svc, _ := newSettingsService(f)

	res, err := svc.GetSettings(context.Background(), f.ownerId)
	require.NoError(t, err)
	assert.Equal(t, "Smith", res.FamilyName)
	assert.Equal(t, "cotton-candy", res.ThemeId)
	require.NotNil(t, res.Child)
	assert.Equal(t, "Emma", res.Child.Name)
	assert.Len(t, res.Members, 2)

	_, err = svc.GetSettings(context.Background(), f.viewerId)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestUpdateFamilyName(t *testing.T) {
	f := newFixture()
	svc, pub := newSettingsService(f)

	err := svc.UpdateFamilyName(context.Background(), f.ownerId, &dto.UpdateFamilyNameRequest{
		FamilyName: "Smith-Jones",
	})
	require.NoError(t, err)

	family, err := f.factory.NewUnitOfWork(context.Background()).
		FamilyRepository().FindOne(context.Background(), specification.ByID{ID: f.familyId})
	require.NoError(t, err)
	assert.Equal(t, "Smith-Jones", family.Name)
	assert.Len(t, pub.payloads, 1)
}

func TestUpdateChildReplacesNameAndBirthDate(t *testing.T) {
	f := newFixture()
	svc, _ := newSettingsService(f)

	err := svc.UpdateChild(context.Background(), f.ownerId, &dto.UpdateChildRequest{
		ChildName: "Emma Rose",
		BirthDate: "2024-03-16",
	})
	require.NoError(t, err)

	child, err := f.factory.NewUnitOfWork(context.Background()).
		ChildRepository().FindOne(context.Background(), specification.FamilyOwnedBy{FamilyID: f.familyId})
	require.NoError(t, err)
	assert.Equal(t, "Emma Rose", child.Name)
	assert.Equal(t, "2024-03-16", child.DateOfBirth.Format("2006-01-02"))
}

func TestUpdateChildRejectsBadBirthDate(t *testing.T) {
	f := newFixture()
	svc, _ := newSettingsService(f)

	err := svc.UpdateChild(context.Background(), f.ownerId, &dto.UpdateChildRequest{
		ChildName: "Emma",
		BirthDate: "16/03/2024",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestUpdateCoverMergesIntoExistingContent(t *testing.T) {
	f := newFixture()
	f.addPage(entity.PageTypeCover, "2024-03-15", 0, entity.PageStatusPublished,
		`{"book_title":"Emma's First Year","cover_photo_storage_path":"families/x/cover.jpg"}`)
	svc, pub := newSettingsService(f)

	title := "Emma's Big Year"
	err := svc.UpdateCover(context.Background(), f.ownerId, &dto.UpdateCoverRequest{
		BookTitle: &title,
	})
	require.NoError(t, err)

	var content schema.CoverContent
	require.NoError(t, json.Unmarshal(f.findCover(t).Content, &content))
	assert.Equal(t, "Emma's Big Year", content.BookTitle)
	require.NotNil(t, content.CoverPhotoStoragePath)
	assert.Equal(t, "families/x/cover.jpg", *content.CoverPhotoStoragePath)
	assert.Len(t, pub.payloads, 1)
}

func TestUpdateCoverWithoutCoverPage(t *testing.T) {
	f := newFixture()
	svc, _ := newSettingsService(f)

	title := "No Book Yet"
	err := svc.UpdateCover(context.Background(), f.ownerId, &dto.UpdateCoverRequest{BookTitle: &title})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateTheme(t *testing.T) {
	f := newFixture()
	svc, _ := newSettingsService(f)

	require.NoError(t, svc.UpdateTheme(context.Background(), f.ownerId, &dto.UpdateThemeRequest{ThemeId: "ocean"}))

	family, err := f.factory.NewUnitOfWork(context.Background()).
		FamilyRepository().FindOne(context.Background(), specification.ByID{ID: f.familyId})
	require.NoError(t, err)
	assert.Equal(t, "ocean", family.ThemeId)

	err = svc.UpdateTheme(context.Background(), f.ownerId, &dto.UpdateThemeRequest{ThemeId: "vaporwave"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestSettingsMutationsAreOwnerGated(t *testing.T) {
	f := newFixture()
	svc, pub := newSettingsService(f)

	name := "x"
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(
		svc.UpdateFamilyName(context.Background(), f.viewerId, &dto.UpdateFamilyNameRequest{FamilyName: "X"})))
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(
		svc.UpdateChild(context.Background(), f.viewerId, &dto.UpdateChildRequest{ChildName: "X", BirthDate: "2024-01-01"})))
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(
		svc.UpdateCover(context.Background(), f.viewerId, &dto.UpdateCoverRequest{BookTitle: &name})))
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(
		svc.UpdateTheme(context.Background(), f.viewerId, &dto.UpdateThemeRequest{ThemeId: "ocean"})))
	assert.Empty(t, pub.payloads)
}
