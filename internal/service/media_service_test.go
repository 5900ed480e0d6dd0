package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"babybook-be/internal/apperror"
	"babybook-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	mu      sync.Mutex
	uploads map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: make(map[string]string)}
}

func (s *fakeObjectStore) Upload(_ context.Context, key, contentType string, _ io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[key] = contentType
	return nil
}

func (s *fakeObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestUploadStoresUnderFamilyPath(t *testing.T) {
	f := newFixture()
	store := newFakeObjectStore()
	svc := NewMediaService(f.factory, store)

	res, err := svc.Upload(context.Background(), f.ownerId,
		"first-smile.jpg", "image/jpeg", 1024, strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.StoragePath, "families/"+f.familyId.String()+"/media/"), res.StoragePath)
	assert.True(t, strings.HasSuffix(res.StoragePath, ".jpg"), res.StoragePath)
	assert.Equal(t, "https://cdn.example.com/"+res.StoragePath, res.PublicUrl)
	assert.Equal(t, entity.MediaTypePhoto, res.MediaType)
	assert.Equal(t, int64(1024), res.SizeBytes)

	store.mu.Lock()
	assert.Equal(t, "image/jpeg", store.uploads[res.StoragePath])
	store.mu.Unlock()

	list, err := svc.List(context.Background(), f.viewerId)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, res.Id, list.Items[0].Id)
}

func TestUploadWithoutObjectStore(t *testing.T) {
	f := newFixture()
	svc := NewMediaService(f.factory, nil)

	_, err := svc.Upload(context.Background(), f.ownerId,
		"first-smile.jpg", "image/jpeg", 1024, strings.NewReader("jpegbytes"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistenceFailed, apperror.KindOf(err))

	// Listing never touches the store.
	_, err = svc.List(context.Background(), f.viewerId)
	assert.NoError(t, err)
}

func TestUploadRejectsUnsupportedContentType(t *testing.T) {
	f := newFixture()
	svc := NewMediaService(f.factory, newFakeObjectStore())

	_, err := svc.Upload(context.Background(), f.ownerId,
		"notes.pdf", "application/pdf", 10, strings.NewReader("%PDF"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestUploadIsOwnerGated(t *testing.T) {
	f := newFixture()
	store := newFakeObjectStore()
	svc := NewMediaService(f.factory, store)

	_, err := svc.Upload(context.Background(), uuid.Nil,
		"a.jpg", "image/jpeg", 1, strings.NewReader("x"))
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	_, err = svc.Upload(context.Background(), f.viewerId,
		"a.jpg", "image/jpeg", 1, strings.NewReader("x"))
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	store.mu.Lock()
	assert.Empty(t, store.uploads)
	store.mu.Unlock()
}
