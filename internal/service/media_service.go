package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/dto"
	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/pkg/storage"

	"github.com/google/uuid"
)

type IMediaService interface {
	Upload(ctx context.Context, callerId uuid.UUID, filename, contentType string, size int64, body io.Reader) (*dto.UploadMediaResponse, error)
	List(ctx context.Context, callerId uuid.UUID) (*dto.MediaListResponse, error)
}

type mediaService struct {
	uowFactory unitofwork.RepositoryFactory
	store      storage.ObjectStore
}

func NewMediaService(uowFactory unitofwork.RepositoryFactory, store storage.ObjectStore) IMediaService {
	return &mediaService{
		uowFactory: uowFactory,
		store:      store,
	}
}

func mediaTypeFor(contentType string) (entity.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return entity.MediaTypePhoto, true
	case strings.HasPrefix(contentType, "audio/"):
		return entity.MediaTypeAudio, true
	case strings.HasPrefix(contentType, "video/"):
		return entity.MediaTypeVideo, true
	}
	return "", false
}

func (s *mediaService) Upload(ctx context.Context, callerId uuid.UUID, filename, contentType string, size int64, body io.Reader) (*dto.UploadMediaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveOwnerContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	// The store is nil when object storage failed to initialize at startup.
	if s.store == nil {
		return nil, apperror.Persistence(fmt.Errorf("object store unavailable"))
	}

	mediaType, ok := mediaTypeFor(contentType)
	if !ok {
		return nil, apperror.Validation([]apperror.FieldViolation{{
			Field: "file", Rule: "content_type", Message: fmt.Sprintf("unsupported content type %q", contentType),
		}})
	}

	child, err := uow.ChildRepository().FindOne(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if child == nil {
		return nil, apperror.NotFound("family has no child yet")
	}

	// Keys are namespaced by family so storage paths never collide
	// across tenants even with identical filenames.
	key := fmt.Sprintf("families/%s/media/%s%s", member.FamilyId, uuid.New(), path.Ext(filename))

	if err := s.store.Upload(ctx, key, contentType, body); err != nil {
		return nil, apperror.Persistence(err)
	}

	media := entity.Media{
		Id:          uuid.New(),
		FamilyId:    member.FamilyId,
		ChildId:     child.Id,
		StoragePath: key,
		PublicURL:   s.store.PublicURL(key),
		MediaType:   mediaType,
		FileSize:    size,
		CreatedAt:   time.Now(),
	}

	if err := uow.MediaRepository().Create(ctx, &media); err != nil {
		return nil, apperror.Persistence(err)
	}

	return &dto.UploadMediaResponse{
		Id:          media.Id,
		StoragePath: media.StoragePath,
		PublicUrl:   media.PublicURL,
		MediaType:   media.MediaType,
		SizeBytes:   media.FileSize,
		CreatedAt:   media.CreatedAt,
	}, nil
}

func (s *mediaService) List(ctx context.Context, callerId uuid.UUID) (*dto.MediaListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := resolveMemberContext(ctx, uow, callerId)
	if err != nil {
		return nil, err
	}

	items, err := uow.MediaRepository().FindAll(ctx, specification.FamilyOwnedBy{FamilyID: member.FamilyId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := dto.MediaListResponse{Items: make([]dto.UploadMediaResponse, 0, len(items))}
	for _, m := range items {
		res.Items = append(res.Items, dto.UploadMediaResponse{
			Id:          m.Id,
			StoragePath: m.StoragePath,
			PublicUrl:   m.PublicURL,
			MediaType:   m.MediaType,
			SizeBytes:   m.FileSize,
			CreatedAt:   m.CreatedAt,
		})
	}
	return &res, nil
}
