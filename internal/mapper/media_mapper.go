package mapper

import (
	"babybook-be/internal/entity"
	"babybook-be/internal/model"
)

type MediaMapper struct{}

func NewMediaMapper() *MediaMapper {
	return &MediaMapper{}
}

func (m *MediaMapper) ToEntity(md *model.Media) *entity.Media {
	if md == nil {
		return nil
	}
	return &entity.Media{
		Id:          md.Id,
		FamilyId:    md.FamilyId,
		ChildId:     md.ChildId,
		StoragePath: md.StoragePath,
		PublicURL:   md.PublicURL,
		MediaType:   entity.MediaType(md.MediaType),
		FileSize:    md.FileSize,
		TakenAt:     md.TakenAt,
		CreatedAt:   md.CreatedAt,
	}
}

func (m *MediaMapper) ToModel(md *entity.Media) *model.Media {
	if md == nil {
		return nil
	}
	return &model.Media{
		Id:          md.Id,
		FamilyId:    md.FamilyId,
		ChildId:     md.ChildId,
		StoragePath: md.StoragePath,
		PublicURL:   md.PublicURL,
		MediaType:   string(md.MediaType),
		FileSize:    md.FileSize,
		TakenAt:     md.TakenAt,
		CreatedAt:   md.CreatedAt,
	}
}

func (m *MediaMapper) ToEntities(media []*model.Media) []*entity.Media {
	entities := make([]*entity.Media, len(media))
	for i, md := range media {
		entities[i] = m.ToEntity(md)
	}
	return entities
}
