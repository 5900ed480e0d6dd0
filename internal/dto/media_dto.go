package dto

import (
	"time"

	"babybook-be/internal/entity"

	"github.com/google/uuid"
)

type UploadMediaResponse struct {
	Id          uuid.UUID        `json:"id"`
	StoragePath string           `json:"storage_path"`
	PublicUrl   string           `json:"public_url"`
	MediaType   entity.MediaType `json:"media_type"`
	SizeBytes   int64            `json:"size_bytes"`
	CreatedAt   time.Time        `json:"created_at"`
}

type MediaListResponse struct {
	Items []UploadMediaResponse `json:"items"`
}
