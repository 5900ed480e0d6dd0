package entity

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
)

// Media is an uploaded object. StoragePath is relative to the media
// bucket; PublicURL is derived at upload time.
type Media struct {
	Id          uuid.UUID
	FamilyId    uuid.UUID
	ChildId     uuid.UUID
	StoragePath string
	PublicURL   string
	MediaType   MediaType
	FileSize    int64
	TakenAt     *time.Time
	CreatedAt   time.Time
}
