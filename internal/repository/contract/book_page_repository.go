package contract

import (
	"context"
	"encoding/json"

	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"

	"github.com/google/uuid"
)

// BookPageRepository is the only way page rows are read or written.
// Reads exclude soft-deleted rows; the targeted update methods are
// single-row writes carrying an explicit family filter so a guessed id
// from another tenant can never match.
type BookPageRepository interface {
	Create(ctx context.Context, page *entity.BookPage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookPage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookPage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateContent(ctx context.Context, id, familyId uuid.UUID, content json.RawMessage) error
	UpdateStatus(ctx context.Context, id, familyId uuid.UUID, status entity.PageStatus) error
	UpdateSortOrder(ctx context.Context, id, familyId uuid.UUID, sortOrder int) error
	SoftDelete(ctx context.Context, id, familyId uuid.UUID) error
}
