package contract

import (
	"context"

	"babybook-be/internal/entity"
	"babybook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FamilyRepository interface {
	Create(ctx context.Context, family *entity.Family) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Family, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateTheme(ctx context.Context, id uuid.UUID, themeId string) error
}

type FamilyMemberRepository interface {
	Create(ctx context.Context, member *entity.FamilyMember) error
	Update(ctx context.Context, member *entity.FamilyMember) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FamilyMember, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FamilyMember, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ChildRepository interface {
	Create(ctx context.Context, child *entity.Child) error
	Update(ctx context.Context, child *entity.Child) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Child, error)
}
