package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"babybook-be/internal/entity"
	"babybook-be/internal/mapper"
	"babybook-be/internal/model"
	"babybook-be/internal/repository/contract"
	"babybook-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookPageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookPageMapper
}

func NewBookPageRepository(db *gorm.DB) contract.BookPageRepository {
	return &BookPageRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookPageMapper(),
	}
}

func (r *BookPageRepositoryImpl) Create(ctx context.Context, page *entity.BookPage) error {
	m := r.mapper.ToModel(page)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookPageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookPage, error) {
	var m model.BookPage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookPageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookPage, error) {
	var models []*model.BookPage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookPageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.BookPage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// The targeted updates below all filter on both id and family_id. GORM's
// soft-delete scope keeps them from touching tombstoned rows.

func (r *BookPageRepositoryImpl) UpdateContent(ctx context.Context, id, familyId uuid.UUID, content json.RawMessage) error {
	return r.db.WithContext(ctx).Model(&model.BookPage{}).
		Where("id = ? AND family_id = ?", id, familyId).
		Update("content", datatypes.JSON(content)).Error
}

func (r *BookPageRepositoryImpl) UpdateStatus(ctx context.Context, id, familyId uuid.UUID, status entity.PageStatus) error {
	return r.db.WithContext(ctx).Model(&model.BookPage{}).
		Where("id = ? AND family_id = ?", id, familyId).
		Update("status", string(status)).Error
}

func (r *BookPageRepositoryImpl) UpdateSortOrder(ctx context.Context, id, familyId uuid.UUID, sortOrder int) error {
	return r.db.WithContext(ctx).Model(&model.BookPage{}).
		Where("id = ? AND family_id = ?", id, familyId).
		Update("sort_order", sortOrder).Error
}

func (r *BookPageRepositoryImpl) SoftDelete(ctx context.Context, id, familyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", id, familyId).
		Delete(&model.BookPage{}).Error
}
