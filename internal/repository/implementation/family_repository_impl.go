package implementation

import (
	"context"
	"errors"

	"babybook-be/internal/entity"
	"babybook-be/internal/mapper"
	"babybook-be/internal/model"
	"babybook-be/internal/repository/contract"
	"babybook-be/internal/repository/scope"
	"babybook-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FamilyMapper
}

func NewFamilyRepository(db *gorm.DB) contract.FamilyRepository {
	return &FamilyRepositoryImpl{
		db:     db,
		mapper: mapper.NewFamilyMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FamilyRepositoryImpl) Create(ctx context.Context, family *entity.Family) error {
	m := r.mapper.ToModel(family)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*family = *r.mapper.ToEntity(m)
	return nil
}

func (r *FamilyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Family, error) {
	var m model.Family
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FamilyRepositoryImpl) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&model.Family{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *FamilyRepositoryImpl) UpdateTheme(ctx context.Context, id uuid.UUID, themeId string) error {
	return r.db.WithContext(ctx).Model(&model.Family{}).
		Where("id = ?", id).
		Update("theme_id", themeId).Error
}

type FamilyMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FamilyMemberMapper
}

func NewFamilyMemberRepository(db *gorm.DB) contract.FamilyMemberRepository {
	return &FamilyMemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewFamilyMemberMapper(),
	}
}

func (r *FamilyMemberRepositoryImpl) Create(ctx context.Context, member *entity.FamilyMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *FamilyMemberRepositoryImpl) Update(ctx context.Context, member *entity.FamilyMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *FamilyMemberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FamilyMember, error) {
	var m model.FamilyMember
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// FindAll lists members oldest first, so the owner leads the roster.
func (r *FamilyMemberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FamilyMember, error) {
	var models []*model.FamilyMember
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FamilyMemberRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.FamilyMember{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ChildRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChildMapper
}

func NewChildRepository(db *gorm.DB) contract.ChildRepository {
	return &ChildRepositoryImpl{
		db:     db,
		mapper: mapper.NewChildMapper(),
	}
}

func (r *ChildRepositoryImpl) Create(ctx context.Context, child *entity.Child) error {
	m := r.mapper.ToModel(child)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*child = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChildRepositoryImpl) Update(ctx context.Context, child *entity.Child) error {
	m := r.mapper.ToModel(child)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*child = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChildRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Child, error) {
	var m model.Child
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
