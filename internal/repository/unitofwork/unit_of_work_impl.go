package unitofwork

import (
	"context"
	"fmt"

	"babybook-be/internal/repository/contract"
	"babybook-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FamilyRepository() contract.FamilyRepository {
	return implementation.NewFamilyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FamilyMemberRepository() contract.FamilyMemberRepository {
	return implementation.NewFamilyMemberRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChildRepository() contract.ChildRepository {
	return implementation.NewChildRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookPageRepository() contract.BookPageRepository {
	return implementation.NewBookPageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MediaRepository() contract.MediaRepository {
	return implementation.NewMediaRepository(u.getDB())
}
