package unitofwork

import (
	"context"

	"babybook-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FamilyRepository() contract.FamilyRepository
	FamilyMemberRepository() contract.FamilyMemberRepository
	ChildRepository() contract.ChildRepository
	BookPageRepository() contract.BookPageRepository
	MediaRepository() contract.MediaRepository
}
