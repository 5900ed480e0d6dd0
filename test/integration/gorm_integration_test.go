package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"babybook-be/internal/entity"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.BookPageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Family Repository", func(t *testing.T) {
		count, err := uow.FamilyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Family count: %d", count)
	})

	t.Run("Check Book Page Repository", func(t *testing.T) {
		count, err := uow.BookPageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("BookPage count: %d", count)
	})

	t.Run("Check Transactional Family Setup", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		familyId := uuid.New()
		family := &entity.Family{
			Id:      familyId,
			Name:    "Integration Family",
			ThemeId: "cotton-candy",
		}
		err = uow.FamilyRepository().Create(ctx, family)
		assert.NoError(t, err)

		member := &entity.FamilyMember{
			Id:           uuid.New(),
			FamilyId:     familyId,
			UserId:       &userId,
			Email:        user.Email,
			Role:         entity.MemberRoleOwner,
			InviteStatus: entity.InviteStatusAccepted,
		}
		err = uow.FamilyMemberRepository().Create(ctx, member)
		assert.NoError(t, err)

		childId := uuid.New()
		child := &entity.Child{
			Id:          childId,
			FamilyId:    familyId,
			Name:        "Integration Kid",
			DateOfBirth: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		err = uow.ChildRepository().Create(ctx, child)
		assert.NoError(t, err)

		page := &entity.BookPage{
			Id:       uuid.New(),
			FamilyId: familyId,
			ChildId:  childId,
			PageType: entity.PageTypeCover,
			PageDate: child.DateOfBirth,
			Status:   entity.PageStatusPublished,
			Content:  json.RawMessage(`{"book_title":"Integration Book"}`),
		}
		err = uow.BookPageRepository().Create(ctx, page)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Family with Cover Page in Transaction")
	})
}
