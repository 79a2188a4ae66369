package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(0)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.CashProjectModel{},
		&model.CashGroupModel{},
		&model.CashEntryRowModel{},
		&model.CashTransactionModel{},
		&model.SharingModel{},
		&model.SubscriptionModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

type fixture struct {
	db      *gorm.DB
	owner   *entity.User
	project *entity.CashProject
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	ctx := context.Background()

	owner := entity.NewUser("owner@example.com", "hash", "Jane", "Doe", "UTC", "USD")
	if err := NewUserRepository(db).Create(ctx, owner); err != nil {
		t.Fatal(err)
	}

	project := entity.NewCashProject(owner.ID, "Household", decimal.NewFromInt(1000), "USD", "UTC",
		mustDate(t, "2026-01-15"), entity.EncodeWeekSchedule(false, false))
	if err := NewProjectRepository(db).Create(ctx, project); err != nil {
		t.Fatal(err)
	}

	return &fixture{db: db, owner: owner, project: project}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}
