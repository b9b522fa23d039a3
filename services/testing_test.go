package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/services/repositories"
)

// newTestSqlService opens a throwaway sqlite database with the full schema.
func newTestSqlService(t *testing.T) *SqlService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Mission{},
		&model.FocusSession{},
		&model.Note{},
		&model.RateLimit{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return &SqlService{
		db:         db,
		driver:     "sqlite",
		profiles:   repositories.NewProfileRepository(db),
		missions:   repositories.NewMissionRepository(db),
		focus:      repositories.NewFocusRepository(db),
		notes:      repositories.NewNoteRepository(db),
		rateLimits: repositories.NewRateLimitRepository(db),
	}
}

func spendReq(attribute string) dto.SpendAttributeRequest {
	return dto.SpendAttributeRequest{Attribute: attribute}
}
