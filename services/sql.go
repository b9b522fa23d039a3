package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/services/repositories"
	"github.com/ascend-app/ascend_api/shared"
)

// SqlService owns the gorm connection and the repository set. The driver is
// selected with DB_DRIVER: sqlite (default) or postgres.
type SqlService struct {
	context.DefaultService
	db *gorm.DB

	driver   string
	database string

	profiles   *repositories.ProfileRepository
	missions   *repositories.MissionRepository
	focus      *repositories.FocusRepository
	notes      *repositories.NoteRepository
	rateLimits *repositories.RateLimitRepository
}

const SQL_SVC = "sql_svc"

// Id returns Service ID
func (ds SqlService) Id() string {
	return SQL_SVC
}

// Db Access to raw gorm db
func (ds SqlService) Db() *gorm.DB {
	return ds.db
}

func (ds *SqlService) Profiles() *repositories.ProfileRepository {
	return ds.profiles
}

func (ds *SqlService) Missions() *repositories.MissionRepository {
	return ds.missions
}

func (ds *SqlService) Focus() *repositories.FocusRepository {
	return ds.focus
}

func (ds *SqlService) Notes() *repositories.NoteRepository {
	return ds.notes
}

func (ds *SqlService) RateLimits() *repositories.RateLimitRepository {
	return ds.rateLimits
}

// Configure the service
func (ds *SqlService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")
	if ds.driver == "" {
		ds.driver = "sqlite"
	}

	switch ds.driver {
	case "sqlite":
		ds.database = os.Getenv("DB_DATABASE")
		if ds.database == "" {
			ds.database = "ascend.db"
		}
	case "postgres":
		ds.database = os.Getenv("DATABASE_URL")
		if ds.database == "" {
			ds.database = postgresDSNFromEnv()
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", ds.driver)
	}

	return ds.DefaultService.Configure(ctx)
}

func postgresDSNFromEnv() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "ascend_api")
	sslmode := envOr("DB_SSLMODE", "disable")
	timezone := envOr("DB_TIMEZONE", "UTC")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Start opens the connection, retrying for remote drivers, and migrates any
// tables that have changed since last runtime.
func (ds *SqlService) Start() (err error) {
	ds.db, err = ds.open()
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.Profile{},
		&model.Mission{},
		&model.FocusSession{},
		&model.Note{},
		&model.RateLimit{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.profiles = repositories.NewProfileRepository(ds.db)
	ds.missions = repositories.NewMissionRepository(ds.db)
	ds.focus = repositories.NewFocusRepository(ds.db)
	ds.notes = repositories.NewNoteRepository(ds.db)
	ds.rateLimits = repositories.NewRateLimitRepository(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqlService) open() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if ds.driver == "sqlite" {
		return gorm.Open(sqlite.Open(ds.database), cfg)
	}

	// Remote databases may not be up yet, retry with backoff.
	maxRetries := 10
	retryDelay := time.Second

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		db, err = gorm.Open(postgres.Open(ds.database), cfg)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					return db, nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			break
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
	return nil, err
}

func (ds *SqlService) Shutdown() {
	if ds.db == nil {
		return
	}
	if sqlDB, err := ds.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// HandleError maps database errors onto the API error taxonomy.
func (ds *SqlService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var errorType string
	var appErr *shared.AppError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		errorType = "NOT_FOUND"
		appErr = shared.NewNotFoundError(err, "Not Found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		errorType = "CONFLICT"
		appErr = shared.NewAppError(409, err, "Conflict", nil)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		errorType = "FOREIGN_KEY_VIOLATION"
		appErr = shared.NewBadRequestError(err, "Bad Request")
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			errorType = "UNIQUE_CONSTRAINT"
			appErr = shared.NewAppError(409, err, "Conflict", nil)
		} else {
			errorType = "INTERNAL_ERROR"
			appErr = shared.NewInternalError(err)
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": appErr.StatusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if appErr.StatusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return appErr
}
