package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
)

// RateLimitRepository handles request counters for the rate limit middleware
type RateLimitRepository struct {
	BaseRepository
}

func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *RateLimitRepository) GetRateLimit(identifier, endpointType string) (*model.RateLimit, error) {
	var rateLimit model.RateLimit
	err := ds.db.Where("identifier = ? AND endpoint_type = ?", identifier, endpointType).First(&rateLimit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rateLimit, nil
}

func (ds *RateLimitRepository) SaveRateLimit(rateLimit *model.RateLimit) error {
	now := time.Now()
	if rateLimit.ID == "" {
		rateLimit.ID = uuid.Must(uuid.NewV7()).String()
		rateLimit.CreatedAt = now
	}
	rateLimit.UpdatedAt = now
	return ds.db.Save(rateLimit).Error
}

// CleanupOldRecords drops counters whose window and block both expired.
func (ds *RateLimitRepository) CleanupOldRecords(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	return ds.db.
		Where("window_start < ? AND (blocked_until IS NULL OR blocked_until < ?)", cutoff, time.Now()).
		Delete(&model.RateLimit{}).Error
}
