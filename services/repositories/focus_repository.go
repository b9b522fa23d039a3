package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
)

// FocusRepository handles committed focus sessions
type FocusRepository struct {
	BaseRepository
}

func NewFocusRepository(db *gorm.DB) *FocusRepository {
	return &FocusRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *FocusRepository) CreateSession(session *model.FocusSession) error {
	now := time.Now()
	if session.ID == "" {
		session.ID = uuid.Must(uuid.NewV7()).String()
	}
	session.CreatedAt = now
	session.UpdatedAt = now
	return ds.db.Create(session).Error
}

func (ds *FocusRepository) GetSessionsByDay(day string) ([]model.FocusSession, error) {
	var sessions []model.FocusSession
	if err := ds.db.Where("day = ?", day).Order("created_at asc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecentSessions returns the newest sessions across all days.
func (ds *FocusRepository) RecentSessions(limit int) ([]model.FocusSession, error) {
	var sessions []model.FocusSession
	if err := ds.db.Order("created_at desc").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// DayTotals returns the summed elapsed seconds for each day in [from, to],
// keyed by the day string. Days without sessions are absent.
func (ds *FocusRepository) DayTotals(from, to string) (map[string]int, error) {
	type dayTotal struct {
		Day   string
		Total int
	}

	var rows []dayTotal
	err := ds.db.Model(&model.FocusSession{}).
		Select("day, SUM(elapsed_seconds) as total").
		Where("day >= ? AND day <= ?", from, to).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Day] = row.Total
	}
	return totals, nil
}

func (ds *FocusRepository) TotalSeconds() (int, error) {
	var total *int
	err := ds.db.Model(&model.FocusSession{}).
		Select("SUM(elapsed_seconds)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
