package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
)

// MissionRepository handles mission persistence
type MissionRepository struct {
	BaseRepository
}

func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *MissionRepository) GetMission(id int) (*model.Mission, error) {
	var mission model.Mission
	if err := ds.db.Where("id = ?", id).First(&mission).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

func (ds *MissionRepository) GetMissionsByBucket(bucket string) ([]model.Mission, error) {
	var missions []model.Mission
	if err := ds.db.Where("bucket = ?", bucket).Order("id asc").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

func (ds *MissionRepository) GetAllMissions() ([]model.Mission, error) {
	var missions []model.Mission
	if err := ds.db.Order("id asc").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

func (ds *MissionRepository) CountCompleted() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.Mission{}).Where("completed = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateMission assigns the next sequential ID inside a transaction so two
// concurrent creates cannot collide.
func (ds *MissionRepository) CreateMission(mission *model.Mission) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		var maxID int
		row := tx.Model(&model.Mission{}).Select("COALESCE(MAX(id), 0)").Row()
		if err := row.Scan(&maxID); err != nil {
			return err
		}

		now := time.Now()
		mission.ID = maxID + 1
		mission.CreatedAt = now
		mission.UpdatedAt = now
		return tx.Create(mission).Error
	})
}

func (ds *MissionRepository) UpdateMission(mission *model.Mission) error {
	mission.UpdatedAt = time.Now()
	return ds.db.Save(mission).Error
}

func (ds *MissionRepository) DeleteMission(id int) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Mission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
