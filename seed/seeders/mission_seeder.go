package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/shared"
)

// MissionSeeder handles seeding starter missions
type MissionSeeder struct {
	db *gorm.DB
}

func NewMissionSeeder(db *gorm.DB) *MissionSeeder {
	return &MissionSeeder{db: db}
}

// SeedMissions inserts a starter mission set, skipping any title that
// already exists.
func (s *MissionSeeder) SeedMissions() error {
	missions := s.getStarterMissions()

	nextID := 0
	row := s.db.Model(&model.Mission{}).Select("COALESCE(MAX(id), 0)").Row()
	if err := row.Scan(&nextID); err != nil {
		return err
	}

	for _, mission := range missions {
		var existing model.Mission
		err := s.db.Where("title = ?", mission.Title).First(&existing).Error
		if err == nil {
			log.Printf("Mission %q already exists, skipping", mission.Title)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Error checking mission %q: %v", mission.Title, err)
			return err
		}

		nextID++
		mission.ID = nextID
		now := time.Now()
		mission.CreatedAt = now
		mission.UpdatedAt = now

		if err := s.db.Create(&mission).Error; err != nil {
			log.Printf("Error creating mission %q: %v", mission.Title, err)
			return err
		}
		log.Printf("Created mission: %s", mission.Title)
	}

	log.Println("Mission seeding completed successfully")
	return nil
}

func (s *MissionSeeder) getStarterMissions() []model.Mission {
	now := time.Now()
	today := shared.BucketDeadline(shared.BucketDaily, now)
	endOfWeek := shared.BucketDeadline(shared.BucketWeekly, now)
	endOfMonth := shared.BucketDeadline(shared.BucketMonthly, now)

	return []model.Mission{
		{Title: "Read 20 pages", Description: "Any non-fiction counts", Category: shared.CategoryIntelligence, Bucket: shared.BucketDaily, XPReward: 10, Deadline: today},
		{Title: "Morning workout", Category: shared.CategoryStrength, Bucket: shared.BucketDaily, XPReward: 10, Deadline: today},
		{Title: "Sleep before midnight", Category: shared.CategoryVitality, Bucket: shared.BucketDaily, XPReward: 10, Deadline: today},
		{Title: "Finish a side-project task", Category: shared.CategoryCreativity, Bucket: shared.BucketWeekly, XPReward: 25, Deadline: endOfWeek},
		{Title: "Call a friend", Category: shared.CategorySocial, Bucket: shared.BucketWeekly, XPReward: 15, Deadline: endOfWeek},
		{Title: "Finish a book", Category: shared.CategoryIntelligence, Bucket: shared.BucketMonthly, XPReward: 60, Deadline: endOfMonth},
	}
}
