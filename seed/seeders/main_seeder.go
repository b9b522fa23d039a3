package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	missionSeeder := NewMissionSeeder(s.db)
	if err := missionSeeder.SeedMissions(); err != nil {
		log.Printf("Mission seeding failed: %v", err)
		return err
	}

	noteSeeder := NewNoteSeeder(s.db)
	if err := noteSeeder.SeedNotes(); err != nil {
		log.Printf("Note seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedMissionsOnly() error {
	missionSeeder := NewMissionSeeder(s.db)
	return missionSeeder.SeedMissions()
}

func (s *MainSeeder) SeedNotesOnly() error {
	noteSeeder := NewNoteSeeder(s.db)
	return noteSeeder.SeedNotes()
}
