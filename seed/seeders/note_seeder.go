package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
)

// NoteSeeder handles seeding starter notes
type NoteSeeder struct {
	db *gorm.DB
}

func NewNoteSeeder(db *gorm.DB) *NoteSeeder {
	return &NoteSeeder{db: db}
}

func (s *NoteSeeder) SeedNotes() error {
	notes := []model.Note{
		{
			Title: "Welcome",
			Body:  "Track missions, run focus sessions and level up. Spend skill points on attributes from the profile screen.",
		},
		{
			Title: "Weekly review",
			Body:  "Check the weekly focus chart every Sunday and plan next week's missions.",
		},
	}

	for _, note := range notes {
		var existing model.Note
		err := s.db.Where("title = ?", note.Title).First(&existing).Error
		if err == nil {
			log.Printf("Note %q already exists, skipping", note.Title)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		now := time.Now()
		note.ID = uuid.Must(uuid.NewV7()).String()
		note.CreatedAt = now
		note.UpdatedAt = now

		if err := s.db.Create(&note).Error; err != nil {
			log.Printf("Error creating note %q: %v", note.Title, err)
			return err
		}
		log.Printf("Created note: %s", note.Title)
	}

	log.Println("Note seeding completed successfully")
	return nil
}
