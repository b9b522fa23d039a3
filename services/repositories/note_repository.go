package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
)

// NoteRepository handles free-form notes
type NoteRepository struct {
	BaseRepository
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *NoteRepository) GetNote(id string) (*model.Note, error) {
	var note model.Note
	if err := ds.db.Where("id = ?", id).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (ds *NoteRepository) GetNotes() ([]model.Note, error) {
	var notes []model.Note
	if err := ds.db.Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (ds *NoteRepository) CreateNote(note *model.Note) error {
	now := time.Now()
	if note.ID == "" {
		note.ID = uuid.Must(uuid.NewV7()).String()
	}
	note.CreatedAt = now
	note.UpdatedAt = now
	return ds.db.Create(note).Error
}

func (ds *NoteRepository) UpdateNote(note *model.Note) error {
	note.UpdatedAt = time.Now()
	return ds.db.Save(note).Error
}

func (ds *NoteRepository) DeleteNote(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
