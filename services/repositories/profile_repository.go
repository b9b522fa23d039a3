package repositories

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/shared"
)

// ProfileRepository handles the single player profile record
type ProfileRepository struct {
	BaseRepository
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetProfile returns the profile, creating a fresh one if none exists yet.
func (ds *ProfileRepository) GetProfile() (*model.Profile, error) {
	var profile model.Profile
	err := ds.db.Order("created_at asc").First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := defaultProfile()
	if err := ds.db.Create(fresh).Error; err != nil {
		return nil, err
	}

	log.WithField("id", fresh.ID).Info("Created default profile")
	return fresh, nil
}

func (ds *ProfileRepository) UpdateProfile(profile *model.Profile) error {
	profile.UpdatedAt = time.Now()
	return ds.db.Save(profile).Error
}

// defaultProfile starts fully zeroed: no name (onboarding sets it exactly
// once), level 0, no XP or skill points.
func defaultProfile() *model.Profile {
	now := time.Now()
	return &model.Profile{
		ID:         uuid.Must(uuid.NewV7()).String(),
		XP:         0,
		Level:      0,
		Attributes: DefaultAttributes(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// DefaultAttributes returns the zeroed attribute document.
func DefaultAttributes() []byte {
	attrs := make(map[string]int, len(shared.AttributeNames))
	for _, name := range shared.AttributeNames {
		attrs[name] = 0
	}
	b, _ := sonic.Marshal(attrs)
	return b
}

// DecodeAttributes parses the stored attribute document. A missing or corrupt
// document decodes to the zeroed structure rather than failing.
func DecodeAttributes(raw []byte) map[string]int {
	attrs := map[string]int{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &attrs); err != nil {
			log.WithError(err).Warn("Corrupt attribute document, resetting")
			attrs = map[string]int{}
		}
	}
	for _, name := range shared.AttributeNames {
		if _, ok := attrs[name]; !ok {
			attrs[name] = 0
		}
	}
	return attrs
}

// EncodeAttributes serializes the attribute map for storage.
func EncodeAttributes(attrs map[string]int) []byte {
	b, _ := sonic.Marshal(attrs)
	return b
}
