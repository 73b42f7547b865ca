// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

// Supported phrase/profile languages. Display and search are always
// partitioned by language.
const (
	LanguageFR = "fr"
	LanguageEN = "en"
)

// SupportedLanguages lists the languages a backup carries phrases for.
var SupportedLanguages = []string{LanguageFR, LanguageEN}

// CustomCategoryID is the sentinel category every custom pictogram belongs to.
const CustomCategoryID = "custom"

// UserProfile holds the user's identity and TTS preferences. At most one row
// exists; CreateUserProfile replaces any previous one.
type UserProfile struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Language         string         `gorm:"not null;default:fr" json:"language"`
	TTSSpeed         float64        `gorm:"column:tts_speed;not null;default:1.0" json:"ttsSpeed"`
	TTSVoiceID       *string        `gorm:"column:tts_voice_id" json:"ttsVoiceId"`
	PinCode          *string        `json:"pinCode"`
	HiddenCategories datatypes.JSON `json:"hiddenCategories"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}

// Favorite marks a pictogram (catalog or custom) as favorited. The unique
// index makes favoriting idempotent; there is no foreign key because catalog
// pictograms are static data, not rows.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PictogramID string    `gorm:"not null;uniqueIndex:idx_favorites_pictogram" json:"pictogramId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// CustomPhrase is a user-created spoken phrase attached to a pictogram,
// partitioned by (pictogram_id, language).
type CustomPhrase struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PictogramID string    `gorm:"not null;index:idx_custom_phrases_pictogram" json:"pictogramId"`
	Text        string    `gorm:"not null" json:"text"`
	Emoji       *string   `json:"emoji"`
	Language    string    `gorm:"not null;default:fr" json:"language"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CustomPhrase) TableName() string {
	return "custom_phrases"
}

// CustomPictogram is a user-captured photo pictogram. ImagePath is relative
// to the document dir and always has a backing file while the row exists.
type CustomPictogram struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomID   string    `gorm:"not null;uniqueIndex:idx_custom_pictograms_custom_id" json:"customId"`
	Name       string    `gorm:"not null" json:"name"`
	ImagePath  string    `gorm:"not null" json:"imagePath"`
	CategoryID string    `gorm:"not null;default:custom" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (CustomPictogram) TableName() string {
	return "custom_pictograms"
}
