// pkg/db/phrases.go
package db

import (
	"time"
)

// AddCustomPhrase inserts a phrase for a pictogram. ID and timestamps are
// assigned by the store.
func AddCustomPhrase(phrase *CustomPhrase) error {
	phrase.ID = 0
	phrase.CreatedAt = time.Time{}
	phrase.UpdatedAt = time.Time{}
	if phrase.Language == "" {
		phrase.Language = LanguageFR
	}
	return DB.Create(phrase).Error
}

// GetCustomPhrases returns the phrases attached to a pictogram in the given
// language, newest first.
func GetCustomPhrases(pictogramID, language string) ([]CustomPhrase, error) {
	if language == "" {
		language = LanguageFR
	}
	phrases := []CustomPhrase{}
	err := DB.
		Where("pictogram_id = ? AND language = ?", pictogramID, language).
		Order("created_at DESC, id DESC").
		Find(&phrases).Error
	return phrases, err
}

// UpdateCustomPhrase merges text/emoji changes and stamps UpdatedAt. A
// missing id is a silent no-op returning nil.
func UpdateCustomPhrase(id uint, text *string, emoji *string) (*CustomPhrase, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if text != nil {
		fields["text"] = *text
	}
	if emoji != nil {
		fields["emoji"] = *emoji
	}

	result := DB.Model(&CustomPhrase{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var phrase CustomPhrase
	if err := DB.First(&phrase, id).Error; err != nil {
		return nil, err
	}
	return &phrase, nil
}

func DeleteCustomPhrase(id uint) error {
	return DB.Delete(&CustomPhrase{}, id).Error
}

// GetAllCustomPhrases returns every phrase in the given language, newest
// first. Used by the backup codec.
func GetAllCustomPhrases(language string) ([]CustomPhrase, error) {
	if language == "" {
		language = LanguageFR
	}
	phrases := []CustomPhrase{}
	err := DB.
		Where("language = ?", language).
		Order("created_at DESC, id DESC").
		Find(&phrases).Error
	return phrases, err
}
