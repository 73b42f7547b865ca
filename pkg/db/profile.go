// pkg/db/profile.go
package db

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateUserProfile inserts the profile, replacing any existing rows so that
// at most one profile ever exists. ID and timestamps are assigned by the
// store.
func CreateUserProfile(profile *UserProfile) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&UserProfile{}).Error; err != nil {
			return err
		}
		profile.ID = 0
		profile.CreatedAt = time.Time{}
		profile.UpdatedAt = time.Time{}
		return tx.Create(profile).Error
	})
}

// GetUserProfile returns the current profile (latest by id) or nil if none
// exists.
func GetUserProfile() (*UserProfile, error) {
	var profile UserProfile
	err := DB.Order("id DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func HasUserProfile() (bool, error) {
	profile, err := GetUserProfile()
	if err != nil {
		return false, err
	}
	return profile != nil, nil
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; the Clear flags reset the nullable columns.
type ProfileUpdate struct {
	Name             *string
	Language         *string
	TTSSpeed         *float64
	TTSVoiceID       *string
	ClearTTSVoiceID  bool
	PinCode          *string
	ClearPinCode     bool
	HiddenCategories datatypes.JSON
}

// UpdateUserProfile merges the given fields into the profile row and stamps
// UpdatedAt. A missing id is a silent no-op returning nil.
func UpdateUserProfile(id uint, update ProfileUpdate) (*UserProfile, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Language != nil {
		fields["language"] = *update.Language
	}
	if update.TTSSpeed != nil {
		fields["tts_speed"] = *update.TTSSpeed
	}
	if update.TTSVoiceID != nil {
		fields["tts_voice_id"] = *update.TTSVoiceID
	} else if update.ClearTTSVoiceID {
		fields["tts_voice_id"] = nil
	}
	if update.PinCode != nil {
		fields["pin_code"] = *update.PinCode
	} else if update.ClearPinCode {
		fields["pin_code"] = nil
	}
	if update.HiddenCategories != nil {
		fields["hidden_categories"] = update.HiddenCategories
	}

	result := DB.Model(&UserProfile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var profile UserProfile
	if err := DB.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetHiddenCategories returns the hidden category ids from the current
// profile. A missing profile or malformed value yields an empty list.
func GetHiddenCategories() ([]string, error) {
	profile, err := GetUserProfile()
	if err != nil {
		return nil, err
	}
	if profile == nil || len(profile.HiddenCategories) == 0 {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(profile.HiddenCategories, &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func SetHiddenCategories(profileID uint, ids []string) error {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = UpdateUserProfile(profileID, ProfileUpdate{HiddenCategories: datatypes.JSON(encoded)})
	return err
}
