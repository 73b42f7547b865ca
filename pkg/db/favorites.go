// pkg/db/favorites.go
package db

import (
	"gorm.io/gorm/clause"
)

// AddFavorite marks a pictogram as favorited. Favoriting an already
// favorited pictogram is a harmless no-op, not an error.
func AddFavorite(pictogramID string) error {
	favorite := Favorite{PictogramID: pictogramID}
	return DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}

func RemoveFavorite(pictogramID string) error {
	return DB.Where("pictogram_id = ?", pictogramID).Delete(&Favorite{}).Error
}

func IsFavorite(pictogramID string) (bool, error) {
	var count int64
	err := DB.Model(&Favorite{}).Where("pictogram_id = ?", pictogramID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleFavorite flips the favorite state and returns the resulting state.
// Read-then-write; the UI serializes interaction per screen, so the narrow
// race between two toggles of the same id is accepted.
func ToggleFavorite(pictogramID string) (bool, error) {
	favorited, err := IsFavorite(pictogramID)
	if err != nil {
		return false, err
	}
	if favorited {
		if err := RemoveFavorite(pictogramID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := AddFavorite(pictogramID); err != nil {
		return false, err
	}
	return true, nil
}

// GetFavorites returns favorited pictogram ids, newest first.
func GetFavorites() ([]string, error) {
	var favorites []Favorite
	if err := DB.Order("created_at DESC, id DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.PictogramID)
	}
	return ids, nil
}
