package backup_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pexy-app/pexy-data/pkg/backup"
	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/internal/testutil"
)

func TestRestoreRoundTrip(t *testing.T) {
	testutil.SetupTestDB(t)
	pictogram := seedStore(t)

	doc, err := backup.Export()
	require.NoError(t, err)
	raw, err := backup.Marshal(doc)
	require.NoError(t, err)

	// Pollute the store so the restore has something to wipe.
	require.NoError(t, db.ClearAllData())
	require.NoError(t, db.CreateUserProfile(&db.UserProfile{Name: "Quelqu'un d'autre", Language: "en", TTSSpeed: 0.5}))
	require.NoError(t, db.AddFavorite("food_apple"))

	payload, err := backup.ParseAndValidate(raw)
	require.NoError(t, err)
	require.NoError(t, backup.Restore(payload))

	profile, err := db.GetUserProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Corinne", profile.Name)
	assert.Equal(t, "fr", profile.Language)
	require.NotNil(t, profile.TTSVoiceID)
	assert.Equal(t, "fr-voice-1", *profile.TTSVoiceID)

	favorites, err := db.GetFavorites()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"transport_car", "transport_bus"}, favorites)
	assert.NotContains(t, favorites, "food_apple")

	fr, err := db.GetAllCustomPhrases("fr")
	require.NoError(t, err)
	require.Len(t, fr, 1)
	assert.Equal(t, "On part en voiture", fr[0].Text)
	en, err := db.GetAllCustomPhrases("en")
	require.NoError(t, err)
	require.Len(t, en, 1)

	restored, err := db.GetCustomPictogramByID(pictogram.CustomID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Doudou", restored.Name)
	data, err := os.ReadFile(db.ImageAbsPath(restored.ImagePath))
	require.NoError(t, err)
	assert.Equal(t, []byte("webp-image-bytes"), data)
}

func TestRestoreWithoutProfile(t *testing.T) {
	testutil.SetupTestDB(t)

	payload := &backup.Payload{
		Favorites: []string{"transport_car"},
		CustomPhrases: backup.PhrasesByLanguage{
			FR: []db.CustomPhrase{},
			EN: []db.CustomPhrase{},
		},
	}
	require.NoError(t, backup.Restore(payload))

	profile, err := db.GetUserProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)
	favorites, err := db.GetFavorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"transport_car"}, favorites)
}

func TestRestoreRejectsBrokenImage(t *testing.T) {
	testutil.SetupTestDB(t)

	payload := &backup.Payload{
		CustomPhrases: backup.PhrasesByLanguage{
			FR: []db.CustomPhrase{},
			EN: []db.CustomPhrase{},
		},
		Favorites: []string{},
		CustomPictograms: &backup.PictogramArchive{
			Items: []db.CustomPictogram{},
			Images: map[string]string{
				"custom_pictograms/picto_1_x.webp": "not*base64*at*all",
			},
		},
	}

	err := backup.Restore(payload)
	assert.ErrorIs(t, err, backup.ErrCorrupt)
}
