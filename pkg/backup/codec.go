// pkg/backup/codec.go
package backup

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pexy-app/pexy-data/pkg/db"
	"github.com/pexy-app/pexy-data/pkg/logger"
)

// checksum computes the SHA-256 hex digest of the canonical serialization of
// the payload. Canonical means json.Marshal of the typed struct: field order
// is fixed by the struct definition and map keys are sorted.
func checksum(payload *Payload) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(encoded)
	return hex.EncodeToString(digest[:]), nil
}

// Export snapshots the entire store into a checksummed document. Fails with
// ErrNoData when no profile exists; any other failure normalizes to
// ErrCorrupt.
func Export() (*Document, error) {
	profile, err := db.GetUserProfile()
	if err != nil {
		return nil, fmt.Errorf("%w: read profile: %v", ErrCorrupt, err)
	}
	if profile == nil {
		return nil, ErrNoData
	}

	favorites, err := db.GetFavorites()
	if err != nil {
		return nil, fmt.Errorf("%w: read favorites: %v", ErrCorrupt, err)
	}
	phrasesFR, err := db.GetAllCustomPhrases(db.LanguageFR)
	if err != nil {
		return nil, fmt.Errorf("%w: read phrases: %v", ErrCorrupt, err)
	}
	phrasesEN, err := db.GetAllCustomPhrases(db.LanguageEN)
	if err != nil {
		return nil, fmt.Errorf("%w: read phrases: %v", ErrCorrupt, err)
	}

	archive, err := exportPictograms()
	if err != nil {
		return nil, fmt.Errorf("%w: read custom pictograms: %v", ErrCorrupt, err)
	}

	payload := Payload{
		UserProfile: profile,
		Favorites:   favorites,
		CustomPhrases: PhrasesByLanguage{
			FR: phrasesFR,
			EN: phrasesEN,
		},
		CustomPictograms: archive,
	}

	digest, err := checksum(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: checksum: %v", ErrCorrupt, err)
	}

	return &Document{
		Version:    FormatVersion,
		AppVersion: AppVersion,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Checksum:   digest,
		Data:       payload,
	}, nil
}

// exportPictograms reads every custom pictogram and base64-embeds its image.
// An unreadable image is logged and skipped; the record still ships so the
// backup stays best-effort complete.
func exportPictograms() (*PictogramArchive, error) {
	pictograms, err := db.GetCustomPictograms()
	if err != nil {
		return nil, err
	}
	if len(pictograms) == 0 {
		return nil, nil
	}

	archive := &PictogramArchive{
		Items:  pictograms,
		Images: make(map[string]string, len(pictograms)),
	}
	for _, pictogram := range pictograms {
		data, err := os.ReadFile(db.ImageAbsPath(pictogram.ImagePath))
		if err != nil {
			logger.Error("skipping unreadable pictogram image", "image_path", pictogram.ImagePath, "error", err)
			continue
		}
		archive.Images[pictogram.ImagePath] = base64.StdEncoding.EncodeToString(data)
	}
	return archive, nil
}

// Marshal renders the document as indented JSON, the on-disk form.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// documentEnvelope and payloadShape decode untrusted input. Pointer fields
// distinguish a missing key from an empty value.
type documentEnvelope struct {
	Version    string          `json:"version"`
	AppVersion string          `json:"appVersion"`
	Timestamp  string          `json:"timestamp"`
	Checksum   string          `json:"checksum"`
	Data       json.RawMessage `json:"data"`
}

type phrasesShape struct {
	FR *[]db.CustomPhrase `json:"fr"`
	EN *[]db.CustomPhrase `json:"en"`
}

type payloadShape struct {
	UserProfile      json.RawMessage   `json:"userProfile"`
	Favorites        *[]string         `json:"favorites"`
	CustomPhrases    *phrasesShape     `json:"customPhrases"`
	CustomPictograms *PictogramArchive `json:"customPictograms"`
}

// ParseAndValidate runs the full decode contract over a raw backup file:
// parse, structural validation, checksum verification, then the
// major-version gate. On success the validated payload is ready for restore.
func ParseAndValidate(raw []byte) (*Payload, error) {
	var envelope documentEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if envelope.Version == "" || envelope.Checksum == "" {
		return nil, ErrInvalidFormat
	}
	if !isJSONObject(envelope.Data) {
		return nil, ErrInvalidFormat
	}

	var shape payloadShape
	if err := json.Unmarshal(envelope.Data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if shape.Favorites == nil || shape.CustomPhrases == nil ||
		shape.CustomPhrases.FR == nil || shape.CustomPhrases.EN == nil {
		return nil, ErrInvalidFormat
	}

	payload := Payload{
		Favorites: *shape.Favorites,
		CustomPhrases: PhrasesByLanguage{
			FR: *shape.CustomPhrases.FR,
			EN: *shape.CustomPhrases.EN,
		},
		CustomPictograms: shape.CustomPictograms,
	}

	// userProfile must be null, absent, or an object.
	if len(shape.UserProfile) > 0 && !isJSONNull(shape.UserProfile) {
		if !isJSONObject(shape.UserProfile) {
			return nil, ErrInvalidFormat
		}
		var profile db.UserProfile
		if err := json.Unmarshal(shape.UserProfile, &profile); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		payload.UserProfile = &profile
	}

	digest, err := checksum(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: checksum: %v", ErrCorrupt, err)
	}
	if digest != envelope.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	if majorVersion(envelope.Version) != majorVersion(FormatVersion) {
		return nil, fmt.Errorf("%w: backup version %s", ErrVersion, envelope.Version)
	}

	return &payload, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// majorVersion extracts the major component of a semantic version string,
// returning -1 when unparsable so the gate rejects it.
func majorVersion(version string) int {
	major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])
	if err != nil {
		return -1
	}
	return major
}
