// pkg/backup/types.go
package backup

import (
	"github.com/pexy-app/pexy-data/pkg/db"
)

const (
	// FormatVersion is the backup format version written to every export.
	// Imports are accepted from any release within the same major line.
	FormatVersion = "1.0.0"

	// AppVersion is recorded in exports for diagnostics only.
	AppVersion = "1.0.0"
)

// Document is the on-disk backup artifact. Checksum is the SHA-256 hex
// digest of the canonical JSON serialization of Data alone.
type Document struct {
	Version    string  `json:"version"`
	AppVersion string  `json:"appVersion"`
	Timestamp  string  `json:"timestamp"`
	Checksum   string  `json:"checksum"`
	Data       Payload `json:"data"`
}

// Payload is everything user-owned: the profile, favorites, phrases per
// language, and custom pictograms with their image bytes.
type Payload struct {
	UserProfile      *db.UserProfile   `json:"userProfile"`
	Favorites        []string          `json:"favorites"`
	CustomPhrases    PhrasesByLanguage `json:"customPhrases"`
	CustomPictograms *PictogramArchive `json:"customPictograms,omitempty"`
}

type PhrasesByLanguage struct {
	FR []db.CustomPhrase `json:"fr"`
	EN []db.CustomPhrase `json:"en"`
}

// PictogramArchive carries custom pictogram records together with their
// image files, keyed by the stored relative path, base64-encoded.
type PictogramArchive struct {
	Items  []db.CustomPictogram `json:"items"`
	Images map[string]string    `json:"images"`
}
