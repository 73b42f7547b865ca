// pkg/backup/errors.go
package backup

import "errors"

// Every failure crossing this package's boundary is one of these four
// sentinels; callers map them to user-facing messages and never inspect the
// underlying cause.
var (
	// ErrNoData means an export was attempted with no profile present.
	ErrNoData = errors.New("backup: no data to export")

	// ErrInvalidFormat means the file failed structural validation.
	ErrInvalidFormat = errors.New("backup: invalid backup format")

	// ErrCorrupt means the file failed parsing or checksum verification, or
	// a restore step failed against live storage.
	ErrCorrupt = errors.New("backup: backup is corrupted")

	// ErrVersion means the file's major format version is incompatible.
	ErrVersion = errors.New("backup: incompatible backup version")
)
