package store

import (
	"context"
	"io/fs"

	"github.com/MKhiriev/cryptfile/models"
)

// ContainerStore is the filesystem access layer for container artifacts and
// recovered plaintext files. It exists so the service layer can be tested
// without touching the real filesystem.
type ContainerStore interface {
	// Stat reports on the entry at path without following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// ReadFile reads the whole file at path into memory.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to path so that path either keeps its
	// previous state or holds the complete new content, never a partial
	// write. The data goes to a uniquely named temp file in the same
	// directory first and is renamed into place on success.
	WriteFileAtomic(path string, data []byte, perm fs.FileMode) error

	// Remove deletes a single file.
	Remove(path string) error

	// RemoveAll deletes a directory tree.
	RemoveAll(path string) error
}

// JournalRepository persists the local history of completed operations.
// Implementations must never be handed passwords or key material.
type JournalRepository interface {
	// RecordOperation appends one completed operation to the journal.
	RecordOperation(ctx context.Context, record models.OperationRecord) error

	// ListOperations returns the most recent operations, newest first.
	ListOperations(ctx context.Context, limit uint64) ([]models.OperationRecord, error)
}
