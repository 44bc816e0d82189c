// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/cryptfile/internal/logger"
)

// containerFileStore is the default implementation of [ContainerStore]
// over the local filesystem.
type containerFileStore struct {
	logger *logger.Logger
}

// NewContainerFileStore constructs a [ContainerStore] over the local
// filesystem.
func NewContainerFileStore(log *logger.Logger) ContainerStore {
	return &containerFileStore{logger: log}
}

// Stat implements [ContainerStore]. Lstat keeps symlinked targets from
// masquerading as the files they point at.
func (s *containerFileStore) Stat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// ReadFile implements [ContainerStore].
func (s *containerFileStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// WriteFileAtomic implements [ContainerStore]. The temp file lives in the
// destination directory so the final rename never crosses filesystems. A
// UUID suffix keeps concurrent invocations from colliding on the same
// output path.
func (s *containerFileStore) WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.NewString())

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write temp file for %q: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		// The destination stays untouched; drop the temp file.
		if rmErr := os.Remove(tmp); rmErr != nil {
			s.logger.Err(rmErr).Str("func", "WriteFileAtomic").Msg("error removing temp file")
		}
		return fmt.Errorf("move %q into place: %w", path, err)
	}

	return nil
}

// Remove implements [ContainerStore].
func (s *containerFileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}

// RemoveAll implements [ContainerStore].
func (s *containerFileStore) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}
