// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/cryptfile/internal/archive"
	"github.com/MKhiriev/cryptfile/internal/container"
	"github.com/MKhiriev/cryptfile/internal/crypto"
	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/internal/store"
	"github.com/MKhiriev/cryptfile/models"
)

// EncryptedExtension is appended to every container artifact.
const EncryptedExtension = ".enc"

// recoveredExtension marks decrypted output whose container name carried no
// EncryptedExtension to strip (the user renamed the container).
const recoveredExtension = ".cryptfile"

// cryptService is the default implementation of [CryptService].
type cryptService struct {
	keys    crypto.KeyChain
	cipher  crypto.Cipher
	files   store.ContainerStore
	journal store.JournalRepository // nil disables journaling
	logger  *logger.Logger
}

// NewCryptService constructs a [CryptService]. journal may be nil, in which
// case operations are not recorded.
func NewCryptService(keys crypto.KeyChain, cipher crypto.Cipher, files store.ContainerStore, journal store.JournalRepository, log *logger.Logger) CryptService {
	return &cryptService{
		keys:    keys,
		cipher:  cipher,
		files:   files,
		journal: journal,
		logger:  log,
	}
}

// Run implements [CryptService].
func (s *cryptService) Run(ctx context.Context, req models.Request) (models.Result, error) {
	if req.Password == "" {
		return models.Result{}, ErrEmptyPassword
	}

	if err := s.validateTarget(req); err != nil {
		return models.Result{}, err
	}

	started := time.Now()

	var result models.Result
	var flags container.Flags
	var err error
	switch req.Mode {
	case models.ModeEncrypt:
		result, flags, err = s.encrypt(req)
	case models.ModeDecrypt:
		result, flags, err = s.decrypt(req)
	default:
		return models.Result{}, ErrUnknownMode
	}
	if err != nil {
		return models.Result{}, err
	}

	s.recordOperation(ctx, req, result, flags, time.Since(started))

	return result, nil
}

// validateTarget confirms the target exists and matches the requested mode.
// Decrypt targets are always regular files (containers); whether a
// container holds a directory is decided by its flags, not by the request.
func (s *cryptService) validateTarget(req models.Request) error {
	info, err := s.files.Stat(req.Target.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTargetNotFound, req.Target.Path)
		}
		return fmt.Errorf("stat target %q: %w", req.Target.Path, err)
	}

	wantDir := req.Mode == models.ModeEncrypt && req.Target.IsDirectory()
	if info.IsDir() != wantDir {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, req.Target.Path)
	}
	if !wantDir && !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidTarget, req.Target.Path)
	}

	return nil
}

// encrypt runs the EncryptFlow: obtain payload bytes, derive key material
// under a fresh salt, seal the container, write it atomically, then
// optionally drop the original.
func (s *cryptService) encrypt(req models.Request) (models.Result, container.Flags, error) {
	payload, flags, err := s.encryptPayload(req)
	if err != nil {
		return models.Result{}, 0, err
	}

	salt, err := s.keys.GenerateSalt()
	if err != nil {
		return models.Result{}, 0, fmt.Errorf("generate salt: %w", err)
	}
	key, iv, err := s.keys.DeriveKey(req.Password, salt)
	if err != nil {
		return models.Result{}, 0, fmt.Errorf("derive key: %w", err)
	}

	ciphertext, err := s.cipher.Encrypt(container.WrapPayload(payload), key, iv)
	if err != nil {
		return models.Result{}, 0, fmt.Errorf("encrypt payload: %w", err)
	}

	raw, err := container.Encode(salt, flags, ciphertext)
	if err != nil {
		return models.Result{}, 0, fmt.Errorf("encode container: %w", err)
	}

	outputPath := req.Target.Path + EncryptedExtension
	if err = s.files.WriteFileAtomic(outputPath, raw, 0o600); err != nil {
		return models.Result{}, 0, err
	}

	result := models.Result{OutputPath: outputPath}
	if req.RemoveOriginal {
		result.OriginalRemoved = s.removeOriginal(req.Target)
	}

	return result, flags, nil
}

// encryptPayload reads the plaintext payload for req: the packed (and
// optionally compressed) tree for a directory target, the raw file bytes
// otherwise.
func (s *cryptService) encryptPayload(req models.Request) ([]byte, container.Flags, error) {
	if !req.Target.IsDirectory() {
		payload, err := s.files.ReadFile(req.Target.Path)
		return payload, 0, err
	}

	payload, err := archive.Pack(req.Target.Path)
	if err != nil {
		return nil, 0, err
	}

	flags := container.FlagDirectory
	if req.Compress {
		if payload, err = archive.Compress(payload); err != nil {
			return nil, 0, err
		}
		flags |= container.FlagCompressed
	}

	return payload, flags, nil
}

// decrypt runs the DecryptFlow. Directory-ness and compression come from
// the container flags; a user who forgets how the container was produced
// still gets a correct round-trip.
func (s *cryptService) decrypt(req models.Request) (models.Result, container.Flags, error) {
	raw, err := s.files.ReadFile(req.Target.Path)
	if err != nil {
		return models.Result{}, 0, err
	}

	salt, flags, ciphertext, err := container.Decode(raw)
	if err != nil {
		return models.Result{}, 0, err
	}

	key, iv, err := s.keys.DeriveKey(req.Password, salt)
	if err != nil {
		return models.Result{}, 0, fmt.Errorf("derive key: %w", err)
	}

	plain, err := s.cipher.Decrypt(ciphertext, key, iv)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPadding) {
			// Same externally visible outcome as a marker mismatch.
			return models.Result{}, 0, container.ErrAuthenticationFailed
		}
		return models.Result{}, 0, fmt.Errorf("decrypt payload: %w", err)
	}

	payload, err := container.UnwrapPayload(plain)
	if err != nil {
		return models.Result{}, 0, err
	}

	outputPath := recoveredOutputPath(req.Target.Path)
	if flags.IsDirectory() {
		if flags.IsCompressed() {
			if payload, err = archive.Decompress(payload); err != nil {
				return models.Result{}, 0, err
			}
		}
		if err = archive.Unpack(payload, outputPath); err != nil {
			return models.Result{}, 0, err
		}
	} else {
		if err = s.files.WriteFileAtomic(outputPath, payload, 0o644); err != nil {
			return models.Result{}, 0, err
		}
	}

	result := models.Result{OutputPath: outputPath}
	if req.RemoveOriginal {
		result.OriginalRemoved = s.removeOriginal(models.FileTarget(req.Target.Path))
	}

	return result, flags, nil
}

// removeOriginal drops the input artifact after a verified successful
// write. A removal failure is reported but never rolls the operation back:
// the new artifact stands.
func (s *cryptService) removeOriginal(target models.Target) bool {
	var err error
	if target.IsDirectory() {
		err = s.files.RemoveAll(target.Path)
	} else {
		err = s.files.Remove(target.Path)
	}
	if err != nil {
		s.logger.Err(err).Str("path", target.Path).Msg("error removing original after successful operation")
		return false
	}
	return true
}

// recordOperation journals a completed operation. Best effort: the journal
// must never fail an operation that already succeeded.
func (s *cryptService) recordOperation(ctx context.Context, req models.Request, result models.Result, flags container.Flags, duration time.Duration) {
	if s.journal == nil {
		return
	}

	record := models.OperationRecord{
		Mode:       req.Mode.String(),
		TargetPath: req.Target.Path,
		OutputPath: result.OutputPath,
		Directory:  flags.IsDirectory(),
		Compressed: flags.IsCompressed(),
		Removed:    result.OriginalRemoved,
		Duration:   duration,
		CreatedAt:  time.Now(),
	}
	if err := s.journal.RecordOperation(ctx, record); err != nil {
		s.logger.Err(err).Str("target", req.Target.Path).Msg("error journaling operation")
	}
}

// recoveredOutputPath derives the decrypt output location from the
// container name: strip the ".enc" extension when present, otherwise keep
// the name and append ".cryptfile" so the container is never overwritten.
func recoveredOutputPath(containerPath string) string {
	if strings.HasSuffix(containerPath, EncryptedExtension) {
		return strings.TrimSuffix(containerPath, EncryptedExtension)
	}
	return containerPath + recoveredExtension
}
