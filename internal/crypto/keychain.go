// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Key material sizes for AES-256-CBC.
const (
	SaltSize = 16
	KeySize  = 32
	IVSize   = 16
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// scrypt tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	scryptN int
	scryptR int
	scryptP int
}

// NewKeyChain constructs a [KeyChain] with scrypt parameters sized for an
// interactive CLI:
//   - CPU/memory cost: 2^15
//   - block size:      8
//   - parallelism:     1
//
// A single derivation covers both the 32-byte key and the 16-byte IV, so
// the IV never needs to be stored alongside the ciphertext.
func NewKeyChain() KeyChain {
	return &keyChain{
		scryptN: 1 << 15,
		scryptR: 8,
		scryptP: 1,
	}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG and returns them as the encryption salt. Returns an error if the
// random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChain]. It runs scrypt once for 48 output bytes
// and splits them into the AES-256 key and the CBC IV. Because the salt is
// unique per encryption, the derived (key, IV) pair never repeats across
// containers even under password reuse.
func (k *keyChain) DeriveKey(password string, salt []byte) ([]byte, []byte, error) {
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("invalid salt length: %d", len(salt))
	}

	material, err := scrypt.Key([]byte(password), salt, k.scryptN, k.scryptR, k.scryptP, KeySize+IVSize)
	if err != nil {
		return nil, nil, fmt.Errorf("derive key material: %w", err)
	}

	return material[:KeySize], material[KeySize:], nil
}
