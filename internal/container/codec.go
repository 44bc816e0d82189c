// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package container defines the on-disk byte layout of an encrypted
// cryptfile artifact:
//
//	salt (16 bytes) ‖ flags (1 byte) ‖ ciphertext (rest of file)
//
// The IV is not stored: key derivation produces both the AES key and the IV
// from (password, salt), and the salt is unique per encryption, so the pair
// never repeats. The flags byte records whether the payload is a packed
// directory and whether it was compressed before encryption, so decryption
// never depends on the user re-supplying either choice.
//
// The ciphertext covers marker ‖ payload, where the marker is a fixed
// 8-byte constant. After decryption the marker is compared against the
// constant: a mismatch means the password was wrong or the ciphertext was
// tampered with.
package container

import (
	"bytes"
	"fmt"
)

// Container layout sizes.
const (
	SaltSize   = 16
	flagsSize  = 1
	HeaderSize = SaltSize + flagsSize

	// MarkerSize is the length of the known-plaintext tag encrypted in
	// front of the payload.
	MarkerSize = 8
)

// marker is the known plaintext verified after decryption. The trailing
// newline keeps an accidental text prefix from matching.
var marker = []byte("CRYPTF1\n")

// Flags is the container flags byte.
type Flags byte

const (
	// FlagDirectory marks the payload as a packed directory tree.
	FlagDirectory Flags = 1 << iota

	// FlagCompressed marks the packed payload as gzip-compressed.
	FlagCompressed
)

// IsDirectory reports whether the payload is a packed directory tree.
func (f Flags) IsDirectory() bool { return f&FlagDirectory != 0 }

// IsCompressed reports whether the payload was compressed before encryption.
func (f Flags) IsCompressed() bool { return f&FlagCompressed != 0 }

// Encode assembles a container from its fields. All header fields are
// fixed-length, so the layout needs no delimiters or length prefixes.
func Encode(salt []byte, flags Flags, ciphertext []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("invalid salt length: %d", len(salt))
	}

	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, salt...)
	out = append(out, byte(flags))
	out = append(out, ciphertext...)
	return out, nil
}

// Decode splits a container back into salt, flags, and ciphertext. Input
// shorter than the fixed header fails with ErrMalformedContainer; the
// ciphertext itself is validated later by the marker check.
func Decode(raw []byte) (salt []byte, flags Flags, ciphertext []byte, err error) {
	if len(raw) < HeaderSize {
		return nil, 0, nil, ErrMalformedContainer
	}

	salt = raw[:SaltSize]
	flags = Flags(raw[SaltSize])
	ciphertext = raw[HeaderSize:]
	return salt, flags, ciphertext, nil
}

// WrapPayload prepends the marker to payload, producing the plaintext that
// is handed to the cipher.
func WrapPayload(payload []byte) []byte {
	out := make([]byte, 0, MarkerSize+len(payload))
	out = append(out, marker...)
	out = append(out, payload...)
	return out
}

// UnwrapPayload verifies and strips the marker from decrypted plaintext.
// A missing or mismatched marker fails with ErrAuthenticationFailed: the
// password was wrong, or the container was corrupted or tampered with.
func UnwrapPayload(plain []byte) ([]byte, error) {
	if len(plain) < MarkerSize || !bytes.Equal(plain[:MarkerSize], marker) {
		return nil, ErrAuthenticationFailed
	}
	return plain[MarkerSize:], nil
}
