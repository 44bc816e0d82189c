// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesCBCCipher is the private implementation of [Cipher].
type aesCBCCipher struct{}

// NewCipher constructs the AES-256-CBC [Cipher] used for all container
// payloads.
func NewCipher() Cipher {
	return &aesCBCCipher{}
}

// Encrypt implements [Cipher]. The plaintext is padded to a whole number of
// AES blocks with PKCS#7 before encryption, so output length is always
// len(plaintext) rounded up to the next block boundary.
func (c *aesCBCCipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("invalid IV length: %d", len(iv))
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt implements [Cipher]. A ciphertext that is empty or not a whole
// number of blocks can never have been produced by Encrypt and fails with
// ErrInvalidPadding immediately; otherwise the blocks are decrypted and the
// PKCS#7 padding is validated and stripped.
func (c *aesCBCCipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("invalid IV length: %d", len(iv))
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	return pkcs7Unpad(padded, aes.BlockSize)
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding. All structural failures
// collapse into ErrInvalidPadding: the caller must not learn which byte was
// wrong.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrInvalidPadding
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-padding], nil
}
