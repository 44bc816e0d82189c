package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	s1, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if len(s2) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kc := NewKeyChain()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, iv1, err := kc.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, iv2, err := kc.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if len(iv1) != IVSize {
		t.Fatalf("IV length = %d, want %d", len(iv1), IVSize)
	}
	if !bytes.Equal(k1, k2) || !bytes.Equal(iv1, iv2) {
		t.Fatalf("expected identical key material for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	kc := NewKeyChain()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, iv1, err := kc.DeriveKey(password, salt1)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, iv2, err := kc.DeriveKey(password, salt2)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
	if bytes.Equal(iv1, iv2) {
		t.Fatalf("expected different IVs for different salts")
	}
}

func TestDeriveKey_DifferentPasswordProducesDifferentKey(t *testing.T) {
	kc := NewKeyChain()

	salt := bytes.Repeat([]byte{0x7F}, SaltSize)

	k1, _, err := kc.DeriveKey("password one", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, _, err := kc.DeriveKey("password two", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDeriveKey_RejectsBadSaltLength(t *testing.T) {
	kc := NewKeyChain()

	if _, _, err := kc.DeriveKey("pw", []byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected error for short salt, got nil")
	}
}
