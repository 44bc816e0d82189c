package service

import (
	"context"

	"github.com/MKhiriev/cryptfile/models"
)

// CryptService runs one encrypt-or-decrypt operation per call.
//
// Each call walks the state machine
//
//	Start → ValidateTarget → EncryptFlow|DecryptFlow →
//	(optional remove of original) → Done
//
// with any step failure terminating the call. The output artifact is always
// written atomically: on failure the output path either does not exist or
// keeps its prior state, and the original is never removed unless the new
// artifact was fully written.
type CryptService interface {
	// Run executes the operation described by req and reports the produced
	// artifact. Wrong-password decryption surfaces as
	// container.ErrAuthenticationFailed, an expected end-user outcome
	// rather than a crash.
	Run(ctx context.Context, req models.Request) (models.Result, error)
}
