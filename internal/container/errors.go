package container

import "errors"

var (
	// ErrMalformedContainer indicates input too short to hold the fixed
	// container header, or otherwise unrecognizable as a container.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrAuthenticationFailed indicates the decrypted marker did not match
	// the expected constant: wrong password, corruption, or tampering.
	// Padding failures from the cipher are folded into this same error so
	// a caller cannot tell which check rejected the input.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or corrupted data")
)
