package crypto

import "errors"

// ErrInvalidPadding indicates that decrypted PKCS#7 padding bytes are
// structurally invalid. It is a wrong-key or corruption signal; the service
// layer folds it into its unified authentication failure so callers cannot
// distinguish a padding failure from a marker mismatch.
var ErrInvalidPadding = errors.New("invalid padding")
