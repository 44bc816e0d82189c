package service

import "errors"

var (
	// ErrEmptyPassword rejects operations with no password. Policy
	// decision: an empty password derives a key just fine, it is simply
	// never what the user meant.
	ErrEmptyPassword = errors.New("empty password")

	// ErrTargetNotFound indicates the target path does not exist.
	ErrTargetNotFound = errors.New("target not found")

	// ErrInvalidTarget indicates the target exists but has the wrong type
	// for the requested mode (a directory where a file was expected, or
	// the reverse).
	ErrInvalidTarget = errors.New("invalid target for requested mode")

	// ErrUnknownMode indicates a request whose mode is neither encrypt nor
	// decrypt. Only reachable through a programming error in the caller.
	ErrUnknownMode = errors.New("unknown operation mode")
)
