package tui

import "errors"

var (
	// ErrAborted indicates the user left the prompt without submitting.
	ErrAborted = errors.New("password prompt aborted")

	// ErrPasswordMismatch indicates the confirmation did not match the
	// password. Only possible when confirmation is requested.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
