// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"

	"github.com/MKhiriev/cryptfile/internal/container"
	"github.com/MKhiriev/cryptfile/internal/service"
)

// humanizeError maps the expected end-user failure modes to short messages
// that do not read like stack traces. Anything unexpected passes through
// verbatim.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, container.ErrAuthenticationFailed):
		return "wrong password or corrupted file"
	case errors.Is(err, container.ErrMalformedContainer):
		return "not an encrypted file"
	case errors.Is(err, service.ErrTargetNotFound):
		return "no such file or directory"
	case errors.Is(err, service.ErrInvalidTarget):
		return "target type does not match the requested operation"
	default:
		return err.Error()
	}
}
