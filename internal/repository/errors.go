// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrCoachNotFound lets the login handler answer 401 instead of
// 500, while ErrCorruptState signals that a stored team blob could not be
// decoded and should be cleared rather than retried.
package repository

import "errors"

// ErrCoachNotFound is returned when no coach account matches a lookup.
var ErrCoachNotFound = errors.New("coach not found")

// ErrEmailExists is returned when registering an email that is taken.
// Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrCorruptState is returned when a stored value cannot be decoded into
// its destination type.
var ErrCorruptState = errors.New("stored team state is corrupt")
