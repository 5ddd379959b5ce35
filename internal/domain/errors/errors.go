package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidWorkout     = errors.New("invalid workout")
	ErrInvalidID          = errors.New("invalid identifier")
)
