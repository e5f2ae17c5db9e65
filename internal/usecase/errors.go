package usecase

import "errors"

// ErrValidation marks input rejected locally, before any store call.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned on failed admin login.
var ErrInvalidCredentials = errors.New("invalid email or password")
