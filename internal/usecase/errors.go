package usecase

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternal              = errors.New("internal error")
	ErrSeekerProfileNotFound = errors.New("seeker profile not found")
	ErrPostingNotFound       = errors.New("job posting not found")
	ErrSavedJobNotFound      = errors.New("saved job not found")
)
