package domain

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrPreferenceNotFound  = errors.New("preference not found")
	ErrStorageFailure      = errors.New("preference storage failure")
)
