package storage

import (
	"errors"

	"churchEvents/internal/models"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventExists          = errors.New("event slug already exists")
	ErrEventInactive        = errors.New("event is not accepting registrations")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCapacityExceeded     = errors.New("event capacity exceeded")
	ErrConfigNotFound       = errors.New("config not found")
	ErrConfigExists         = errors.New("config key already exists")
	ErrUploadNotFound       = errors.New("upload not found")
)

// ConfigCheck vets a new value against the stored entry before it is
// written. A non-nil error aborts the whole batch.
type ConfigCheck func(current models.SiteConfig, value string) error
