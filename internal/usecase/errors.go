package usecase

import (
	"errors"

	"fieldops/internal/domain/access"
)

// Error classes. Every specific error below wraps exactly one of them so the HTTP layer can
// classify with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = access.ErrForbidden
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrInvalidID             = classified(ErrValidation, "invalid id")
	ErrProjectNotFound       = classified(ErrNotFound, "project not found")
	ErrRequestNotFound       = classified(ErrNotFound, "service request not found")
	ErrRenditionNotFound     = classified(ErrNotFound, "rendition not found")
	ErrNotificationNotFound  = classified(ErrNotFound, "notification not found")
	ErrUserNotFound          = classified(ErrNotFound, "user not found")
	ErrMilestoneNotFound     = classified(ErrNotFound, "milestone not found")
	ErrPhotoNotFound         = classified(ErrNotFound, "photo not found")
	ErrLocationPointNotFound = classified(ErrNotFound, "location point not found")

	ErrDuplicateIdentifier    = classified(ErrConflict, "could not allocate a unique identifier, retry the request")
	ErrDuplicateOrderNumber   = classified(ErrConflict, "a project with that order number already exists")
	ErrDuplicateEmail         = classified(ErrConflict, "a user with that email already exists")
	ErrDuplicateCategory      = classified(ErrConflict, "an expense category with that name already exists")
	ErrClientAlreadyAdded     = classified(ErrConflict, "the client already belongs to this project")
	ErrConcurrentStatusChange = classified(ErrConflict, "the status was changed by someone else, reload and retry")

	ErrInvalidCredentials = classified(ErrUnauthorized, "invalid credentials")
	ErrInactiveUser       = classified(ErrUnauthorized, "user account is inactive")
	ErrInvalidToken       = classified(ErrUnauthorized, "invalid or expired token")

	ErrNoFiles = classified(ErrValidation, "no files were uploaded")
)

type classifiedError struct {
	class error
	msg   string
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Unwrap() error { return e.class }

func classified(class error, msg string) error {
	return &classifiedError{class: class, msg: msg}
}

// invalid builds a one-off validation error carrying msg.
func invalid(msg string) error {
	return classified(ErrValidation, msg)
}
