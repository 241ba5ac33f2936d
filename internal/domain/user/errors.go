package user

import (
	"errors"

	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
)

// ErrNotFound is returned by repositories; use cases translate it.
var ErrNotFound = errors.New("user not found")

const (
	CodeAlreadyExists      = "user_already_exists"
	CodeNotFound           = "user_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeMissingCredentials = "missing_credentials"
	CodeNothingToUpdate    = "nothing_to_update"
	CodeTooManyAttempts    = "too_many_attempts"
	CodeUploadFailed       = "upload_failed"
	CodeForbidden          = "forbidden"
)

var (
	ErrAlreadyExists      = httperr.ErrBusiness(CodeAlreadyExists)
	ErrUserNotFound       = httperr.ErrBusiness(CodeNotFound)
	ErrInvalidCredentials = httperr.ErrBusiness(CodeInvalidCredentials)
	ErrMissingCredentials = httperr.ErrBusiness(CodeMissingCredentials)
	ErrNothingToUpdate    = httperr.ErrBusiness(CodeNothingToUpdate)
	ErrTooManyAttempts    = httperr.ErrBusiness(CodeTooManyAttempts)
	ErrUploadFailed       = httperr.ErrBusiness(CodeUploadFailed)
	ErrForbidden          = httperr.ErrBusiness(CodeForbidden)
)
