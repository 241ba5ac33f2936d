package service

import (
	"errors"

	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
)

var ErrNotFound = errors.New("service not found")

const (
	CodeNotFound      = "service_not_found"
	CodeInvalidUserID = "invalid_user_id"
	CodeOwnerNotFound = "owner_not_found"
	CodeTooManyPhotos = "too_many_photos"
	CodeUploadFailed  = "upload_failed"
)

var (
	ErrServiceNotFound = httperr.ErrBusiness(CodeNotFound)
	ErrInvalidUserID   = httperr.ErrBusiness(CodeInvalidUserID)
	ErrOwnerNotFound   = httperr.ErrBusiness(CodeOwnerNotFound)
	ErrTooManyPhotos   = httperr.ErrBusiness(CodeTooManyPhotos)
	ErrUploadFailed    = httperr.ErrBusiness(CodeUploadFailed)
)
