package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainService "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	domainUser "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type failure struct {
	status  int
	message string
}

var failures = map[string]failure{
	domainUser.CodeAlreadyExists:      {http.StatusBadRequest, "User with this email, phone or username already exists"},
	domainUser.CodeNotFound:           {http.StatusNotFound, "User not found"},
	domainUser.CodeInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials"},
	domainUser.CodeMissingCredentials: {http.StatusBadRequest, "Email/Phone and password are required"},
	domainUser.CodeNothingToUpdate:    {http.StatusBadRequest, "Nothing to update"},
	domainUser.CodeTooManyAttempts:    {http.StatusTooManyRequests, "Too many failed login attempts, try again later"},
	domainUser.CodeForbidden:          {http.StatusForbidden, "You can only modify your own account"},

	domainService.CodeNotFound:      {http.StatusNotFound, "Service not found"},
	domainService.CodeInvalidUserID: {http.StatusBadRequest, "userId must be a positive integer"},
	domainService.CodeOwnerNotFound: {http.StatusBadRequest, "Owner does not exist"},
	domainService.CodeTooManyPhotos: {http.StatusBadRequest, "Too many photos"},

	// Shared by both domains.
	domainService.CodeUploadFailed: {http.StatusInternalServerError, "Failed to upload file"},
}

// respond writes err as an HTTP error. overrides replaces the status for
// codes whose meaning depends on the route.
func respond(c *gin.Context, log *slog.Logger, err error, overrides map[string]int) {
	if ve, ok := validators.AsValidation(err); ok {
		httperr.Validation(c, ve.Fields)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		f, known := failures[be.Code]
		if known {
			status := f.status
			if s, ok := overrides[be.Code]; ok {
				status = s
			}
			httperr.Write(c, status, be.Code, f.message)
			return
		}
	}

	log.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	httperr.Internal(c, "internal_error", "Internal server error")
}
