package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type Login struct {
	repo      domain.Repository
	hasher    auth.PasswordHasher
	tokens    auth.TokenService
	limiter   domain.LoginLimiter
	validator *validators.Validator
	audit     audit.Sink
	logger    *slog.Logger
}

func NewLogin(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	limiter domain.LoginLimiter,
	validator *validators.Validator,
	audit audit.Sink,
	logger *slog.Logger,
) *Login {
	return &Login{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		limiter:   limiter,
		validator: validator,
		audit:     audit,
		logger:    logger.With("usecase", "login"),
	}
}

// Execute authenticates by email or phone. Unknown identifiers and wrong
// passwords produce the same error.
func (uc *Login) Execute(ctx context.Context, in validators.Login) (*Session, error) {
	identifier := strings.TrimSpace(in.EmailOrPhone)
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}
	in.EmailOrPhone = identifier

	if err := uc.validator.Struct(in); err != nil {
		return nil, domain.ErrMissingCredentials
	}

	allowed, err := uc.limiter.Allowed(ctx, identifier)
	if err != nil {
		uc.logger.Warn("login limiter unavailable", "error", err)
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	u, err := uc.repo.FindByEmailOrPhone(ctx, identifier)
	if errors.Is(err, domain.ErrNotFound) {
		uc.fail(ctx, identifier, nil)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !uc.hasher.Verify(u.HashedPassword, in.Password) {
		uc.fail(ctx, identifier, audit.Ptr(u.ID))
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.limiter.Reset(ctx, identifier); err != nil {
		uc.logger.Warn("reset login attempts", "error", err)
	}

	return newSession(ctx, uc.tokens, *u)
}

func (uc *Login) fail(ctx context.Context, identifier string, userID *uint) {
	if err := uc.limiter.Fail(ctx, identifier); err != nil {
		uc.logger.Warn("record login failure", "error", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: audit.ActionLoginFailed,
		Entity: "user",
		Metadata: map[string]string{
			"identifier": identifier,
		},
	})
}
