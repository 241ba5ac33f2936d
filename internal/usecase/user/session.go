package user

import (
	"context"
	"fmt"

	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

// Session is what login and update hand back: a fresh token and the public view.
type Session struct {
	Token string
	User  dto.PublicUser
}

func newSession(ctx context.Context, tokens auth.TokenService, u models.User) (*Session, error) {
	view, err := dto.ToPublicUser(u)
	if err != nil {
		return nil, fmt.Errorf("user view: %w", err)
	}

	token, err := tokens.Issue(ctx, auth.Claims{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{Token: token, User: view}, nil
}
