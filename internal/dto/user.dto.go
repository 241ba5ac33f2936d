package dto

import (
	"time"

	"github.com/nowshad-islam-dev/skipq-api/internal/models"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

var views = validators.New()

// PublicUser is the response shape of a user. It never carries the hash.
type PublicUser struct {
	ID             uint      `json:"id" validate:"gt=0"`
	Email          string    `json:"email" validate:"required,email"`
	Username       string    `json:"username" validate:"required,min=3"`
	Phone          string    `json:"phone"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt" validate:"required"`
}

func newPublicUser(u models.User) PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Phone:          u.Phone,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// ToPublicUser projects u and fails if the record does not fit the view.
func ToPublicUser(u models.User) (PublicUser, error) {
	pu := newPublicUser(u)
	if err := views.Struct(pu); err != nil {
		return PublicUser{}, err
	}
	return pu, nil
}

// PublicUsers projects every record, silently dropping non-conforming ones.
func PublicUsers(users []models.User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		pu, err := ToPublicUser(u)
		if err != nil {
			continue
		}
		out = append(out, pu)
	}
	return out
}
