package validators

import "strings"

// --------- Users ---------

type NewUser struct {
	Email    string `json:"email" form:"email" validate:"required,max=100,email,email_domain"`
	Phone    string `json:"phone" form:"phone" validate:"required,max=20"`
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=6,maxbytes=72"` // bcrypt hashes at most 72 bytes
}

// Normalize trims identifiers and lower-cases the email in place.
func (u *NewUser) Normalize() {
	u.Email = normalizeEmail(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Username = strings.TrimSpace(u.Username)
}

// UpdateUser is a partial update. Password proves knowledge of the current
// password and is always required.
type UpdateUser struct {
	Email       string `json:"email" form:"email" validate:"omitempty,max=100,email,email_domain"`
	Phone       string `json:"phone" form:"phone" validate:"max=20"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"omitempty,min=6,maxbytes=72"`
	Password    string `json:"password" form:"password" validate:"required,min=6"`
}

func (u *UpdateUser) Normalize() {
	u.Email = normalizeEmail(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
}

// HasChanges reports whether any of email, phone or newPassword is present.
func (u *UpdateUser) HasChanges() bool {
	return u.Email != "" || u.Phone != "" || u.NewPassword != ""
}

type Login struct {
	EmailOrPhone string `json:"emailOrPhone" form:"emailOrPhone" validate:"required"`
	Password     string `json:"password" form:"password" validate:"required"`
}

// --------- Services ---------

type NewService struct {
	ServiceName        string `json:"serviceName" form:"serviceName" validate:"required,min=3,max=100"`
	ServiceDescription string `json:"serviceDescription" form:"serviceDescription" validate:"required,min=6"`
	AverageWaitingTime string `json:"averageWaitingTime" form:"averageWaitingTime" validate:"max=50"`
	ServiceLocation    string `json:"serviceLocation" form:"serviceLocation" validate:"required,min=1,max=255"`
	UserID             string `json:"userId" form:"userId" validate:"required"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
