package auth

import (
	"errors"

	"halisaha-api/internal/domain/user"
)

var ErrEmptyPassword = errors.New("password is required")

// Credentials is a login attempt. Length rules apply at registration only,
// so a short password here is a mismatch rather than a validation error.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
