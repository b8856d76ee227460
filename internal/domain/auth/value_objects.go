package auth

import (
	"errors"

	"padel-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrInsufficientRole   = errors.New("insufficient role")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Principal is the authenticated admin attached to a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) Require(required user.Role) error {
	if !p.Role.AtLeast(required) {
		return ErrInsufficientRole
	}
	return nil
}
