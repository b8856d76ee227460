package usecase

import (
	"padel-booking/internal/domain/auth"
	"padel-booking/internal/domain/user"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/jwt"
)

var ErrInvalidToken = errs.New("invalid access token")

// TokenValidator turns a bearer or cookie token into the admin principal for the request.
type TokenValidator interface {
	Authenticate(token string) (auth.Principal, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) Authenticate(token string) (auth.Principal, error) {
	if token == "" {
		return auth.Principal{}, ErrInvalidToken
	}
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, ErrInvalidToken)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, ErrInvalidToken)
	}
	return auth.Principal{UserID: claims.UserID, Role: role}, nil
}
