package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"errors"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenWithoutUser = errors.New("token carries no user id")

// TokenValidator turns a bearer token into the acting identity. It trusts the signed claims
// and does not look the user up.
type TokenValidator interface {
	Authenticate(tokenString string) (policy.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) Authenticate(tokenString string) (policy.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return policy.Actor{}, err
	}
	if claims.UserID == uuid.Nil {
		return policy.Actor{}, ErrTokenWithoutUser
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return policy.Actor{}, err
	}

	return policy.Actor{ID: claims.UserID, Role: role}, nil
}
