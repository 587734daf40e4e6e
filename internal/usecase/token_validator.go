package usecase

import (
	"vet-scheduler/internal/domain/user"
	"vet-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is the caller as described by a validated token.
type Identity struct {
	UserID   uuid.UUID
	Role     user.Role
	ClinicID *int64
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: claims.UserID, Role: role, ClinicID: claims.ClinicID}, nil
}
