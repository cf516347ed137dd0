package usecase

import (
	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer or cookie token to the signed-in account.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// TokenVerifier is the signature check TokenValidator builds on.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidator struct {
	verifier TokenVerifier
}

func NewTokenValidator(verifier *jwt.Service) TokenValidator {
	return &tokenValidator{verifier: verifier}
}

// ValidateToken accepts only tokens whose subject is an account id and whose
// role is one the domain knows.
func (v *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := claims.AccountID()
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrapf(err, "token role %q", claims.Role), jwt.ErrInvalidToken)
	}
	return userID, role, nil
}
