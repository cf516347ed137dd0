package jwt

import (
	"errors"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Both errors carry the unauthorized kind so handlers can render them directly.
var (
	ErrInvalidToken = errs.Mark(errors.New("invalid token"), errs.ErrUnauthorized)
	ErrExpiredToken = errs.Mark(errors.New("token expired"), errs.ErrUnauthorized)
)

const issuer = "furnicraft"

// Claims identify the account in the standard subject claim; the role rides
// alongside as a private claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// Service signs and verifies HS256 session tokens.
type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	issuedAt := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenDuration)),
		},
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign access token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) keyFunc(*jwt.Token) (any, error) {
	return s.secretKey, nil
}
