package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload carried inside a token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens. Secret and TTL are injected
// at construction; there is no package-level signing state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Generate issues a compact signed token for the given identity, expiring
// TTL from now.
func (s *TokenService) Generate(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates tokenString and returns the original claims
// unchanged. Failures are tagged: TOKEN_EXPIRED when the token is past its
// expiry, INVALID_TOKEN for a bad signature or malformed structure, and
// TOKEN_VERIFICATION_FAILED for anything else.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewAuthError(CodeTokenExpired, "Token has expired")
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, NewAuthError(CodeInvalidToken, "Invalid token")
		default:
			return nil, NewAuthError(CodeTokenVerificationFailed, "Token verification failed")
		}
	}
	if !token.Valid {
		return nil, NewAuthError(CodeInvalidToken, "Invalid token")
	}
	return claims, nil
}
