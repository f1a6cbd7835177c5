package security

import (
	"time"

	"incident-board/config"
	"incident-board/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the access tokens issued by the user service. It
// shares the HS256 secret with it.
type TokenService struct {
	secret    []byte
	expiryMin int
}

func NewTokenService(authCfg *config.AuthConfig) *TokenService {
	return &TokenService{
		secret:    []byte(authCfg.Secret),
		expiryMin: authCfg.ExpiryMin,
	}
}

// GenerateAccessToken signs claims. Used by tooling and tests; production
// tokens come from the user service.
func (ts *TokenService) GenerateAccessToken(payload RequestClaims) (string, error) {
	now := time.Now()
	expiryTime := now.Add(time.Duration(ts.expiryMin) * time.Minute)

	payload.ExpiresAt = jwt.NewNumericDate(expiryTime)
	payload.IssuedAt = jwt.NewNumericDate(now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(ts.secret)
}

func (ts *TokenService) ValidateAccessToken(accessToken string) (*RequestClaims, error) {
	const op string = "service.token.validate_access_token"

	claims := &RequestClaims{}

	token, err := jwt.ParseWithClaims(
		accessToken,
		claims,
		func(t *jwt.Token) (any, error) {
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)

	if err != nil || !token.Valid {
		return nil, &apperror.Error{
			Kind:    apperror.Unauthorised,
			Op:      op,
			Message: "invalid token",
			Err:     err,
		}
	}

	return claims, nil
}
