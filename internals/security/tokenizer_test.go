package security

import (
	"testing"
	"time"

	"incident-board/config"
	"incident-board/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(&config.AuthConfig{Secret: "s3cret", ExpiryMin: 5})

	token, err := ts.GenerateAccessToken(RequestClaims{UserID: "6f1c2a1e-0000-4000-8000-000000000001", Email: "ops@example.com"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ts.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != "6f1c2a1e-0000-4000-8000-000000000001" || claims.Email != "ops@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	ts := NewTokenService(&config.AuthConfig{Secret: "s3cret", ExpiryMin: 5})
	other := NewTokenService(&config.AuthConfig{Secret: "other", ExpiryMin: 5})

	foreign, _ := other.GenerateAccessToken(RequestClaims{UserID: "u"})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, RequestClaims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, _ := expired.SignedString([]byte("s3cret"))

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, RequestClaims{UserID: "u"})
	noExpiryToken, _ := noExpiry.SignedString([]byte("s3cret"))

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        expiredToken,
		"missing expiry": noExpiryToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ts.ValidateAccessToken(token)
			if !apperror.IsKind(err, apperror.Unauthorised) {
				t.Fatalf("expected Unauthorised, got %v", err)
			}
		})
	}
}
