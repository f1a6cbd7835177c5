package middle

/**
- Work of this file:
	- Validates the bearer token
	- Stores the authenticated user in context
	- Exposes a helper to retrieve it
**/

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"incident-board/internals/security"
	"incident-board/pkg/apperror"
	"incident-board/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type userCtxKeyType struct{}

var userCtxKey = userCtxKeyType{}

type AuthenticatedUser struct {
	UserID uuid.UUID
	Email  string
}

type TokenValidator interface {
	ValidateAccessToken(token string) (*security.RequestClaims, error)
}

type AuthMiddleware struct {
	tokenSvc TokenValidator
}

func NewAuthMiddleware(tokenSvc TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
	}
}

func (a *AuthMiddleware) Handle(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middleware.GetReqID(ctx)

		token, err := extractBearerToken(r)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthorised, err.Error())
			return
		}

		claims, err := a.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			utils.FromAppError(w, reqID, err)
			return
		}

		if claims.UserID == "" {
			utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthorised, "user is unauthorised")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthorised, "user is unauthorised")
			return
		}

		authUser := &AuthenticatedUser{
			UserID: userID,
			Email:  claims.Email,
		}

		newCtx := WithUser(ctx, authUser)
		next.ServeHTTP(w, r.WithContext(newCtx))
	}

	return http.HandlerFunc(fn)
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")

	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid Authorization header")
	}

	return parts[1], nil
}

// WithUser stores an authenticated user in ctx.
func WithUser(ctx context.Context, user *AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

func UserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(userCtxKey).(*AuthenticatedUser)
	return user, ok
}
