package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/luckyroad/casinohub/internal/api/apierr"
	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/services/auth"
)

type contextKey string

const accountContextKey contextKey = "account"

// Auth creates bearer-token authentication middleware. Failures are written
// in the auth envelope shape, matching both route families.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusUnauthorized, "missing authentication token"))
				return
			}

			account, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				apierr.WriteAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetAccount returns the authenticated account from the request context
func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}

// MustGetAccount returns the authenticated account or panics
func MustGetAccount(ctx context.Context) *model.Account {
	account := GetAccount(ctx)
	if account == nil {
		panic("no account in context - auth middleware not applied?")
	}
	return account
}
