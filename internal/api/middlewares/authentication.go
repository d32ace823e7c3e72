package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
	"github.com/talx-hub/gopher-coins/internal/utils/auth"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

const bearerPrefix = "Bearer "

var errNoToken = errors.New("no token in request")

// tokenFromRequest prefers the session cookie and falls back to a bearer
// token for API clients.
func tokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(model.CookieJWT); err == nil && c.Value != "" {
		return c.Value, nil
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimPrefix(h, bearerPrefix), nil
	}
	return "", errNoToken
}

// Authentication lets through only requests of a known wallet owner and
// puts the owner's ID into the request context.
func Authentication(secret []byte, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			token, err := tokenFromRequest(r)
			if err == nil {
				var claims auth.Claims
				if claims, err = auth.CheckToken(token, secret); err == nil {
					ctx := context.WithValue(r.Context(), model.KeyContextUserID, claims.UserID())
					ctx = logger.With(ctx, slog.String("user_id", claims.UserID()))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			log.LogAttrs(r.Context(),
				slog.LevelWarn,
				"authentication failed",
				slog.String("path", r.URL.Path),
				slog.Any(model.KeyLoggerError, err),
			)
			if errors.Is(err, serviceerrs.ErrTokenExpired) {
				http.SetCookie(w, &http.Cookie{
					Name:     model.CookieJWT,
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
			}
			http.Error(w, "authentication failed", http.StatusUnauthorized)
		}
		return http.HandlerFunc(authFunc)
	}
}
