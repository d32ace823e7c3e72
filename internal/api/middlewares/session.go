package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/talx-hub/gopher-coins/internal/model"
)

// Session puts the browsing session id into the request context. A new
// session cookie is issued when the request carries none.
func Session(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(model.CookieSession); err == nil {
			if _, err = uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     model.CookieSession,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), model.KeyContextSession, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
