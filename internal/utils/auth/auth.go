package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

const (
	TokenExpire = 3 * time.Hour
	tokenIssuer = "gopher-coins"
)

// Claims identify a wallet owner. The user ID travels as the subject.
type Claims struct {
	jwt.RegisteredClaims
}

func (c Claims) UserID() string {
	return c.Subject
}

func buildJWTString(id string, secret []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   id,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpire)),
			},
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

// Authenticate issues the session cookie of user id. The cookie lives as
// long as the token inside it.
func Authenticate(id string, secret []byte) (http.Cookie, error) {
	now := time.Now()
	jwtString, err := buildJWTString(id, secret, now)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("authentication failed: %w", err)
	}
	return http.Cookie{
		Name:     model.CookieJWT,
		Value:    jwtString,
		Path:     "/",
		Expires:  now.Add(TokenExpire),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Claims{}, serviceerrs.ErrTokenExpired
	}
	if err != nil {
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}
	if claims.Subject == "" {
		return Claims{}, errors.New("token carries no user")
	}
	return *claims, nil
}

// Hash returns the hex SHA-256 of s. Logins and passwords are stored only
// in this form.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
