package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/game-roster/services"
)

type contextKey string

const claimsContextKey contextKey = "claims"

const badHeaderMessage = "Bad Authorization header. Expected value 'Bearer <JWT>'"

// TokenParser проверяет access-токен; реализуется services.AuthService.
type TokenParser interface {
	ParseAccessToken(tokenString string) (*services.AccessClaims, error)
}

// Authenticate пропускает запрос дальше только с валидным Bearer-токеном.
func Authenticate(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, services.ErrTokenMissing.Error())
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				unauthorized(w, badHeaderMessage)
				return
			}

			claims, err := parser.ParseAccessToken(token)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrTokenExpired):
					unauthorized(w, services.ErrTokenExpired.Error())
				default:
					unauthorized(w, services.ErrTokenInvalid.Error())
				}
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
