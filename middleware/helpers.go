package middleware

import (
	"context"
	"errors"

	"github.com/Dosada05/game-roster/services"
)

var errNoClaims = errors.New("token claims not found in context")

func GetClaimsFromContext(ctx context.Context) (*services.AccessClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*services.AccessClaims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}

// GetSubjectFromContext возвращает sub токена (имя пользователя).
func GetSubjectFromContext(ctx context.Context) (string, error) {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
