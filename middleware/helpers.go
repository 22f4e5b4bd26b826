package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Имена JWT claims, с которыми выписывается сессионный токен.
const (
	jwtClaimAdminID = "sub"
	jwtClaimEmail   = "email"
)

func GetAdminIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(sessionContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("session claims not found in context or invalid type")
	}

	idClaim, ok := claims[jwtClaimAdminID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim in token", jwtClaimAdminID)
	}

	// JSON-числа декодируются в float64.
	idFloat, ok := idClaim.(float64)
	if !ok {
		return 0, fmt.Errorf("invalid type for %q claim: expected number, got %T", jwtClaimAdminID, idClaim)
	}
	id := int(idFloat)
	if id <= 0 {
		return 0, fmt.Errorf("invalid admin ID value in %q claim: %d", jwtClaimAdminID, id)
	}

	return id, nil
}

func GetAdminEmailFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(sessionContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("session claims not found in context or invalid type")
	}

	emailClaim, ok := claims[jwtClaimEmail]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimEmail)
	}
	email, ok := emailClaim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for %q claim: expected string, got %T", jwtClaimEmail, emailClaim)
	}

	return email, nil
}
