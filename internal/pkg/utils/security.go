package utils

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParseSessionJWT verifies the session cookie and returns the session id it carries.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevSessionSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrSessionTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.SessionClaimID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrSessionTokenInvalid(nil)
}
