package handler

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user's ID from the JWT placed in the
// context by the echo-jwt middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(userID)
}
