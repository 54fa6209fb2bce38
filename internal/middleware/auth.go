// Package middleware provides HTTP middleware for the extension.
// The platform issues the JWTs; this layer only validates them and exposes
// the claims to handlers.
package middleware

import (
	"errors"
	"log"
	"strings"

	"shiprate/internal/config"
	"shiprate/internal/models"
	"shiprate/internal/services/settings"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates platform-issued Bearer tokens and stores the
// claims in the request context.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(config.GetEnv("JWT_SECRET", "shiprate")),
	}
}

// Handler checks for a Bearer token with a valid signature and expiry and
// puts *models.UserClaims into locals under "claims" and the account id
// under "userID".
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || claims.UserID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// APIKeyMiddleware authenticates storefront requests carrying an X-Api-Key
// header of the form "<userID>.<secret>".
type APIKeyMiddleware struct {
	settings *settings.Service
}

func NewAPIKeyMiddleware(settingsSvc *settings.Service) *APIKeyMiddleware {
	return &APIKeyMiddleware{settings: settingsSvc}
}

func (m *APIKeyMiddleware) Handler(c *fiber.Ctx) error {
	key := c.Get("X-Api-Key")
	if key == "" {
		return response.Unauthorized(c)
	}

	userID, err := m.settings.VerifyAPIKey(c.Context(), key)
	if err != nil {
		if !errors.Is(err, settings.ErrInvalidAPIKey) {
			log.Printf("api key verification error: %v", err)
		}
		return response.Unauthorized(c)
	}

	c.Locals("userID", userID)
	return c.Next()
}
