package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Yashmaurya7/ecommerce-website/models"
	"github.com/Yashmaurya7/ecommerce-website/responses"
)

// Auth validates the bearer token and stores the acting user's id and
// role in Locals for the handlers downstream.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return responses.NewError(fiber.StatusUnauthorized, "No auth token, access denied")
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return responses.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return responses.NewError(fiber.StatusUnauthorized, "Token verification failed, access denied")
		}

		userId, ok := claims["id"].(string)
		if !ok || userId == "" {
			return responses.NewError(fiber.StatusUnauthorized, "User ID not found in token")
		}

		role, _ := claims["role"].(string)
		if role == "" {
			role = models.RoleUser
		}

		c.Locals("userId", userId)
		c.Locals("role", role)

		return c.Next()
	}
}

// AdminOnly rejects requests whose token does not carry the admin role.
// It must run after Auth.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin {
			return responses.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}
