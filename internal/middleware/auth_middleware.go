package middleware

import (
	"strings"

	"go-inventory-api/internal/policy"
	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer token, re-checks the account against
// the database and puts the caller's identity into the request context.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.FullName())
		c.Locals("user_role", user.RoleCode())

		return c.Next()
	}
}

// RequirePermission checks the caller's role against the policy table for
// the named action. Runs after RequireAuth.
func RequirePermission(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleCode, ok := c.Locals("user_role").(string)
		if !ok || roleCode == "" {
			return c.Status(403).JSON(fiber.Map{"error": "No role assigned"})
		}

		if !policy.Allowed(roleCode, action) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + action + "' permission",
			})
		}

		return c.Next()
	}
}
