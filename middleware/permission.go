package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
)

// RequireRole allows only the listed roles through. Roles outside the
// known set fail closed.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || !models.ValidRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Unknown role",
			})
		}

		for _, allowed := range roles {
			if models.UserRole(role) == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have the required role to perform this action",
		})
	}
}

// RequireCoach allows trainers and nutritionists.
func RequireCoach() fiber.Handler {
	return RequireRole(models.RoleTrainer, models.RoleNutritionist)
}

// RequirePermission checks the user's role permissions in the database.
func RequirePermission(resource string, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User ID not found in context",
			})
		}

		var dbUser models.User
		if err := db.DB.Preload("Role.Permissions").First(&dbUser, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		for _, permission := range dbUser.Role.Permissions {
			if permission.Resource == resource && permission.Action == action {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
