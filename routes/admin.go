package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers"
	"github.com/leqet/gym-backend/middleware"
	"github.com/leqet/gym-backend/models"
)

// SetupAdminRoutes configures user administration and system
// maintenance routes.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	// User management
	admin.Get("/users", controllers.GetUsers)
	admin.Post("/users/invite", controllers.InviteUser)
	admin.Patch("/users/:id", controllers.UpdateUser)
	admin.Delete("/users/:id", controllers.DeleteUser)

	// System
	admin.Get("/stats", controllers.GetSystemStats)
	admin.Get("/monitor", controllers.GetSystemMonitor)
	admin.Get("/health", controllers.RunHealthCheck)
	admin.Post("/backup", middleware.RequirePermission("system", "manage"), controllers.TriggerBackup)
	admin.Post("/maintenance/clear", middleware.RequirePermission("system", "manage"), controllers.ClearCacheAndLogs)
}
