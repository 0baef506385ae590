package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers"
	"github.com/leqet/gym-backend/middleware"
	"github.com/leqet/gym-backend/models"
)

// SetupCatalogRoutes configures the food and exercise catalog routes.
// Reads are open to any authenticated user; writes are for coaches and
// admins, except ComposeFood which members use to log combined dishes.
func SetupCatalogRoutes(app *fiber.App) {
	catalog := app.Group("/catalog", middleware.Protected())

	catalog.Get("/foods", controllers.GetFoods)
	catalog.Post("/foods", middleware.RequireRole(models.RoleNutritionist, models.RoleAdmin), controllers.CreateFood)
	catalog.Post("/foods/compose", controllers.ComposeFood)

	catalog.Get("/exercises", controllers.GetExercises)
	catalog.Post("/exercises", middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.CreateExercise)
}
