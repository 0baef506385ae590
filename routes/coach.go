package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers/coach"
	"github.com/leqet/gym-backend/middleware"
	"github.com/leqet/gym-backend/models"
)

// SetupCoachRoutes configures the trainer and nutritionist routes.
func SetupCoachRoutes(app *fiber.App) {
	c := app.Group("/coach", middleware.Protected(), middleware.RequireCoach())

	c.Get("/clients", coach.ListClients)

	// Plan builders
	c.Post("/plans/diet", middleware.RequireRole(models.RoleNutritionist), coach.SaveManualDietPlan)
	c.Post("/plans/diet/default", middleware.RequireRole(models.RoleNutritionist), coach.GenerateDefaultDietPlan)
	c.Post("/plans/workout", middleware.RequireRole(models.RoleTrainer), coach.SaveManualWorkoutPlan)
	c.Post("/plans/workout/default", middleware.RequireRole(models.RoleTrainer), coach.GenerateDefaultWorkoutPlan)

	c.Post("/feedback", middleware.RequireRole(models.RoleNutritionist), coach.SendNutritionistFeedback)

	// Trainer schedule
	c.Get("/schedule", middleware.RequireRole(models.RoleTrainer), coach.GetTrainerSchedule)
	c.Post("/schedule", middleware.RequireRole(models.RoleTrainer), coach.CreateTrainerScheduleSession)
	c.Patch("/schedule/:id/status", middleware.RequireRole(models.RoleTrainer), coach.UpdateSessionStatus)
}
