package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers"
	"github.com/leqet/gym-backend/controllers/member"
	"github.com/leqet/gym-backend/middleware"
	"github.com/leqet/gym-backend/models"
)

// SetupMemberRoutes configures the member dashboard, logging, plan and
// schedule routes.
func SetupMemberRoutes(app *fiber.App) {
	m := app.Group("/member", middleware.Protected(), middleware.RequireRole(models.RoleMember))

	// Dashboard
	m.Get("/overview", member.GetMemberOverview)
	m.Get("/dashboard", member.GetDashboardSummary)
	m.Get("/progress", member.GetProgressSummary)

	// Meal logging
	m.Post("/meals", member.LogMeal)
	m.Get("/meals/today", member.GetTodayMeals)
	m.Get("/meals/recent", member.GetRecentMeals)
	m.Get("/meals/:date", member.GetMealsByDate)
	m.Delete("/meals/:id", member.DeleteMealItem)

	// Workout logging
	m.Post("/workouts", member.LogWorkout)
	m.Get("/workouts/today", member.GetTodayWorkouts)
	m.Delete("/workouts/:id", member.DeleteWorkoutItem)

	// Water and steps
	m.Post("/water", member.LogWater)
	m.Post("/steps", member.LogSteps)
	m.Get("/activity/today", member.GetTodayActivity)

	// Check-ins
	m.Post("/checkins", member.CreateMemberCheckIn)
	m.Get("/checkins", member.FetchMemberCheckIns)

	// Notifications and schedule
	m.Get("/notifications", member.FetchNotifications)
	m.Patch("/notifications/:id/read", member.MarkNotificationRead)
	m.Get("/schedule", member.GetMemberSchedule)

	// Plans are shared between members and coaches; the handlers scope
	// by role internally.
	plans := app.Group("/plans", middleware.Protected())
	plans.Get("/diet", controllers.GetMemberDietPlan)
	plans.Get("/workout", controllers.GetMemberWorkoutPlan)
	plans.Get("/messages", controllers.FetchPlanMessages)
	plans.Post("/messages", controllers.SendPlanMessage)

	// Profile
	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/", member.GetMemberProfile)
	profile.Put("/", middleware.RequireRole(models.RoleMember), member.SaveMemberProfile)
	profile.Post("/avatar", member.UploadAvatar)
}
