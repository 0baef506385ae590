package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers"
	"github.com/leqet/gym-backend/middleware"
)

// SetupAuthRoutes configures authentication and account lifecycle routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/otp/request", controllers.RequestOTP)
	auth.Post("/activate", controllers.ActivateAccount)
	auth.Post("/password/forgot", controllers.RequestPasswordReset)
	auth.Post("/password/reset", controllers.ResetPassword)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
