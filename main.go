package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/leqet/gym-backend/cron"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/redis"
	"github.com/leqet/gym-backend/routes"
	"github.com/leqet/gym-backend/utils"
)

func main() {
	db.Init()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Migrate()
			db.Seed()
			return
		}
	}

	redis.InitRedis()
	utils.InitValidator()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Leqet Gym API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupMemberRoutes(app)
	routes.SetupCoachRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
