package db

import (
	"fmt"
	"log"

	"github.com/leqet/gym-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.Permission{},
		&models.User{},
		&models.Food{},
		&models.Exercise{},
		&models.MealLog{},
		&models.WorkoutLog{},
		&models.ActivityLog{},
		&models.DietPlan{},
		&models.MealPlan{},
		&models.MealPlanFood{},
		&models.WorkoutPlan{},
		&models.WorkoutDay{},
		&models.WorkoutExercise{},
		&models.PlanMessage{},
		&models.MemberProfile{},
		&models.ScheduleSession{},
		&models.CheckIn{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("Migrations applied successfully")
}
