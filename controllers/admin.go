package controllers

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/redis"
	"github.com/leqet/gym-backend/utils"
)

// GetUsers lists all users, optionally filtered by ?role= and ?search=.
func GetUsers(c *fiber.Ctx) error {
	query := db.DB.Preload("Role").Preload("Trainer").Preload("Nutritionist")

	if role := c.Query("role"); role != "" {
		if !models.ValidRole(role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown role: " + role,
			})
		}
		query = query.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name = ?", role)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("users.name ILIKE ? OR users.email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var users []models.User
	if err := query.Order("users.created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

type UpdateUserInput struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	TrainerID      *uint  `json:"trainer_id"`
	NutritionistID *uint  `json:"nutritionist_id"`
	IsActivated    *bool  `json:"is_activated"`
}

// UpdateUser lets an admin rename a user, reassign their role, or
// assign coaches to a member.
func UpdateUser(c *fiber.Ctx) error {
	input := new(UpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		if !models.ValidRole(input.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown role: " + input.Role,
			})
		}
		var role models.Role
		if err := db.DB.Where("name = ?", input.Role).First(&role).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Role not found: " + input.Role,
			})
		}
		user.RoleID = role.ID
	}
	if input.TrainerID != nil {
		user.TrainerID = input.TrainerID
	}
	if input.NutritionistID != nil {
		user.NutritionistID = input.NutritionistID
	}
	if input.IsActivated != nil {
		user.IsActivated = *input.IsActivated
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// DeleteUser soft-deletes nothing: users carry logs and plans, so the
// row is removed outright and the database cascades are left to the
// migration policy.
func DeleteUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if user.ID == adminID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Admins cannot delete their own account",
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// GetSystemStats returns the aggregate counters the admin dashboard
// shows.
func GetSystemStats(c *fiber.Ctx) error {
	var stats struct {
		TotalUsers       int64 `json:"total_users"`
		ActiveMembers    int64 `json:"active_members"`
		Trainers         int64 `json:"trainers"`
		Nutritionists    int64 `json:"nutritionists"`
		MealsLoggedToday int64 `json:"meals_logged_today"`
		WorkoutsToday    int64 `json:"workouts_logged_today"`
		SessionsToday    int64 `json:"sessions_today"`
		FoodsInCatalog   int64 `json:"foods_in_catalog"`
	}

	today := time.Now().Format("2006-01-02")
	db.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ? AND users.is_activated = ?", models.RoleMember, true).
		Count(&stats.ActiveMembers)
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleTrainer).
		Count(&stats.Trainers)
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleNutritionist).
		Count(&stats.Nutritionists)
	db.DB.Model(&models.MealLog{}).Where("DATE(logged_at) = ?", today).Count(&stats.MealsLoggedToday)
	db.DB.Model(&models.WorkoutLog{}).Where("DATE(logged_at) = ?", today).Count(&stats.WorkoutsToday)
	db.DB.Model(&models.ScheduleSession{}).Where("DATE(session_date) = ?", today).Count(&stats.SessionsToday)
	db.DB.Model(&models.Food{}).Count(&stats.FoodsInCatalog)

	return c.JSON(stats)
}

// GetSystemMonitor reports live process and dependency health for the
// admin monitor page.
func GetSystemMonitor(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	dbStatus := "up"
	if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "disabled"
	if redis.Client != nil {
		cacheStatus = "up"
		if err := redis.Client.Ping(redis.Ctx).Err(); err != nil {
			cacheStatus = "down"
		}
	}

	return c.JSON(fiber.Map{
		"database":       dbStatus,
		"cache":          cacheStatus,
		"goroutines":     runtime.NumGoroutine(),
		"heap_alloc_mb":  mem.HeapAlloc / 1024 / 1024,
		"num_gc":         mem.NumGC,
		"go_version":     runtime.Version(),
		"uptime_checked": time.Now(),
	})
}

// RunHealthCheck is the same dependency probe GetSystemMonitor uses,
// reduced to a pass/fail the frontend can poll.
func RunHealthCheck(c *fiber.Ctx) error {
	checks := fiber.Map{}
	healthy := true

	if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
		checks["database"] = "fail"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if redis.Client == nil {
		checks["cache"] = "disabled"
	} else if err := redis.Client.Ping(redis.Ctx).Err(); err != nil {
		checks["cache"] = "fail"
	} else {
		checks["cache"] = "ok"
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"healthy": healthy,
		"checks":  checks,
	})
}

// TriggerBackup kicks off a pg_dump of the configured database into
// the backups directory. The dump runs in the background; the response
// carries the backup id so the admin page can show it immediately.
func TriggerBackup(c *fiber.Ctx) error {
	backupID := utils.GenerateUUID()
	filename := fmt.Sprintf("leqet-backup-%s-%s.sql", time.Now().Format("20060102-150405"), backupID[:8])

	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to prepare backup directory",
			Error:   err.Error(),
		})
	}

	path := filepath.Join(dir, filename)
	go func() {
		cmd := exec.Command("pg_dump", os.Getenv("DATABASE_URL"), "-f", path)
		if err := cmd.Run(); err != nil {
			log.Printf("Backup %s failed: %v", backupID, err)
			return
		}
		log.Printf("Backup %s written to %s", backupID, path)
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":   "Backup started",
		"backup_id": backupID,
		"file":      filename,
	})
}

// ClearCacheAndLogs flushes the redis cache and truncates the local
// log directory.
func ClearCacheAndLogs(c *fiber.Ctx) error {
	if err := redis.FlushAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to flush cache",
			Error:   err.Error(),
		})
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}
	entries, err := os.ReadDir(logDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := os.Remove(filepath.Join(logDir, entry.Name())); err != nil {
				log.Printf("Failed to remove log file %s: %v", entry.Name(), err)
			}
		}
	}

	return c.JSON(fiber.Map{"message": "Cache and logs cleared"})
}
