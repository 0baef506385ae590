package member

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/redis"
	"github.com/leqet/gym-backend/utils"
)

const summaryCacheTTL = 2 * time.Minute

// GetMemberOverview returns the raw counts a member dashboard renders:
// today's logs, week totals, active plans, and the next session.
func GetMemberOverview(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	today := time.Now().Format("2006-01-02")
	weekAgo := time.Now().AddDate(0, 0, -7)

	var mealsToday, workoutsToday, workoutsThisWeek int64
	db.DB.Model(&models.MealLog{}).
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, today).
		Count(&mealsToday)
	db.DB.Model(&models.WorkoutLog{}).
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, today).
		Count(&workoutsToday)
	db.DB.Model(&models.WorkoutLog{}).
		Where("member_id = ? AND logged_at >= ?", memberID, weekAgo).
		Count(&workoutsThisWeek)

	var hasDietPlan, hasWorkoutPlan int64
	db.DB.Model(&models.DietPlan{}).
		Where("member_id = ? AND is_active = ?", memberID, true).
		Count(&hasDietPlan)
	db.DB.Model(&models.WorkoutPlan{}).
		Where("member_id = ? AND is_active = ?", memberID, true).
		Count(&hasWorkoutPlan)

	var nextSession models.ScheduleSession
	hasNext := db.DB.Preload("Trainer").
		Where("member_id = ? AND status = ? AND session_date >= ?",
			memberID, models.SessionScheduled, today).
		Order("session_date asc, session_time asc").
		First(&nextSession).RowsAffected > 0

	response := fiber.Map{
		"meals_today":        mealsToday,
		"workouts_today":     workoutsToday,
		"workouts_this_week": workoutsThisWeek,
		"has_diet_plan":      hasDietPlan > 0,
		"has_workout_plan":   hasWorkoutPlan > 0,
	}
	if hasNext {
		response["next_session"] = nextSession
	}
	return c.JSON(response)
}

// GetRecentMeals returns the most recent meal logs across days.
func GetRecentMeals(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	limit := 10
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	var meals []models.MealLog
	if err := db.DB.
		Where("member_id = ?", memberID).
		Order("logged_at desc").
		Limit(limit).
		Find(&meals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch recent meals",
			Error:   err.Error(),
		})
	}
	return c.JSON(meals)
}

// dashboardSummary is the cached payload shape. Heuristic values live
// only under Estimated so they cannot be mistaken for backend truth.
type dashboardSummary struct {
	MealsToday       int64   `json:"meals_today"`
	WorkoutsThisWeek int64   `json:"workouts_this_week"`
	CaloriesToday    float64 `json:"calories_today"`
	CaloriesBurned   float64 `json:"calories_burned_today"`
	WaterTodayMl     float64 `json:"water_today_ml"`
	StepsToday       float64 `json:"steps_today"`
	TargetCalories   float64 `json:"target_calories"`
	Estimated        struct {
		Adherence  int `json:"estimated_adherence"`
		Compliance int `json:"estimated_compliance"`
	} `json:"estimated"`
	LastUpdated time.Time `json:"last_updated"`
}

// GetDashboardSummary aggregates today's numbers plus the heuristic
// engagement estimates. Cached briefly in Redis.
func GetDashboardSummary(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	cacheKey := fmt.Sprintf("dashboard:summary:%d", memberID)

	var summary dashboardSummary
	if redis.GetJSON(cacheKey, &summary) {
		return c.JSON(summary)
	}

	today := time.Now().Format("2006-01-02")
	weekAgo := time.Now().AddDate(0, 0, -7)

	db.DB.Model(&models.MealLog{}).
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, today).
		Count(&summary.MealsToday)
	db.DB.Model(&models.WorkoutLog{}).
		Where("member_id = ? AND logged_at >= ?", memberID, weekAgo).
		Count(&summary.WorkoutsThisWeek)

	db.DB.Model(&models.MealLog{}).
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, today).
		Select("COALESCE(SUM(calories), 0)").Scan(&summary.CaloriesToday)
	db.DB.Model(&models.WorkoutLog{}).
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, today).
		Select("COALESCE(SUM(calories_burned), 0)").Scan(&summary.CaloriesBurned)
	db.DB.Model(&models.ActivityLog{}).
		Where("member_id = ? AND kind = ? AND DATE(logged_at) = ?", memberID, models.ActivityWater, today).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.WaterTodayMl)
	db.DB.Model(&models.ActivityLog{}).
		Where("member_id = ? AND kind = ? AND DATE(logged_at) = ?", memberID, models.ActivitySteps, today).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.StepsToday)

	var profile models.MemberProfile
	if db.DB.Where("member_id = ?", memberID).First(&profile).RowsAffected > 0 {
		summary.TargetCalories = profile.TargetCalories
	}

	summary.Estimated.Adherence = EstimateAdherence(summary.MealsToday, summary.WorkoutsThisWeek)
	summary.Estimated.Compliance = EstimateCompliance(summary.CaloriesToday, summary.TargetCalories)
	summary.LastUpdated = time.Now()

	redis.CacheJSON(cacheKey, summary, summaryCacheTTL)
	return c.JSON(summary)
}

// GetProgressSummary returns per-day calorie intake/burn for the last
// ?days= days (default 7) plus check-in weight history.
func GetProgressSummary(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	days := 7
	if c.Query("days") != "" {
		if parsed := c.QueryInt("days"); parsed > 0 && parsed <= 90 {
			days = parsed
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	type dayRow struct {
		Date     time.Time `json:"date"`
		Calories float64   `json:"calories"`
		Count    int64     `json:"count"`
	}

	var intake []dayRow
	db.DB.Model(&models.MealLog{}).
		Select("DATE(logged_at) as date, COALESCE(SUM(calories), 0) as calories, COUNT(*) as count").
		Where("member_id = ? AND logged_at >= ?", memberID, since).
		Group("DATE(logged_at)").
		Order("date asc").
		Scan(&intake)

	var burned []dayRow
	db.DB.Model(&models.WorkoutLog{}).
		Select("DATE(logged_at) as date, COALESCE(SUM(calories_burned), 0) as calories, COUNT(*) as count").
		Where("member_id = ? AND logged_at >= ?", memberID, since).
		Group("DATE(logged_at)").
		Order("date asc").
		Scan(&burned)

	var checkIns []models.CheckIn
	db.DB.Where("member_id = ? AND logged_at >= ?", memberID, since).
		Order("logged_at asc").
		Find(&checkIns)

	return c.JSON(fiber.Map{
		"intake":    intake,
		"burned":    burned,
		"check_ins": checkIns,
		"days":      days,
	})
}
