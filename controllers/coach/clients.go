package coach

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/controllers/member"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
)

// notifyPlanChange drops a notification row for the member. Best effort;
// a failure is logged, never surfaced.
func notifyPlanChange(memberID uint, message string) {
	notification := models.Notification{
		UserID:  memberID,
		Message: message,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create plan notification for member %d: %v", memberID, err)
	}
}

type clientSummary struct {
	models.User
	LogsThisWeek int64 `json:"logs_this_week"`
	Estimated    struct {
		Adherence      int  `json:"estimated_adherence"`
		NeedsAttention bool `json:"estimated_needs_attention"`
	} `json:"estimated"`
}

// ListClients returns the coach's assigned members with week activity
// counts and the display-only attention estimate.
func ListClients(c *fiber.Ctx) error {
	coachID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	query := db.DB.Model(&models.User{})
	switch models.UserRole(role) {
	case models.RoleTrainer:
		query = query.Where("trainer_id = ?", coachID)
	case models.RoleNutritionist:
		query = query.Where("nutritionist_id = ?", coachID)
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only coaches can list clients",
		})
	}

	var clients []models.User
	if err := query.Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	today := time.Now().Format("2006-01-02")
	summaries := make([]clientSummary, 0, len(clients))
	for _, client := range clients {
		client.Password = ""
		summary := clientSummary{User: client}

		var mealsToday, workoutsThisWeek, mealsThisWeek int64
		db.DB.Model(&models.MealLog{}).
			Where("member_id = ? AND DATE(logged_at) = ?", client.ID, today).
			Count(&mealsToday)
		db.DB.Model(&models.MealLog{}).
			Where("member_id = ? AND logged_at >= ?", client.ID, weekAgo).
			Count(&mealsThisWeek)
		db.DB.Model(&models.WorkoutLog{}).
			Where("member_id = ? AND logged_at >= ?", client.ID, weekAgo).
			Count(&workoutsThisWeek)

		summary.LogsThisWeek = mealsThisWeek + workoutsThisWeek
		summary.Estimated.Adherence = member.EstimateAdherence(mealsToday, workoutsThisWeek)
		summary.Estimated.NeedsAttention = member.NeedsAttention(summary.LogsThisWeek, summary.Estimated.Adherence)
		summaries = append(summaries, summary)
	}

	return c.JSON(summaries)
}

type FeedbackInput struct {
	MemberID uint   `json:"member_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SendNutritionistFeedback appends a diet-thread message and notifies
// the member.
func SendNutritionistFeedback(c *fiber.Ctx) error {
	coachID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	input := new(FeedbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	message := models.PlanMessage{
		MemberID:   input.MemberID,
		PlanType:   models.PlanKindDiet,
		SenderRole: models.UserRole(role),
		CoachID:    &coachID,
		Message:    input.Message,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to send feedback",
			Error:   err.Error(),
		})
	}

	notifyPlanChange(input.MemberID, "You have new feedback from your nutritionist")
	return c.Status(fiber.StatusCreated).JSON(message)
}
