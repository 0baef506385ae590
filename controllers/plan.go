package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
	"gorm.io/gorm"
)

// planMemberID resolves which member's plan is being fetched. Members
// always get their own; coaches and admins may pass ?member_id=.
func planMemberID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	if models.UserRole(role) == models.RoleMember {
		return userID, nil
	}
	if raw := c.Query("member_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, err
		}
		return uint(id), nil
	}
	return userID, nil
}

// GetMemberDietPlan returns the member's active diet plan with meals and
// foods in order.
func GetMemberDietPlan(c *fiber.Ctx) error {
	memberID, err := planMemberID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member_id",
		})
	}

	var plan models.DietPlan
	err = db.DB.
		Preload("Meals", func(q *gorm.DB) *gorm.DB { return q.Order("sequence asc") }).
		Preload("Meals.Foods", func(q *gorm.DB) *gorm.DB { return q.Order("sequence asc") }).
		Where("member_id = ? AND is_active = ?", memberID, true).
		First(&plan).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No active diet plan",
		})
	}
	return c.JSON(plan)
}

// GetMemberWorkoutPlan returns the member's active workout plan with days
// and exercises in order.
func GetMemberWorkoutPlan(c *fiber.Ctx) error {
	memberID, err := planMemberID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member_id",
		})
	}

	var plan models.WorkoutPlan
	err = db.DB.
		Preload("Days", func(q *gorm.DB) *gorm.DB { return q.Order("sequence asc") }).
		Preload("Days.Exercises", func(q *gorm.DB) *gorm.DB { return q.Order("sequence asc") }).
		Where("member_id = ? AND is_active = ?", memberID, true).
		First(&plan).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No active workout plan",
		})
	}
	return c.JSON(plan)
}

// FetchPlanMessages returns the (member, plan kind) conversation thread,
// oldest first.
func FetchPlanMessages(c *fiber.Ctx) error {
	memberID, err := planMemberID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member_id",
		})
	}
	planType := c.Query("plan_type", string(models.PlanKindDiet))
	if !models.ValidPlanKind(planType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "plan_type must be diet or workout",
		})
	}

	var messages []models.PlanMessage
	if err := db.DB.Preload("Coach").
		Where("member_id = ? AND plan_type = ?", memberID, planType).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}

type PlanMessageInput struct {
	MemberID uint   `json:"member_id"`
	PlanType string `json:"plan_type" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SendPlanMessage appends one message to the thread. The sender role is
// taken from the token, never the body.
func SendPlanMessage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	input := new(PlanMessageInput)
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
	if !models.ValidPlanKind(input.PlanType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "plan_type must be diet or workout",
		})
	}

	message := models.PlanMessage{
		PlanType:   models.PlanKind(input.PlanType),
		SenderRole: models.UserRole(role),
		Message:    input.Message,
	}
	if models.UserRole(role) == models.RoleMember {
		message.MemberID = userID
	} else {
		if input.MemberID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "member_id is required",
			})
		}
		message.MemberID = input.MemberID
		message.CoachID = &userID
	}

	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to send message",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}
