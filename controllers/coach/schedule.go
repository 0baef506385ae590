package coach

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
)

type SessionInput struct {
	MemberID    uint   `json:"member_id" validate:"required"`
	SessionType string `json:"session_type" validate:"required"`
	SessionDate string `json:"session_date" validate:"required"` // YYYY-MM-DD
	SessionTime string `json:"session_time" validate:"required"` // HH:MM
	DurationMin int    `json:"duration_minutes"`
	Notes       string `json:"notes"`
}

// GetTrainerSchedule lists the trainer's sessions, optionally filtered
// by ?date=YYYY-MM-DD and ?status=.
func GetTrainerSchedule(c *fiber.Ctx) error {
	trainerID := c.Locals("userID").(uint)

	query := db.DB.Where("trainer_id = ?", trainerID).Preload("Member")
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(session_date) = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.ScheduleSession
	if err := query.Order("session_date asc, session_time asc").Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(sessions)
}

// CreateTrainerScheduleSession books a session for an assigned member.
// Overlapping slots for the same trainer are rejected with 409.
func CreateTrainerScheduleSession(c *fiber.Ctx) error {
	trainerID := c.Locals("userID").(uint)

	input := new(SessionInput)
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
	if !models.ValidSessionType(input.SessionType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session type",
		})
	}

	sessionDate, err := time.Parse("2006-01-02", input.SessionDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session date, expected YYYY-MM-DD",
		})
	}
	if input.DurationMin <= 0 {
		input.DurationMin = 60
	}

	var member models.User
	if err := db.DB.Preload("Role").First(&member, input.MemberID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}
	if models.UserRole(member.Role.Name) != models.RoleMember {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sessions can only be booked for members",
		})
	}

	available, err := utils.CheckTrainerAvailability(trainerID, sessionDate, input.SessionTime, input.DurationMin)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session time, expected HH:MM",
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Trainer already has a session in this time slot",
		})
	}

	session := models.ScheduleSession{
		MemberID:    input.MemberID,
		TrainerID:   trainerID,
		SessionType: models.SessionType(input.SessionType),
		SessionDate: sessionDate,
		SessionTime: input.SessionTime,
		DurationMin: input.DurationMin,
		Notes:       input.Notes,
	}
	if err := db.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create session",
			Error:   err.Error(),
		})
	}

	notifyPlanChange(input.MemberID, "A new training session has been scheduled for you on "+input.SessionDate+" at "+input.SessionTime)
	return c.Status(fiber.StatusCreated).JSON(session)
}

// UpdateSessionStatus moves a session to completed or cancelled. The
// model enforces the allowed transitions.
func UpdateSessionStatus(c *fiber.Ctx) error {
	trainerID := c.Locals("userID").(uint)
	sessionID := c.Params("id")

	input := new(struct {
		Status string `json:"status" validate:"required"`
	})
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var session models.ScheduleSession
	if err := db.DB.Where("id = ? AND trainer_id = ?", sessionID, trainerID).
		First(&session).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	if err := session.UpdateStatus(db.DB, models.SessionStatus(input.Status)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(session)
}
