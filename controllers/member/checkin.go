package member

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
)

type CheckInInput struct {
	Adherence int      `json:"adherence" validate:"required,min=1,max=10"`
	Fatigue   int      `json:"fatigue" validate:"required,min=1,max=10"`
	Pain      int      `json:"pain" validate:"min=0,max=10"`
	WeightKg  *float64 `json:"weight_kg"`
	Notes     string   `json:"notes"`
}

// CreateMemberCheckIn appends a self-report row.
func CreateMemberCheckIn(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	input := new(CheckInInput)
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

	checkIn := models.CheckIn{
		MemberID:  memberID,
		Adherence: input.Adherence,
		Fatigue:   input.Fatigue,
		Pain:      input.Pain,
		WeightKg:  input.WeightKg,
		Notes:     input.Notes,
	}
	if err := db.DB.Create(&checkIn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create check-in",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(checkIn)
}

// FetchMemberCheckIns lists the member's check-ins, newest first.
func FetchMemberCheckIns(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	limit := 30
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	var checkIns []models.CheckIn
	if err := db.DB.
		Where("member_id = ?", memberID).
		Order("logged_at desc").
		Limit(limit).
		Find(&checkIns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch check-ins",
			Error:   err.Error(),
		})
	}
	return c.JSON(checkIns)
}
