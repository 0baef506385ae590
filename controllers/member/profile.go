package member

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/nutrition"
	"github.com/leqet/gym-backend/utils"
)

// GetMemberProfile returns the member's own profile, or another member's
// for their assigned coach when the profile is not private.
func GetMemberProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	memberID := userID
	if models.UserRole(role) != models.RoleMember {
		if raw := c.Query("member_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid member_id",
				})
			}
			memberID = uint(parsed)
		}
	}

	var profile models.MemberProfile
	if err := db.DB.Where("member_id = ?", memberID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if memberID != userID && profile.IsPrivate {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "This profile is private",
		})
	}
	return c.JSON(profile)
}

type ProfileInput struct {
	Age             int     `json:"age" validate:"required,min=10,max=120"`
	Gender          string  `json:"gender" validate:"required"`
	WeightKg        float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm        float64 `json:"height_cm" validate:"required,gt=0"`
	Goal            string  `json:"goal"`
	ActivityLevel   string  `json:"activity_level"`
	TrainerIntake   string  `json:"trainer_intake"`
	NutritionIntake string  `json:"nutrition_intake"`
	IsPrivate       bool    `json:"is_private"`
}

// SaveMemberProfile upserts the profile and recomputes BMR, TDEE and
// target calories. The derived fields are never taken from the request.
func SaveMemberProfile(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	input := new(ProfileInput)
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

	bmr := nutrition.BMR(input.Gender, input.WeightKg, input.HeightCm, input.Age)
	tdee := nutrition.TDEE(bmr, input.ActivityLevel)
	target := nutrition.TargetCalories(tdee, input.Goal)

	var profile models.MemberProfile
	db.DB.Where("member_id = ?", memberID).First(&profile)

	profile.MemberID = memberID
	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.WeightKg = input.WeightKg
	profile.HeightCm = input.HeightCm
	profile.Goal = input.Goal
	profile.ActivityLevel = input.ActivityLevel
	profile.BMR = bmr
	profile.TDEE = tdee
	profile.TargetCalories = target
	profile.TrainerIntake = input.TrainerIntake
	profile.NutritionIntake = input.NutritionIntake
	profile.IsPrivate = input.IsPrivate

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// UploadAvatar stores the member's avatar image and saves the URL.
func UploadAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "avatar file is required",
		})
	}

	opened, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}
	defer opened.Close()

	url, err := utils.UploadAvatar(opened, fmt.Sprintf("user_%d", userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar URL",
		})
	}
	return c.JSON(fiber.Map{"avatar": url})
}
