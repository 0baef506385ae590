package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

type InviteInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required"`
	TrainerID      *uint  `json:"trainer_id"`
	NutritionistID *uint  `json:"nutritionist_id"`
}

// InviteUser creates a deactivated account and emails the invitation.
// Admin only.
func InviteUser(c *fiber.Ctx) error {
	input := new(InviteInput)
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
	if !models.ValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown role: " + input.Role,
		})
	}

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	var role models.Role
	if err := db.DB.Where("name = ?", input.Role).First(&role).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Role not found: " + input.Role,
		})
	}

	user := models.User{
		Name:           input.Name,
		Email:          input.Email,
		RoleID:         role.ID,
		IsActivated:    false,
		JoinDate:       time.Now(),
		TrainerID:      input.TrainerID,
		NutritionistID: input.NutritionistID,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>You have been invited to Leqet Gym as a %s.</p>
		<p>Open the app, request an activation code with this email address, and set your password.</p>
	`, user.Name, input.Role)
	if err := utils.SendEmail(user.Email, "Welcome to Leqet Gym", body); err != nil {
		log.Printf("Failed to send invite email to %s: %v", user.Email, err)
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// RequestOTP stores a fresh activation code and emails it.
func RequestOTP(c *fiber.Ctx) error {
	type OTPRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	input := new(OTPRequest)
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

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		// Don't reveal whether the address exists
		return c.JSON(fiber.Map{"message": "If the account exists, a code has been sent"})
	}

	user.OTP = utils.GenerateOTP()
	user.OTPExpiresAt = time.Now().Add(otpTTL)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store activation code",
		})
	}

	body := fmt.Sprintf("<p>Your Leqet Gym verification code is <strong>%s</strong>. It expires in 10 minutes.</p>", user.OTP)
	if err := utils.SendEmail(user.Email, "Your verification code", body); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send verification code",
		})
	}

	return c.JSON(fiber.Map{"message": "If the account exists, a code has been sent"})
}

type ActivateInput struct {
	Email           string `json:"email" validate:"required,email"`
	OTP             string `json:"otp" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ActivateAccount verifies the OTP and sets the initial password.
func ActivateAccount(c *fiber.Ctx) error {
	input := new(ActivateInput)
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
	// Shape checks happen before any lookup: exactly six digits, passwords match.
	if !utils.IsValidOTP(input.OTP) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code must be 6 digits",
		})
	}
	if input.Password != input.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid code",
		})
	}
	if user.OTP == "" || user.OTP != input.OTP || time.Now().After(user.OTPExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired code",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user.Password = string(hashed)
	user.IsActivated = true
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to activate account",
		})
	}

	return c.JSON(fiber.Map{"message": "Account activated, you can now log in"})
}

// RequestPasswordReset reuses the OTP flow for forgotten passwords.
func RequestPasswordReset(c *fiber.Ctx) error {
	return RequestOTP(c)
}

// ResetPassword verifies the reset code and sets a new password.
func ResetPassword(c *fiber.Ctx) error {
	input := new(ActivateInput)
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
	if !utils.IsValidOTP(input.OTP) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code must be 6 digits",
		})
	}
	if input.Password != input.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid code",
		})
	}
	if user.OTP == "" || user.OTP != input.OTP || time.Now().After(user.OTPExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired code",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user.Password = string(hashed)
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password",
		})
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}
