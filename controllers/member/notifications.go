package member

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
)

// FetchNotifications returns the user's notifications, newest first.
func FetchNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var notifications []models.Notification
	if err := db.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}
	return c.JSON(notifications)
}

// MarkNotificationRead flips the read flag, the only mutation allowed.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	notification.IsRead = true
	if err := db.DB.Save(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to mark notification as read",
		})
	}
	return c.JSON(notification)
}

// GetMemberSchedule lists the member's sessions, soonest first.
func GetMemberSchedule(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	var sessions []models.ScheduleSession
	if err := db.DB.Preload("Trainer").
		Where("member_id = ?", memberID).
		Order("session_date asc, session_time asc").
		Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(sessions)
}
