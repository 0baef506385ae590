package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for session reminders.
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for sessions starting in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Morning digest for unread notifications
	_, err = c.AddFunc("0 8 * * *", sendUnreadDigests)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for session reminders")
}

// sendUnreadDigests emails each user a count of notifications they have
// not read yet. Runs once a day.
func sendUnreadDigests() {
	type digest struct {
		UserID uint
		Count  int64
	}
	var rows []digest
	err := db.DB.Model(&models.Notification{}).
		Select("user_id, COUNT(*) as count").
		Where("is_read = ?", false).
		Group("user_id").
		Find(&rows).Error
	if err != nil {
		log.Printf("Error fetching unread notification counts: %v", err)
		return
	}

	for _, row := range rows {
		var user models.User
		if err := db.DB.First(&user, row.UserID).Error; err != nil {
			continue
		}
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>You have %d unread notification(s) waiting for you in the Leqet Gym app.</p>
			<p>Best regards,</p>
			<p>Leqet Gym</p>
		`, user.Name, row.Count)
		if err := utils.SendEmail(user.Email, "You have unread notifications", body); err != nil {
			log.Printf("Failed to send digest to %s: %v", user.Email, err)
		}
	}
}

// sendSessionReminders emails members whose scheduled sessions start in
// roughly one hour and drops a notification row for each.
func sendSessionReminders() {
	var sessions []models.ScheduleSession
	now := time.Now()
	today := now.Format("2006-01-02")

	err := db.DB.Preload("Member").Preload("Trainer").
		Where("status = ? AND DATE(session_date) = ? AND reminder_sent = ?",
			models.SessionScheduled, today, false).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Error fetching sessions for reminders: %v", err)
		return
	}

	for _, session := range sessions {
		if !inReminderWindow(now, session.SessionTime) {
			continue
		}

		if err := sendReminderEmail(&session); err != nil {
			log.Printf("Failed to send reminder for session %d: %v", session.ID, err)
			continue
		}
		if err := db.DB.Model(&session).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark session %d reminded: %v", session.ID, err)
		}

		notification := models.Notification{
			UserID: session.MemberID,
			Message: fmt.Sprintf("Your %s session with %s starts at %s",
				session.SessionType, session.Trainer.Name, session.SessionTime),
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			log.Printf("Failed to create reminder notification: %v", err)
		}
		log.Printf("Sent reminder for session %d to %s", session.ID, session.Member.Email)
	}
}

// inReminderWindow reports whether a session starting at sessionTime
// ("HH:MM") today begins roughly one hour from now. Malformed times
// never match.
func inReminderWindow(now time.Time, sessionTime string) bool {
	start, err := time.Parse("15:04", sessionTime)
	if err != nil {
		return false
	}
	startAt := time.Date(now.Year(), now.Month(), now.Day(),
		start.Hour(), start.Minute(), 0, 0, now.Location())
	until := startAt.Sub(now)
	return until >= 55*time.Minute && until <= 65*time.Minute
}

func sendReminderEmail(session *models.ScheduleSession) error {
	subject := "Reminder: Upcoming Training Session"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Type:</strong> %s</li>
			<li><strong>Trainer:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact your trainer as soon as possible.</p>
		<p>Best regards,</p>
		<p>Leqet Gym</p>
	`, session.Member.Name, session.SessionType, session.Trainer.Name,
		session.SessionDate.Format("2006-01-02"), session.SessionTime)

	return utils.SendEmail(session.Member.Email, subject, body)
}
