package utils

import (
	"time"

	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
)

// SlotsOverlap reports whether two same-day slots, each a "HH:MM" start
// and a duration in minutes, share any time. Slots that only touch at a
// boundary do not overlap. An unparseable second start never matches;
// the first must be well-formed.
func SlotsOverlap(startA string, durA int, startB string, durB int) (bool, error) {
	a, err := time.Parse("15:04", startA)
	if err != nil {
		return false, err
	}
	b, err := time.Parse("15:04", startB)
	if err != nil {
		return false, nil
	}

	aEnd := a.Add(time.Duration(durA) * time.Minute)
	bEnd := b.Add(time.Duration(durB) * time.Minute)
	return a.Before(bEnd) && b.Before(aEnd), nil
}

// CheckTrainerAvailability reports whether the trainer has no scheduled
// session overlapping the given slot on that date.
func CheckTrainerAvailability(trainerID uint, date time.Time, startTime string, durationMin int) (bool, error) {
	if _, err := time.Parse("15:04", startTime); err != nil {
		return false, err
	}

	var sessions []models.ScheduleSession
	day := date.Format("2006-01-02")
	if err := db.DB.
		Where("trainer_id = ? AND DATE(session_date) = ? AND status = ?",
			trainerID, day, models.SessionScheduled).
		Find(&sessions).Error; err != nil {
		return false, err
	}

	for _, s := range sessions {
		overlap, err := SlotsOverlap(startTime, durationMin, s.SessionTime, s.DurationMin)
		if err != nil {
			return false, err
		}
		if overlap {
			return false, nil
		}
	}
	return true, nil
}
