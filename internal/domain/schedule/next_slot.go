package schedule

import (
	"time"

	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// searchWindowDays bounds the forward scan for a free slot.
const searchWindowDays = 30

// FindNextAvailable scans forward day by day from now for the first
// bookable slot. On today, only slots starting strictly after now are
// considered. A slot with any active occupant counts as taken here;
// the numeric capacity gate is deliberately not consulted, matching
// the behavior the front desk has always had.
func FindNextAvailable(now time.Time, reservations []models.Reservation, cfg Config, holidays []string) (string, Slot, bool) {
	today := now.Format(DateLayout)
	slots := GenerateSlots(cfg.StartHour, cfg.EndHour)

	for i := 0; i < searchWindowDays; i++ {
		day := now.AddDate(0, 0, i)
		if !IsWorkingDay(day, cfg, holidays) {
			continue
		}
		dateStr := day.Format(DateLayout)

		for _, slot := range slots {
			if dateStr == today {
				start := time.Date(day.Year(), day.Month(), day.Day(),
					slot.Start.Hour(), slot.Start.Minute(), 0, 0, now.Location())
				if !start.After(now) {
					continue
				}
			}
			if slotTaken(reservations, dateStr, today, slot.ID) {
				continue
			}
			return dateStr, slot, true
		}
	}
	return "", Slot{}, false
}

func slotTaken(reservations []models.Reservation, date, today, slotID string) bool {
	for _, r := range reservations {
		if Status(r.Status) == StatusActive &&
			r.TimeSlot == slotID &&
			effectiveDate(r, today) == date {
			return true
		}
	}
	return false
}
