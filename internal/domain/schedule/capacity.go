package schedule

import "github.com/clinicdesk/clinic-scheduler/internal/models"

// CanPlace reports whether one more active reservation fits in the
// given slot on the given date. excludeID skips the reservation being
// repositioned, so a move within its own slot never counts itself.
// Moves out of a slot and into the non-slot buckets are uncapped and
// never consult this gate.
func CanPlace(reservations []models.Reservation, date, today, slotID, excludeID string, maxPerSlot int) bool {
	if maxPerSlot < 1 {
		return false
	}

	count := 0
	for _, r := range reservations {
		if r.ID == excludeID {
			continue
		}
		if !Status(r.Status).OccupiesSlot() || r.TimeSlot != slotID {
			continue
		}
		if effectiveDate(r, today) != date {
			continue
		}
		count++
	}
	return count < maxPerSlot
}
