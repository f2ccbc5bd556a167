package schedule

import (
	"strings"
	"time"
)

const (
	hourLayout = "15:04"
	slotLayout = "3 PM"
)

// Slot is a one-hour scheduling bucket. ID is the canonical English
// label ("3 PM - 4 PM") and is what persisted reservations reference;
// it never changes with the UI language.
type Slot struct {
	ID    string
	Start time.Time // clock time on the zero date
}

// GenerateSlots derives the day's slot grid from the configured
// opening hours. Unparsable hours, or a start at or past the end,
// yield an empty grid instead of an error: the day simply has nothing
// bookable.
func GenerateSlots(startHour, endHour string) []Slot {
	start, err := time.Parse(hourLayout, startHour)
	if err != nil {
		return nil
	}
	end, err := time.Parse(hourLayout, endHour)
	if err != nil {
		return nil
	}
	if !start.Before(end) {
		return nil
	}

	var slots []Slot
	for cur := start; cur.Before(end); cur = cur.Add(time.Hour) {
		next := cur.Add(time.Hour)
		slots = append(slots, Slot{
			ID:    cur.Format(slotLayout) + " - " + next.Format(slotLayout),
			Start: cur,
		})
	}
	return slots
}

// FindSlot looks a slot up by its canonical id.
func FindSlot(slots []Slot, id string) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

var arabicLabel = strings.NewReplacer(
	"AM", "ص",
	"PM", "م",
	"0", "٠",
	"1", "١",
	"2", "٢",
	"3", "٣",
	"4", "٤",
	"5", "٥",
	"6", "٦",
	"7", "٧",
	"8", "٨",
	"9", "٩",
)

// Display renders the slot label for the active locale. Only the
// rendering changes; the id stays canonical so stored references
// survive a language switch.
func (s Slot) Display(locale string) string {
	if locale == "ar" {
		return arabicLabel.Replace(s.ID)
	}
	return s.ID
}
