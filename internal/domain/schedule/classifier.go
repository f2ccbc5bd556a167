package schedule

import "github.com/clinicdesk/clinic-scheduler/internal/models"

// DaySchedule is the render-ready partition of one day's reservations.
// The five buckets are disjoint and together cover every same-date
// reservation with a recognized status.
type DaySchedule struct {
	Date       string
	Slots      []Slot
	Unassigned []models.Reservation
	Emergency  []models.Reservation
	Scheduled  map[string][]models.Reservation
	Completed  []models.Reservation
	Archived   []models.Reservation
}

// effectiveDate resolves the day a reservation belongs to. Records
// created before dates were stored carry an empty date and belong to
// today only.
func effectiveDate(r models.Reservation, today string) string {
	if r.Date == "" {
		return today
	}
	return r.Date
}

// ClassifyDay buckets the reservation set for one date against the
// generated slot grid, preserving the records' relative order.
func ClassifyDay(reservations []models.Reservation, date, today string, slots []Slot) DaySchedule {
	ds := DaySchedule{
		Date:      date,
		Slots:     slots,
		Scheduled: make(map[string][]models.Reservation, len(slots)),
	}
	for _, s := range slots {
		ds.Scheduled[s.ID] = []models.Reservation{}
	}

	for _, r := range reservations {
		if effectiveDate(r, today) != date {
			continue
		}
		switch Status(r.Status) {
		case StatusEmergency:
			ds.Emergency = append(ds.Emergency, r)
		case StatusCompleted:
			ds.Completed = append(ds.Completed, r)
		case StatusCancelled, StatusNoShow:
			ds.Archived = append(ds.Archived, r)
		case StatusActive:
			if r.TimeSlot == "" {
				ds.Unassigned = append(ds.Unassigned, r)
			} else {
				ds.Scheduled[r.TimeSlot] = append(ds.Scheduled[r.TimeSlot], r)
			}
		}
	}
	return ds
}
