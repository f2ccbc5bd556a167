package schedule

import (
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// ===============================
// Drag Gestures
// ===============================

// Gesture is one completed drag: the reservation being dragged and
// whatever it was released over (a zone id, a slot id, or another
// reservation's id).
type Gesture struct {
	ActiveID string
	OverID   string
}

type Effect string

const (
	EffectNone           Effect = "none"
	EffectUnassigned     Effect = "unassigned"
	EffectEmergency      Effect = "emergency"
	EffectMoved          Effect = "moved"
	EffectReordered      Effect = "reordered"
	EffectAwaitingReason Effect = "awaiting-reason"
)

// Resolution describes what a gesture did. EffectAwaitingReason means
// the drop landed on the archive zone: nothing has been mutated yet
// and the caller must collect a cancellation reason to finalize.
type Resolution struct {
	Effect Effect `json:"effect"`
	SlotID string `json:"slot_id,omitempty"`
}

// Reconcile resolves a drag gesture into a new reservation list.
// Pure: the input slice is never mutated; on any no-op or rejection
// the original slice is returned unchanged. A move into a full slot
// returns a slot_full business error and performs no mutation.
func Reconcile(reservations []models.Reservation, g Gesture, slots []Slot, today string, maxPerSlot int) ([]models.Reservation, Resolution, error) {
	none := Resolution{Effect: EffectNone}

	if g.OverID == "" || g.ActiveID == g.OverID {
		return reservations, none, nil
	}
	idx := indexByID(reservations, g.ActiveID)
	if idx < 0 {
		return reservations, none, nil
	}
	active := reservations[idx]
	date := effectiveDate(active, today)

	kind, slotID, over := resolveTarget(g.OverID, reservations, slots)

	switch kind {
	case TargetUnassignedZone:
		out := cloneReservations(reservations)
		reactivate(&out[idx], "")
		return out, Resolution{Effect: EffectUnassigned}, nil

	case TargetEmergencyZone:
		out := cloneReservations(reservations)
		out[idx].Status = string(StatusEmergency)
		out[idx].StatusReason = ""
		out[idx].TimeSlot = ""
		return out, Resolution{Effect: EffectEmergency}, nil

	case TargetArchiveZone:
		return reservations, Resolution{Effect: EffectAwaitingReason}, nil

	case TargetSlot:
		if over != nil && active.TimeSlot == slotID {
			// Pure reorder inside the slot; every other bucket is
			// left untouched.
			out := reorderInSlot(reservations, slotID, g.ActiveID, over.ID)
			return out, Resolution{Effect: EffectReordered, SlotID: slotID}, nil
		}
		if !CanPlace(reservations, date, today, slotID, active.ID, maxPerSlot) {
			return reservations, none, httperr.ErrBusiness("slot_full")
		}
		out := cloneReservations(reservations)
		reactivate(&out[idx], slotID)
		return out, Resolution{Effect: EffectMoved, SlotID: slotID}, nil
	}

	return reservations, none, nil
}

// resolveTarget canonicalizes the raw drop identifier. A drop onto
// another reservation inherits that reservation's own bucket; a drop
// onto a completed record resolves to nothing.
func resolveTarget(overID string, reservations []models.Reservation, slots []Slot) (TargetKind, string, *models.Reservation) {
	switch TargetKind(overID) {
	case TargetUnassignedZone:
		return TargetUnassignedZone, "", nil
	case TargetEmergencyZone:
		return TargetEmergencyZone, "", nil
	case TargetArchiveZone:
		return TargetArchiveZone, "", nil
	}

	if _, ok := FindSlot(slots, overID); ok {
		return TargetSlot, overID, nil
	}

	if i := indexByID(reservations, overID); i >= 0 {
		over := &reservations[i]
		switch Status(over.Status) {
		case StatusCompleted:
			return TargetNone, "", nil
		case StatusEmergency:
			return TargetEmergencyZone, "", over
		default:
			if over.TimeSlot == "" {
				return TargetUnassignedZone, "", over
			}
			return TargetSlot, over.TimeSlot, over
		}
	}

	return TargetNone, "", nil
}

// Archive finalizes an archive-zone drop with the chosen reason.
func Archive(r *models.Reservation, reason string) error {
	status, err := ArchiveStatusForReason(reason)
	if err != nil {
		return err
	}
	r.Status = string(status)
	r.StatusReason = reason
	r.TimeSlot = ""
	return nil
}

// Complete marks a visit as done. Completed records leave the grid.
func Complete(r *models.Reservation) {
	r.Status = string(StatusCompleted)
	r.StatusReason = "Completed"
	r.TimeSlot = ""
}

// reorderInSlot moves the dragged record to the dropped-on record's
// position among same-slot items. The merged list keeps every other
// record's relative order and appends the reordered slot run, which
// is sufficient because rendering always goes through ClassifyDay.
func reorderInSlot(reservations []models.Reservation, slotID, activeID, overID string) []models.Reservation {
	var slotItems, others []models.Reservation
	for _, r := range reservations {
		if r.TimeSlot == slotID {
			slotItems = append(slotItems, r)
		} else {
			others = append(others, r)
		}
	}

	from := indexByID(slotItems, activeID)
	to := indexByID(slotItems, overID)
	if from < 0 || to < 0 {
		return reservations
	}

	return append(others, arrayMove(slotItems, from, to)...)
}

func arrayMove(items []models.Reservation, from, to int) []models.Reservation {
	moved := items[from]

	rest := make([]models.Reservation, 0, len(items)-1)
	rest = append(rest, items[:from]...)
	rest = append(rest, items[from+1:]...)

	out := make([]models.Reservation, 0, len(items))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out
}

func reactivate(r *models.Reservation, slotID string) {
	r.Status = string(StatusActive)
	r.StatusReason = ""
	r.TimeSlot = slotID
}

func indexByID(reservations []models.Reservation, id string) int {
	for i, r := range reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func cloneReservations(reservations []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, len(reservations))
	copy(out, reservations)
	return out
}
