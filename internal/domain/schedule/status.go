package schedule

import "github.com/clinicdesk/clinic-scheduler/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusEmergency Status = "emergency"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusEmergency, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Archived reports whether the status belongs to the archive bucket.
func (s Status) Archived() bool {
	return s == StatusCancelled || s == StatusNoShow
}

// OccupiesSlot reports whether a reservation with this status counts
// against slot capacity. Only active reservations do; emergency and
// completed records bypass the grid entirely.
func (s Status) OccupiesSlot() bool {
	return s == StatusActive
}

// ===============================
// Drag Target Kind
// ===============================

// TargetKind is the canonical resolution of a drop target. Zone kinds
// share their wire identifiers with the droppable zone ids the front
// desk board sends.
type TargetKind string

const (
	TargetNone           TargetKind = "none"
	TargetUnassignedZone TargetKind = "unassigned-zone"
	TargetEmergencyZone  TargetKind = "emergency-zone"
	TargetArchiveZone    TargetKind = "archive-zone"
	TargetSlot           TargetKind = "slot"
)

// ===============================
// Archive Reasons
// ===============================

// ArchiveStatusForReason maps the cancellation prompt's answer to the
// final archived status.
func ArchiveStatusForReason(reason string) (Status, error) {
	switch reason {
	case "Cancelled", "cancelled":
		return StatusCancelled, nil
	case "No Show", "no-show", "no show":
		return StatusNoShow, nil
	}
	return "", httperr.ErrBusiness("invalid_reason")
}
