package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
	"github.com/clinicdesk/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ChildName  string
	ParentName string
	Phone      string
	Address    string
	Notes      string
	Extras     map[string]string

	// Optional; defaults to today.
	Date string

	// Optional; set by quick-add from a slot header.
	TimeSlot string

	// Walk-in emergencies bypass the grid entirely.
	Emergency bool

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if in.ChildName == "" {
		return nil, httperr.ErrBusiness("missing_child_name")
	}
	if in.Phone != "" && !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	today := timezone.Today()
	date := in.Date
	if date == "" {
		date = today
	}

	status := domain.StatusActive
	timeSlot := in.TimeSlot
	if in.Emergency {
		status = domain.StatusEmergency
		timeSlot = ""
	}

	if timeSlot != "" {
		settings, err := uc.repo.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		cfg := domain.ConfigFromSettings(settings)

		grid := domain.GenerateSlots(cfg.StartHour, cfg.EndHour)
		if _, ok := domain.FindSlot(grid, timeSlot); !ok {
			return nil, httperr.ErrBusiness("unknown_slot")
		}

		list, err := uc.repo.ListReservations(ctx)
		if err != nil {
			return nil, err
		}
		if !domain.CanPlace(list, date, today, timeSlot, "", cfg.MaxPatientsPerSlot) {
			return nil, httperr.ErrBusiness("slot_full")
		}
	}

	res := &models.Reservation{
		ID:         uuid.NewString(),
		ChildName:  in.ChildName,
		ParentName: in.ParentName,
		Phone:      in.Phone,
		Address:    in.Address,
		Notes:      in.Notes,
		Extras:     in.Extras,
		Date:       date,
		TimeSlot:   timeSlot,
		Status:     string(status),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
