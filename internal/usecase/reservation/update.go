package reservation

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
	"github.com/clinicdesk/clinic-scheduler/internal/validators"
)

type UpdateReservationInput struct {
	ChildName  string
	ParentName string
	Phone      string
	Address    string
	Notes      string
	Extras     map[string]string

	// nil leaves the slot untouched; empty string unassigns; any
	// other value moves the reservation (capacity-gated).
	TimeSlot *string

	UserID *uint
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if in.ChildName == "" {
		return nil, httperr.ErrBusiness("missing_child_name")
	}
	if in.Phone != "" && !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	if in.TimeSlot != nil && *in.TimeSlot != res.TimeSlot && *in.TimeSlot != "" {
		settings, err := uc.repo.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		cfg := domain.ConfigFromSettings(settings)

		grid := domain.GenerateSlots(cfg.StartHour, cfg.EndHour)
		if _, ok := domain.FindSlot(grid, *in.TimeSlot); !ok {
			return nil, httperr.ErrBusiness("unknown_slot")
		}

		list, err := uc.repo.ListReservations(ctx)
		if err != nil {
			return nil, err
		}

		today := timezone.Today()
		date := res.Date
		if date == "" {
			date = today
		}
		if !domain.CanPlace(list, date, today, *in.TimeSlot, res.ID, cfg.MaxPatientsPerSlot) {
			return nil, httperr.ErrBusiness("slot_full")
		}
	}

	res.ChildName = in.ChildName
	res.ParentName = in.ParentName
	res.Phone = in.Phone
	res.Address = in.Address
	res.Notes = in.Notes
	res.Extras = in.Extras
	if in.TimeSlot != nil {
		res.TimeSlot = *in.TimeSlot
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
