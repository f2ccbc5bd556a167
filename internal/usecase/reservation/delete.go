package reservation

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
)

// DeleteReservation is the only way a record ever leaves storage;
// there is no automatic expiry of past days.
type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	id string,
	userID *uint,
) error {

	if _, err := uc.repo.GetReservation(ctx, id); err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.DeleteReservation(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: id,
	})

	return nil
}
