package reservation

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// ArchiveReservation finalizes an archive-zone drop once the front
// desk has picked a cancellation reason.
type ArchiveReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewArchiveReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ArchiveReservation {
	return &ArchiveReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ArchiveReservation) Execute(
	ctx context.Context,
	id string,
	reason string,
	userID *uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.Archive(res, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "reservation_archived",
		Entity:   "reservation",
		EntityID: res.ID,
		Metadata: map[string]string{"reason": reason},
	})

	return res, nil
}
