package reservation

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
)

type DragEndInput struct {
	ActiveID string
	OverID   string
	UserID   *uint
}

// DragEnd turns a completed drag gesture into a persisted, consistent
// reservation state. The board sends raw drop identifiers; all the
// interpretation lives in the schedule package.
type DragEnd struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDragEnd(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DragEnd {
	return &DragEnd{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DragEnd) Execute(
	ctx context.Context,
	in DragEndInput,
) (domain.Resolution, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}
	cfg := domain.ConfigFromSettings(settings)
	grid := domain.GenerateSlots(cfg.StartHour, cfg.EndHour)

	list, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}

	gesture := domain.Gesture{ActiveID: in.ActiveID, OverID: in.OverID}

	out, resolution, err := domain.Reconcile(
		list,
		gesture,
		grid,
		timezone.Today(),
		cfg.MaxPatientsPerSlot,
	)
	if err != nil {
		return domain.Resolution{}, err
	}

	switch resolution.Effect {
	case domain.EffectNone, domain.EffectAwaitingReason:
		// Nothing to persist. An archive drop waits for its reason.
		return resolution, nil
	}

	if err := uc.repo.ReplaceReservations(ctx, out); err != nil {
		return domain.Resolution{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_" + string(resolution.Effect),
		Entity:   "reservation",
		EntityID: in.ActiveID,
		Metadata: resolution,
	})

	return resolution, nil
}
