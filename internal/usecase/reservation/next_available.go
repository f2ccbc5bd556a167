package reservation

import (
	"context"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/holidays"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
)

// HolidaySource supplies the public holiday list; satisfied by
// holidays.Service.
type HolidaySource interface {
	ForYear(ctx context.Context, year int) []holidays.Holiday
}

type NextAvailableResult struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
	Slot  string `json:"slot,omitempty"`
}

type NextAvailable struct {
	repo     domain.Repository
	holidays HolidaySource
}

func NewNextAvailable(
	repo domain.Repository,
	holidays HolidaySource,
) *NextAvailable {
	return &NextAvailable{
		repo:     repo,
		holidays: holidays,
	}
}

func (uc *NextAvailable) Execute(ctx context.Context) (*NextAvailableResult, error) {
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	cfg := domain.ConfigFromSettings(settings)

	list, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	// The 30-day window can straddle a year boundary.
	dates := holidays.Dates(uc.holidays.ForYear(ctx, now.Year()))
	dates = append(dates, holidays.Dates(uc.holidays.ForYear(ctx, now.Year()+1))...)

	date, slot, found := domain.FindNextAvailable(now, list, cfg, dates)
	if !found {
		return &NextAvailableResult{Found: false}, nil
	}
	return &NextAvailableResult{Found: true, Date: date, Slot: slot.ID}, nil
}
