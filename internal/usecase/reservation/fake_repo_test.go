package reservation

import (
	"context"
	"errors"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository for usecase tests.
type fakeRepo struct {
	reservations []models.Reservation
	settings     models.ClinicSettings

	replaced [][]models.Reservation
	deleted  []string
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		settings: models.ClinicSettings{
			ID:                 1,
			WorkingDays:        []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu"},
			StartHour:          "15:00",
			EndHour:            "22:00",
			MaxPatientsPerSlot: 5,
		},
	}
}

func (f *fakeRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	out := make([]models.Reservation, len(f.reservations))
	copy(out, f.reservations)
	return out, nil
}

func (f *fakeRepo) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	r.Position = len(f.reservations)
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeRepo) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == r.ID {
			f.reservations[i] = *r
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) DeleteReservation(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ReplaceReservations(ctx context.Context, list []models.Reservation) error {
	stored := make([]models.Reservation, len(list))
	copy(stored, list)
	for i := range stored {
		stored[i].Position = i
	}
	f.replaced = append(f.replaced, stored)
	f.reservations = stored
	return nil
}

func (f *fakeRepo) GetSettings(ctx context.Context) (*models.ClinicSettings, error) {
	s := f.settings
	return &s, nil
}

func (f *fakeRepo) SaveSettings(ctx context.Context, s *models.ClinicSettings) error {
	f.settings = *s
	return nil
}

// testDispatcher queues onto a logger with no database; entries are
// silently discarded.
func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
