package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
)

func TestCreateReservationDefaults(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, timezone.Today(), res.Date)
	assert.Equal(t, "", res.TimeSlot)
	assert.Equal(t, string(domain.StatusActive), res.Status)
	require.Len(t, repo.reservations, 1)
}

func TestCreateReservationEmergency(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		TimeSlot:  "3 PM - 4 PM",
		Emergency: true,
	})
	require.NoError(t, err)

	// Emergencies bypass the grid even when a slot was picked.
	assert.Equal(t, string(domain.StatusEmergency), res.Status)
	assert.Equal(t, "", res.TimeSlot)
}

func TestCreateReservationValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateReservationInput{})
	assert.Equal(t, "missing_child_name", httperr.CodeOf(err))

	_, err = uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		Phone:     "not a phone",
	})
	assert.Equal(t, "invalid_phone", httperr.CodeOf(err))

	assert.Empty(t, repo.reservations)
}

func TestCreateReservationUnknownSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		TimeSlot:  "2 AM - 3 AM",
	})
	assert.Equal(t, "unknown_slot", httperr.CodeOf(err))
}

func TestCreateReservationSlotFull(t *testing.T) {
	repo := newFakeRepo()
	repo.settings.MaxPatientsPerSlot = 1
	today := timezone.Today()
	repo.reservations = []models.Reservation{
		{ID: "busy", ChildName: "Sara", Date: today, TimeSlot: "3 PM - 4 PM", Status: string(domain.StatusActive)},
	}

	uc := NewCreateReservation(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		TimeSlot:  "3 PM - 4 PM",
	})
	assert.Equal(t, "slot_full", httperr.CodeOf(err))

	// A different slot on the same day is fine.
	res, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		TimeSlot:  "4 PM - 5 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "4 PM - 5 PM", res.TimeSlot)
}

func TestCreateReservationKeepsExplicitDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), CreateReservationInput{
		ChildName: "Omar",
		Date:      "2030-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-06-15", res.Date)
}
