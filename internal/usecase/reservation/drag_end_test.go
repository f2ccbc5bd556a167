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

func activeRes(id, slot string) models.Reservation {
	return models.Reservation{
		ID:        id,
		ChildName: "Child " + id,
		Date:      timezone.Today(),
		TimeSlot:  slot,
		Status:    string(domain.StatusActive),
	}
}

func TestDragEndPersistsMove(t *testing.T) {
	repo := newFakeRepo()
	repo.reservations = []models.Reservation{activeRes("a", "")}

	uc := NewDragEnd(repo, testDispatcher())

	resolution, err := uc.Execute(context.Background(), DragEndInput{
		ActiveID: "a",
		OverID:   "3 PM - 4 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EffectMoved, resolution.Effect)

	require.Len(t, repo.replaced, 1)
	got, err := repo.GetReservation(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "3 PM - 4 PM", got.TimeSlot)
}

func TestDragEndArchiveDropPersistsNothing(t *testing.T) {
	repo := newFakeRepo()
	repo.reservations = []models.Reservation{activeRes("a", "3 PM - 4 PM")}

	uc := NewDragEnd(repo, testDispatcher())

	resolution, err := uc.Execute(context.Background(), DragEndInput{
		ActiveID: "a",
		OverID:   "archive-zone",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EffectAwaitingReason, resolution.Effect)

	// The record stays in its slot until a reason is chosen.
	assert.Empty(t, repo.replaced)
	got, err := repo.GetReservation(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), got.Status)
	assert.Equal(t, "3 PM - 4 PM", got.TimeSlot)
}

func TestDragEndNoOpPersistsNothing(t *testing.T) {
	repo := newFakeRepo()
	repo.reservations = []models.Reservation{activeRes("a", "")}

	uc := NewDragEnd(repo, testDispatcher())

	resolution, err := uc.Execute(context.Background(), DragEndInput{
		ActiveID: "a",
		OverID:   "a",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EffectNone, resolution.Effect)
	assert.Empty(t, repo.replaced)
}

func TestDragEndFullSlotRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.settings.MaxPatientsPerSlot = 1
	repo.reservations = []models.Reservation{
		activeRes("a", ""),
		activeRes("busy", "3 PM - 4 PM"),
	}

	uc := NewDragEnd(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), DragEndInput{
		ActiveID: "a",
		OverID:   "3 PM - 4 PM",
	})
	assert.Equal(t, "slot_full", httperr.CodeOf(err))
	assert.Empty(t, repo.replaced)
}

func TestDragEndReorderRewritesPositions(t *testing.T) {
	repo := newFakeRepo()
	repo.reservations = []models.Reservation{
		activeRes("a", "3 PM - 4 PM"),
		activeRes("b", "3 PM - 4 PM"),
		activeRes("c", "3 PM - 4 PM"),
	}

	uc := NewDragEnd(repo, testDispatcher())

	resolution, err := uc.Execute(context.Background(), DragEndInput{
		ActiveID: "a",
		OverID:   "c",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EffectReordered, resolution.Effect)

	require.Len(t, repo.replaced, 1)
	ids := make([]string, 0, 3)
	for _, r := range repo.reservations {
		ids = append(ids, r.ID)
		assert.Equal(t, len(ids)-1, r.Position)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}
