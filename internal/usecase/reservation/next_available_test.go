package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-scheduler/internal/holidays"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
)

type fakeHolidays struct {
	years []int
}

func (f *fakeHolidays) ForYear(ctx context.Context, year int) []holidays.Holiday {
	f.years = append(f.years, year)
	return nil
}

func TestNextAvailableFindsUpcomingSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.settings.WorkingDays = []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

	src := &fakeHolidays{}
	uc := NewNextAvailable(repo, src)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.NotEmpty(t, result.Date)
	assert.NotEmpty(t, result.Slot)

	// An empty board always resolves within a day or two.
	found, err := time.Parse("2006-01-02", result.Date)
	require.NoError(t, err)
	assert.LessOrEqual(t, found.Sub(timezone.Now()), 48*time.Hour)
}

func TestNextAvailableQueriesBothYears(t *testing.T) {
	repo := newFakeRepo()
	src := &fakeHolidays{}
	uc := NewNextAvailable(repo, src)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	year := timezone.Now().Year()
	assert.Equal(t, []int{year, year + 1}, src.years)
}

func TestNextAvailableNothingFound(t *testing.T) {
	repo := newFakeRepo()
	repo.settings.WorkingDays = nil

	uc := NewNextAvailable(repo, &fakeHolidays{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Date)
	assert.Empty(t, result.Slot)
}
