package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestIsWorkingDay(t *testing.T) {
	cfg := Config{
		WorkingDays: []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu"},
		Exceptions: map[string]string{
			"2025-01-18": ExceptionClosed,
			"2025-01-24": ExceptionOpen,
			"2025-01-25": ExceptionOpen,
		},
	}
	holidays := []string{"2025-01-25", "2025-01-07"}

	tests := []struct {
		name string
		date string
		want bool
	}{
		// 2025-01-20 is a Monday.
		{"regular working day", "2025-01-20", true},
		{"friday is the weekly day off", "2025-01-17", false},
		{"holiday blocks a working day", "2025-01-07", false},
		{"closed exception overrides the weekly pattern", "2025-01-18", false},
		// 2025-01-24 is a Friday.
		{"open exception overrides the day off", "2025-01-24", true},
		{"open exception overrides a holiday", "2025-01-25", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWorkingDay(mustDate(t, tt.date), cfg, holidays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWorkingDayNilMaps(t *testing.T) {
	cfg := Config{WorkingDays: []string{"Mon"}}
	assert.True(t, IsWorkingDay(mustDate(t, "2025-01-20"), cfg, nil))
	assert.False(t, IsWorkingDay(mustDate(t, "2025-01-21"), cfg, nil))
}
