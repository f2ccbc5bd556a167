package schedule

import (
	"slices"
	"time"

	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

const DateLayout = "2006-01-02"

const (
	ExceptionOpen   = "open"
	ExceptionClosed = "closed"
)

// Config is the schedule portion of the clinic settings, read-only to
// the scheduling core.
type Config struct {
	WorkingDays        []string
	StartHour          string
	EndHour            string
	MaxPatientsPerSlot int
	Exceptions         map[string]string
}

func ConfigFromSettings(s *models.ClinicSettings) Config {
	return Config{
		WorkingDays:        s.WorkingDays,
		StartHour:          s.StartHour,
		EndHour:            s.EndHour,
		MaxPatientsPerSlot: s.MaxPatientsPerSlot,
		Exceptions:         s.Exceptions,
	}
}

// IsWorkingDay decides whether a date is bookable. Precedence order:
// a manual per-date exception wins outright, then the weekly pattern,
// then the public holiday list. Pure function of its inputs; an empty
// or stale holiday list is fine.
func IsWorkingDay(date time.Time, cfg Config, holidays []string) bool {
	dateStr := date.Format(DateLayout)

	switch cfg.Exceptions[dateStr] {
	case ExceptionOpen:
		return true
	case ExceptionClosed:
		return false
	}

	if !slices.Contains(cfg.WorkingDays, date.Format("Mon")) {
		return false
	}
	if slices.Contains(holidays, dateStr) {
		return false
	}
	return true
}
