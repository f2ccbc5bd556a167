package reservation

import (
	"context"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/timezone"
)

type SlotView struct {
	ID      string `json:"id"`
	Display string `json:"display"`
}

type DayTotals struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Archived  int `json:"archived"`
}

// DayView is what the board renders: the slot grid with localized
// labels plus the five classified buckets for the selected date.
type DayView struct {
	Date       string                          `json:"date"`
	Slots      []SlotView                      `json:"slots"`
	Unassigned []models.Reservation            `json:"unassigned"`
	Emergency  []models.Reservation            `json:"emergency"`
	Scheduled  map[string][]models.Reservation `json:"scheduled"`
	Completed  []models.Reservation            `json:"completed"`
	Archived   []models.Reservation            `json:"archived"`
	Totals     DayTotals                       `json:"totals"`
}

type ListDay struct {
	repo domain.Repository
}

func NewListDay(repo domain.Repository) *ListDay {
	return &ListDay{repo: repo}
}

func (uc *ListDay) Execute(
	ctx context.Context,
	date string,
	locale string,
) (*DayView, error) {

	today := timezone.Today()
	if date == "" {
		date = today
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	cfg := domain.ConfigFromSettings(settings)
	grid := domain.GenerateSlots(cfg.StartHour, cfg.EndHour)

	list, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	ds := domain.ClassifyDay(list, date, today, grid)

	slots := make([]SlotView, 0, len(grid))
	for _, s := range grid {
		slots = append(slots, SlotView{ID: s.ID, Display: s.Display(locale)})
	}

	active := len(ds.Unassigned) + len(ds.Emergency)
	for _, items := range ds.Scheduled {
		active += len(items)
	}

	return &DayView{
		Date:       date,
		Slots:      slots,
		Unassigned: ds.Unassigned,
		Emergency:  ds.Emergency,
		Scheduled:  ds.Scheduled,
		Completed:  ds.Completed,
		Archived:   ds.Archived,
		Totals: DayTotals{
			Active:    active,
			Completed: len(ds.Completed),
			Archived:  len(ds.Archived),
		},
	}, nil
}
