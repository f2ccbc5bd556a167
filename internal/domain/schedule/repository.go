package schedule

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Reservations --------
	// ListReservations returns the whole collection in board order.
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	GetReservation(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id string,
	) error

	// ReplaceReservations persists a full reordered collection,
	// rewriting board positions, as one atomic replacement.
	ReplaceReservations(
		ctx context.Context,
		list []models.Reservation,
	) error

	// -------- Settings --------
	GetSettings(ctx context.Context) (*models.ClinicSettings, error)

	SaveSettings(
		ctx context.Context,
		s *models.ClinicSettings,
	) error
}
