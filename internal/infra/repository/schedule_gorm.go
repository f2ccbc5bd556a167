package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ScheduleGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ScheduleGormRepository) GetReservation(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ScheduleGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	// New records go to the end of the board.
	var maxPos int
	r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos)
	res.Position = maxPos + 1

	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ScheduleGormRepository) DeleteReservation(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Reservation{}).Error
}

// ReplaceReservations rewrites the whole collection's board order in
// one transaction, so the reconciled list lands atomically.
func (r *ScheduleGormRepository) ReplaceReservations(
	ctx context.Context,
	list []models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range list {
			list[i].Position = i
			if err := tx.Save(&list[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSettings(
	ctx context.Context,
) (*models.ClinicSettings, error) {

	var s models.ClinicSettings
	if err := r.db.WithContext(ctx).First(&s, 1).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) SaveSettings(
	ctx context.Context,
	s *models.ClinicSettings,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
