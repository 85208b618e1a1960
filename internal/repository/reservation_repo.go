package repository

import (
	"context"
	"errors"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	Reference   string     `gorm:"column:reference"`
	RoomID      int64      `gorm:"column:room_id"`
	GuestName   string     `gorm:"column:guest_name"`
	GuestPhone  *string    `gorm:"column:guest_phone"`
	GuestEmail  *string    `gorm:"column:guest_email"`
	CheckIn     time.Time  `gorm:"column:check_in"`
	CheckOut    time.Time  `gorm:"column:check_out"`
	Adults      int        `gorm:"column:adults"`
	Children    int        `gorm:"column:children"`
	Status      string     `gorm:"column:status"`
	Total       float64    `gorm:"column:total"`
	Notes       *string    `gorm:"column:notes"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var phone, email, notes string
	if m.GuestPhone != nil {
		phone = *m.GuestPhone
	}
	if m.GuestEmail != nil {
		email = *m.GuestEmail
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:          m.ID,
		Reference:   m.Reference,
		RoomID:      m.RoomID,
		GuestName:   m.GuestName,
		GuestPhone:  phone,
		GuestEmail:  email,
		Stay:        domain.StayInterval{CheckIn: m.CheckIn, CheckOut: m.CheckOut},
		Adults:      m.Adults,
		Children:    m.Children,
		Status:      domain.ReservationStatus(m.Status),
		Total:       m.Total,
		Notes:       notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var phone, email, notes *string
	if r.GuestPhone != "" {
		v := r.GuestPhone
		phone = &v
	}
	if r.GuestEmail != "" {
		v := r.GuestEmail
		email = &v
	}
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return reservationModel{
		ID:          r.ID,
		Reference:   r.Reference,
		RoomID:      r.RoomID,
		GuestName:   r.GuestName,
		GuestPhone:  phone,
		GuestEmail:  email,
		CheckIn:     r.Stay.CheckIn,
		CheckOut:    r.Stay.CheckOut,
		Adults:      r.Adults,
		Children:    r.Children,
		Status:      string(r.Status),
		Total:       r.Total,
		Notes:       notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CancelledAt: r.CancelledAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("check_in ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListForDate returns every reservation touching the date: starting on it,
// ending on it, or spanning through it.
func (r *ReservationRepository) ListForDate(ctx context.Context, date time.Time) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).
		Where("check_in <= ? AND check_out >= ?", date, date).
		Order("room_id ASC, check_in ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, cancelledAt *time.Time) error {
	updates := map[string]interface{}{"status": string(status)}
	if cancelledAt != nil {
		updates["cancelled_at"] = cancelledAt
	}

	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
