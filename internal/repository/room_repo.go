package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	HotelID    int64     `gorm:"column:hotel_id"`
	Number     string    `gorm:"column:number;uniqueIndex:idx_rooms_number"`
	Floor      int       `gorm:"column:floor"`
	RoomType   string    `gorm:"column:room_type"`
	BedType    string    `gorm:"column:bed_type"`
	Capacity   int       `gorm:"column:capacity"`
	Status     string    `gorm:"column:status"`
	AccessCode *string   `gorm:"column:access_code"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var code string
	if m.AccessCode != nil {
		code = *m.AccessCode
	}

	return &domain.Room{
		ID:         m.ID,
		HotelID:    m.HotelID,
		Number:     m.Number,
		Floor:      m.Floor,
		RoomType:   domain.RoomType(m.RoomType),
		BedType:    domain.BedType(m.BedType),
		Capacity:   m.Capacity,
		Status:     domain.RoomStatus(m.Status),
		AccessCode: code,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var code *string
	if r.AccessCode != "" {
		v := r.AccessCode
		code = &v
	}

	return roomModel{
		ID:         r.ID,
		HotelID:    r.HotelID,
		Number:     r.Number,
		Floor:      r.Floor,
		RoomType:   string(r.RoomType),
		BedType:    string(r.BedType),
		Capacity:   r.Capacity,
		Status:     string(r.Status),
		AccessCode: code,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) ||
			strings.Contains(strings.ToLower(tx.Error.Error()), "unique") {
			return ErrDuplicate
		}
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("floor ASC, number ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// UpdateStatus writes the status in a single UPDATE so concurrent writers on
// the same room cannot interleave, then returns the fresh row.
func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) (*domain.Room, error) {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}
