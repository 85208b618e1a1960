package rooms

import (
	"context"
	"errors"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/validator"
	"hotelops/internal/repository"
)

type Service struct {
	rooms   RoomRepository
	hotelID int64
}

func NewService(rooms RoomRepository, hotelID int64) *Service {
	return &Service{rooms: rooms, hotelID: hotelID}
}

// Create registers a new room. New rooms start vacant; the status
// synchronizer owns every later status change.
func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		HotelID:    s.hotelID,
		Number:     req.Number,
		Floor:      req.Floor,
		RoomType:   req.RoomType,
		BedType:    req.BedType,
		Capacity:   req.Capacity,
		Status:     domain.RoomVacant,
		AccessCode: req.AccessCode,
	}

	if errs := validator.Validate(room); errs != nil {
		return nil, ErrValidation
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNumberTaken
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, s.hotelID)
}
