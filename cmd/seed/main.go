package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"hotelops/internal/database"
	"hotelops/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("hotel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	// ================== STAFF ==================
	log.Println("Creating staff accounts...")

	staff := []struct {
		email    string
		password string
		role     domain.UserRole
		name     string
	}{
		{"admin@hotelops.local", "admin123", domain.RoleAdmin, "System Admin"},
		{"manager@hotelops.local", "manager123", domain.RoleManager, "Dana Seitova"},
		{"desk@hotelops.local", "desk123", domain.RoleReception, "Front Desk"},
	}
	for _, s := range staff {
		hash, _ := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		u := domain.User{
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			Name:         s.name,
			IsActive:     true,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	// ================== HOTEL & ROOMS ==================
	log.Println("Creating hotel and rooms...")

	hotel := domain.Hotel{
		Name:    "Aruzhan Plaza",
		Address: "12 Kabanbay Batyr Ave, Astana",
		Phone:   "+7 7172 55 44 33",
	}
	if err := db.Create(&hotel).Error; err != nil {
		log.Fatal("seed hotel failed:", err)
	}

	types := []struct {
		roomType domain.RoomType
		bedType  domain.BedType
		capacity int
	}{
		{domain.RoomStandard, domain.BedDouble, 2},
		{domain.RoomStandard, domain.BedTwin, 2},
		{domain.RoomDeluxe, domain.BedQueen, 2},
		{domain.RoomFamily, domain.BedDouble, 4},
		{domain.RoomSuite, domain.BedKing, 3},
	}

	var roomIDs []int64
	for floor := 1; floor <= 4; floor++ {
		for i := 1; i <= 5; i++ {
			t := types[(floor+i)%len(types)]
			room := domain.Room{
				HotelID:    hotel.ID,
				Number:     fmt.Sprintf("%d%02d", floor, i),
				Floor:      floor,
				RoomType:   t.roomType,
				BedType:    t.bedType,
				Capacity:   t.capacity,
				Status:     domain.RoomVacant,
				AccessCode: fmt.Sprintf("%04d", rand.Intn(10000)),
			}
			if err := db.Create(&room).Error; err != nil {
				log.Fatal("seed room failed:", err)
			}
			roomIDs = append(roomIDs, room.ID)
		}
	}

	// One room is down for maintenance.
	db.Model(&domain.Room{}).Where("id = ?", roomIDs[len(roomIDs)-1]).
		Update("status", domain.RoomMaintenance)

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	today := domain.ToDate(time.Now())
	guests := []struct {
		name  string
		phone string
	}{
		{"Aigerim Nurlanova", "+7 701 111 22 33"},
		{"John Carter", "+1 415 555 0101"},
		{"Elena Petrova", "+7 702 444 55 66"},
		{"Marat Onalbayev", "+7 705 777 88 99"},
	}

	for i, g := range guests {
		roomID := roomIDs[i*2]
		stay, err := domain.NewStayInterval(
			today.AddDate(0, 0, i-1),
			today.AddDate(0, 0, i+2),
		)
		if err != nil {
			log.Fatal("seed interval failed:", err)
		}

		status := domain.ReservationConfirmed
		if i == 0 {
			// Guest zero arrived yesterday and is already in the room.
			status = domain.ReservationCheckedIn
			db.Model(&domain.Room{}).Where("id = ?", roomID).
				Update("status", domain.RoomOccupied)
		}

		res := domain.Reservation{
			Reference:  uuid.NewString(),
			RoomID:     roomID,
			GuestName:  g.name,
			GuestPhone: g.phone,
			Stay:       stay,
			Adults:     2,
			Children:   i % 2,
			Status:     status,
			Total:      float64(stay.Nights()) * 25000,
		}
		if err := db.Create(&res).Error; err != nil {
			log.Fatal("seed reservation failed:", err)
		}
	}

	log.Println("Seed complete:",
		"hotel=", hotel.Name,
		"rooms=", len(roomIDs),
		"reservations=", len(guests),
	)
}
