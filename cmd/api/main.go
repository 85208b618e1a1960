package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelops/internal/cache"
	"hotelops/internal/database"
	"hotelops/internal/middleware"
	"hotelops/internal/modules/auth"
	"hotelops/internal/modules/availability"
	"hotelops/internal/modules/board"
	"hotelops/internal/modules/reservation"
	"hotelops/internal/modules/rooms"
	"hotelops/internal/modules/roomstatus"
	jwtsvc "hotelops/internal/pkg/jwt"
	"hotelops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	hotelID := int64(1)
	if v := os.Getenv("HOTEL_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatal("HOTEL_ID is not a number:", err)
		}
		hotelID = parsed
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := board.NewHub()
	defer hub.Close()

	// Redis is optional; without it blocked-date lookups just hit the DB.
	var blockedCache availability.BlockedDatesCache
	var invalidator reservation.AvailabilityCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := cache.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		ac := cache.NewAvailabilityCache(rdb, 5*time.Minute)
		blockedCache = ac
		invalidator = ac
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	availabilityService := availability.NewService(reservationRepo, roomRepo, blockedCache)
	availabilityHandler := availability.NewHandler(availabilityService, hotelID)

	statusService := roomstatus.NewService(roomRepo, reservationRepo, hub)
	statusHandler := roomstatus.NewHandler(statusService)

	reservationService := reservation.NewService(reservationRepo, roomRepo, statusService, hub, invalidator)
	reservationHandler := reservation.NewHandler(reservationService)

	roomsService := rooms.NewService(roomRepo, hotelID)
	roomsHandler := rooms.NewHandler(roomsService)

	boardHandler := board.NewHandler(hub, j)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		boardHandler.RegisterRoutes(v1) // authenticates via token query param

		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			roomsHandler.RegisterRoutes(protected)
			availabilityHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			statusHandler.RegisterRoutes(protected)

			management := protected.Group("/")
			management.Use(middleware.ManagementOnly())
			{
				roomsHandler.RegisterManagementRoutes(management)
				authHandler.RegisterManagementRoutes(management)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
