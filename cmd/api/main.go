package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"batoo/internal/calendar"
	"batoo/internal/config"
	"batoo/internal/database"
	"batoo/internal/middleware"
	"batoo/internal/modules/auth"
	"batoo/internal/modules/booking"
	"batoo/internal/modules/catalog"
	"batoo/internal/modules/chat"
	"batoo/internal/modules/review"
	jwtsvc "batoo/internal/pkg/jwt"
	"batoo/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	// Without an API key the calendar integration stays off and every
	// listing quotes as fully available.
	var calClient booking.CalendarClient
	if cfg.GoogleAPIKey != "" {
		cc, err := calendar.New(context.Background(), cfg.GoogleAPIKey, cfg.DefaultCalendarID)
		if err != nil {
			log.Fatal(err)
		}
		calClient = cc
	} else {
		log.Println("GOOGLE_API_KEY not set; calendar integration disabled")
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(listingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, listingRepo, calClient)
	bookingHandler := booking.NewHandler(bookingService)

	hub := chat.NewHub()
	defer hub.Close()
	chatService := chat.NewService(messageRepo, userRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub, j)

	reviewService := review.NewService(reviewRepo, listingRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
		}
	}

	// Websocket authenticates via query token, outside the middleware chain.
	chatHandler.RegisterWSRoute(r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
