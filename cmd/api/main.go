package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"turfbook/internal/database"
	"turfbook/internal/middleware"
	"turfbook/internal/modules/auth"
	"turfbook/internal/modules/booking"
	"turfbook/internal/modules/catalog"
	"turfbook/internal/modules/payment"
	"turfbook/internal/modules/review"
	"turfbook/internal/modules/team"
	jwtsvc "turfbook/internal/pkg/jwt"
	"turfbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "turfbook.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(fieldRepo, slotRepo, reviewRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, fieldRepo, slotRepo, teamRepo)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, fieldRepo)
	paymentHandler := payment.NewHandler(paymentService)

	teamService := team.NewService(teamRepo, bookingRepo)
	teamHandler := team.NewHandler(teamService)

	reviewService := review.NewService(reviewRepo, fieldRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		teamHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			teamHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)

			// field owners only
			owner := protected.Group("/owner")
			owner.Use(middleware.FieldOwnerOnly())
			{
				catalogHandler.RegisterOwnerRoutes(owner)
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
