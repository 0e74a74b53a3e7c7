package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Sujaybr27/VPlay/internal/auth"
	"github.com/Sujaybr27/VPlay/internal/booking"
	"github.com/Sujaybr27/VPlay/internal/config"
	"github.com/Sujaybr27/VPlay/internal/court"
	"github.com/Sujaybr27/VPlay/internal/email"
	"github.com/Sujaybr27/VPlay/internal/location"
	"github.com/Sujaybr27/VPlay/internal/payment"
	"github.com/Sujaybr27/VPlay/internal/slot"
	"github.com/Sujaybr27/VPlay/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userRepo := user.NewRepository(db)
	locationRepo := location.NewRepository(db)
	courtRepo := court.NewRepository(db)
	slotRepo := slot.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	userService := user.NewService(userRepo, redisClient, emailService, cfg.JWTSecret)
	bookingService := booking.NewService(bookingRepo, userRepo, paymentRepo, emailService)

	userHandler := user.NewHandler(userService)
	locationHandler := location.NewHandler(locationRepo)
	courtHandler := court.NewHandler(courtRepo, locationRepo)
	slotHandler := slot.NewHandler(slotRepo, courtRepo, locationRepo)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentRepo)

	authRoutes := router.Group("/auth")
	authRoutes.Use(RateLimitMiddleware(5, 10))
	{
		authRoutes.POST("/register", userHandler.Register)
		authRoutes.POST("/login", userHandler.Login)
		authRoutes.POST("/refresh", userHandler.RefreshToken)
		authRoutes.POST("/password-reset/request", userHandler.RequestPasswordReset)
		authRoutes.POST("/password-reset/confirm", userHandler.ConfirmPasswordReset)
	}

	// Browsing and booking are open, matching the original API surface.
	router.GET("/locations", locationHandler.ListLocations)
	router.GET("/courts", courtHandler.ListCourts)
	router.GET("/slots/court/:courtID", slotHandler.ListByCourt)
	router.POST("/bookings", bookingHandler.CreateBooking)
	router.GET("/bookings/user/:userID", bookingHandler.ListUserBookings)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/locations/my-locations", locationHandler.MyLocations)
		protected.POST("/courts", courtHandler.CreateCourt)
		protected.GET("/courts/location/:locationID", courtHandler.ListByLocation)
		protected.POST("/slots/bulk", slotHandler.BulkCreate)
		protected.POST("/slots/generate/:courtID", slotHandler.Generate)
		protected.GET("/payments/my", paymentHandler.ListMy)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/locations", locationHandler.CreateLocation)
		admin.GET("/bookings", bookingHandler.ListAllBookings)
		admin.GET("/analytics/bookings", bookingHandler.GetBookingAnalytics)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router is exposed for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
