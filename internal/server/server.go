package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"driveslot/internal/auth"
	"driveslot/internal/cart"
	"driveslot/internal/config"
	"driveslot/internal/email"
	"driveslot/internal/event"
	"driveslot/internal/instructor"
	"driveslot/internal/order"
	"driveslot/internal/realtime"
	"driveslot/internal/reservation"
	"driveslot/internal/ticketclass"
	"driveslot/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, rdb *redis.Client, bus *event.Bus) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, cfg.JWTSecret)
	userHandler := user.NewHandler(userService)

	instructorRepo := instructor.NewRepository(db)
	instructorHandler := instructor.NewHandler(db)

	cartRepo := cart.NewRepository(db)
	cartMirror := cart.NewMirror(rdb)
	cartService := cart.NewService(cartRepo, cartMirror, bus)
	cartHandler := cart.NewHandler(cartService)

	reservationService := reservation.NewService(instructorRepo, cartService, bus)
	reservationHandler := reservation.NewHandler(reservationService)

	orderRepo := order.NewRepository(db)
	orderService := order.NewService(orderRepo, instructorRepo, reservationService, cartService, userRepo, emailService)
	orderHandler := order.NewHandler(orderService)

	classRepo := ticketclass.NewRepository(db)
	classService := ticketclass.NewService(classRepo, bus)
	classHandler := ticketclass.NewHandler(classService)

	streamHandler := realtime.NewHandler(bus, reservationService, classService, cartService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	// Anonymous viewers pass userId explicitly; the cart stream is the only
	// one bound to the authenticated identity.
	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	streams := router.Group("/streams")
	{
		streams.GET("/slots", streamHandler.StreamSlots)
		streams.GET("/ticket-classes", streamHandler.StreamTicketClasses)
		streams.GET("/cart", authMiddleware, streamHandler.StreamCart)
	}

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/instructors", instructorHandler.ListInstructors)
		protected.GET("/instructors/:instructorID/slots", reservationHandler.ListSlots)

		protected.POST("/slots/reserve", reservationHandler.Reserve)
		protected.POST("/slots/:slotID/cancel", reservationHandler.Cancel)
		protected.GET("/slots/verify-status", reservationHandler.VerifyStatus)

		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart/items", cartHandler.AddItem)
		protected.DELETE("/cart/items/:itemID", cartHandler.RemoveItem)
		protected.DELETE("/cart", cartHandler.ClearCart)

		protected.POST("/orders/checkout", orderHandler.Checkout)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.POST("/payments/confirm", orderHandler.ConfirmPayment)
		protected.POST("/payments/fail", orderHandler.FailPayment)

		protected.GET("/ticket-classes", classHandler.ListClasses)
		protected.POST("/ticket-classes/:id/requests", classHandler.RequestEnrollment)
		protected.DELETE("/ticket-classes/:id/requests", classHandler.DropEnrollment)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/instructors", instructorHandler.CreateInstructor)
		admin.POST("/instructors/:instructorID/slots", instructorHandler.CreateSlot)
		admin.POST("/slots/:slotID/cancel", reservationHandler.AdminCancel)
		admin.POST("/slots/update-status", reservationHandler.UpdateStatus)
		admin.POST("/ticket-classes", classHandler.CreateClass)
		admin.POST("/ticket-classes/:id/students/:studentId/confirm", classHandler.ConfirmEnrollment)
		admin.GET("/stats/slots", instructorHandler.SlotStats)
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

// Router exposes the engine for black-box tests.
func (s *Server) Router() http.Handler {
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
