// Package router assembles the gin engine serving the HTTP API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skyvoyager/internal/handlers"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/middleware"
	"skyvoyager/internal/services"

	_ "skyvoyager/internal/docs" // swagger docs
)

// Services are the dependencies behind the routes.
type Services struct {
	Users           services.UserServicer
	Flights         services.FlightServicer
	Wallet          services.WalletServicer
	Bookings        services.BookingServicer
	Destinations    services.DestinationServicer
	BookingRequests services.BookingRequestServicer
	Airports        handlers.AirportDirectory
	Renderer        handlers.BoardingPassRenderer
	Metrics         *metrics.Metrics
}

// New builds the engine with every route registered.
func New(svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users)
	airportHandler := handlers.NewAirportHandler(svc.Airports)
	flightHandler := handlers.NewFlightHandler(svc.Flights)
	bookingHandler := handlers.NewBookingHandler(svc.Flights, svc.Bookings, svc.Renderer)
	walletHandler := handlers.NewWalletHandler(svc.Wallet)
	adminHandler := handlers.NewAdminHandler(svc.Users, svc.Destinations, svc.BookingRequests)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if svc.Metrics != nil {
		router.GET("/metrics", gin.WrapH(svc.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/airports", airportHandler.ListAirports)
	v1.GET("/airports/:code", airportHandler.GetAirport)
	v1.GET("/flights", flightHandler.SearchFlights)
	v1.GET("/flights/:from/:to/:date/:id", flightHandler.GetFlight)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireSession(svc.Users))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/wallet", walletHandler.GetWallet)

	bookings := protected.Group("/bookings")
	bookings.POST("", bookingHandler.CreateBooking)
	bookings.GET("", bookingHandler.GetBookings)
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
	bookings.GET("/:id/boarding-pass", bookingHandler.GetBoardingPass)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.AddUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	admin.GET("/destinations", adminHandler.ListDestinations)
	admin.POST("/destinations", adminHandler.CreateDestination)
	admin.PUT("/destinations/:id", adminHandler.UpdateDestination)
	admin.DELETE("/destinations/:id", adminHandler.DeleteDestination)

	admin.GET("/booking-requests", adminHandler.ListBookingRequests)
	admin.POST("/booking-requests/:id/status", adminHandler.UpdateBookingRequestStatus)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
