package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/saqi06/Hotel-Management-API/app/echoServer/controller/auth"
	"github.com/saqi06/Hotel-Management-API/app/echoServer/controller/hotel"
	"github.com/saqi06/Hotel-Management-API/app/echoServer/controller/reservation"
)

type C struct {
	Auth        *auth.Controller
	Hotel       *hotel.Controller
	Reservation *reservation.Controller
	JWTSecret   string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	authg := e.Group("/v1")
	authg.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))

	// Hotels & rooms
	authg.POST("/hotels", c.Hotel.Create)
	authg.GET("/hotels", c.Hotel.List)
	authg.GET("/hotels/:id", c.Hotel.Get)
	authg.POST("/hotels/:id/rooms", c.Hotel.AddRoom)
	authg.GET("/hotels/:id/rooms", c.Hotel.Rooms)
	authg.GET("/rooms/:id", c.Hotel.Room)
	authg.POST("/rooms/:id/bookings", c.Hotel.AddBooking)
	authg.GET("/rooms/:id/availability", c.Reservation.Availability)

	// Reservations
	authg.POST("/reservations", c.Reservation.Create)
	authg.GET("/reservations", c.Reservation.List)
	authg.GET("/reservations/:id", c.Reservation.Get)
	authg.PUT("/reservations/:id", c.Reservation.Update)
	authg.POST("/reservations/:id/cancel", c.Reservation.Cancel)
	authg.POST("/reservations/:id/confirm", c.Reservation.Confirm)
	authg.DELETE("/reservations/:id", c.Reservation.Delete)
}
