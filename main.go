// Package main hotel reservation API.
//
// @title           Hotel Reservation API
// @version         1.0
// @description     Hotel room reservations with overlap-safe availability checks.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/saqi06/Hotel-Management-API/app/echoServer"
	authctrl "github.com/saqi06/Hotel-Management-API/app/echoServer/controller/auth"
	hotelctrl "github.com/saqi06/Hotel-Management-API/app/echoServer/controller/hotel"
	resvctrl "github.com/saqi06/Hotel-Management-API/app/echoServer/controller/reservation"
	"github.com/saqi06/Hotel-Management-API/app/echoServer/validation"
	"github.com/saqi06/Hotel-Management-API/config"
	hotelrepo "github.com/saqi06/Hotel-Management-API/repository/hotel"
	resvrepo "github.com/saqi06/Hotel-Management-API/repository/reservation"
	roomrepo "github.com/saqi06/Hotel-Management-API/repository/room"
	userrepo "github.com/saqi06/Hotel-Management-API/repository/user"
	authsvc "github.com/saqi06/Hotel-Management-API/service/auth"
	hotelsvc "github.com/saqi06/Hotel-Management-API/service/hotel"
	resvsvc "github.com/saqi06/Hotel-Management-API/service/reservation"
	"github.com/saqi06/Hotel-Management-API/util/database"
	"github.com/saqi06/Hotel-Management-API/util/mq"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB over pgx
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// events are optional: no AMQP_URL means no publishing
	var pub resvsvc.Publisher
	if cfg.AmqpURL != "" {
		p, err := mq.Connect(cfg.AmqpURL, cfg.EventQueue)
		if err != nil {
			log.Error("amqp connect failed", "err", err)
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	}

	// repos
	ur := userrepo.New(db)
	hr := hotelrepo.New(db)
	rr := roomrepo.New(db)
	sr := resvrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	hs := hotelsvc.New(hr, rr)
	ss := resvsvc.New(db, sr, rr, ur, hr, pub, log)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	hotelC := &hotelctrl.Controller{Svc: hs, V: v, Log: log}
	resvC := &resvctrl.Controller{Svc: ss, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Hotel:       hotelC,
		Reservation: resvC,
		JWTSecret:   cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
