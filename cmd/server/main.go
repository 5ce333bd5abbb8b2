package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kidfest/event-booking/internal/config"
	"github.com/kidfest/event-booking/internal/database"
	"github.com/kidfest/event-booking/internal/handler"
	"github.com/kidfest/event-booking/internal/middleware"
	"github.com/kidfest/event-booking/internal/repository"
	"github.com/kidfest/event-booking/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	if err := database.Seed(ctx, db, cfg.BcryptCost); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	// Redis is optional; cache and rate limiting degrade to
	// pass-through when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	programs := repository.NewProgramRepo(db)
	addons := repository.NewAddonRepo(db)
	masterclasses := repository.NewMasterclassRepo(db)
	bookings := repository.NewBookingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	bookingHandler := handler.NewBookingHandler(programs, addons, masterclasses, bookings, cfg.AMQPURL)
	catalogHandler := handler.NewCatalogHandler(programs, addons, masterclasses, rdb, cacheCfg.Prefix)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(rateCfg, rdb))
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterBooking(e, bookingHandler, cfg.JWTSecret)
	router.RegisterCatalog(e, catalogHandler, cfg.JWTSecret, cacheCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
