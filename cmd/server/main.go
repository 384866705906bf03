package main // Entry point package

import (
	"log"  // Logging library
	"time" // Token lifetime conversion

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/user-account-service/internal/config"     // Internal config loader
	"github.com/iliyamo/user-account-service/internal/database"   // MySQL pool construction
	"github.com/iliyamo/user-account-service/internal/handler"    // HTTP handlers
	"github.com/iliyamo/user-account-service/internal/queue"      // Account event publisher/consumer
	"github.com/iliyamo/user-account-service/internal/repository" // Account persistence
	"github.com/iliyamo/user-account-service/internal/router"     // Route registration
	"github.com/iliyamo/user-account-service/internal/service"    // Account orchestration
)

func main() {
	_ = godotenv.Load() // best effort; real env vars win over .env
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	accounts := repository.NewAccountRepo(db)
	svc := service.NewAccountService(
		accounts,
		service.EventPublisherFunc(queue.PublishAccountEvent),
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLSeconds)*time.Second,
		cfg.BcryptCost,
	)

	// Background consumer that appends account events to logs/account.log.
	go func() {
		if err := queue.StartAccountConsumer(); err != nil {
			log.Printf("account-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAccount(e, handler.NewAccountHandler(svc))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
