package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"rentacar/internal/api"
	"rentacar/internal/config"
	"rentacar/internal/db"
	"rentacar/internal/repository"
	"rentacar/internal/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	store := openStore(cfg)

	cars, err := db.LoadFleet(cfg.CarsFile)
	if err != nil {
		log.Fatalf("Failed to load fleet: %v", err)
	}
	if err := store.SeedCars(cars); err != nil {
		log.Fatalf("Failed to seed fleet: %v", err)
	}
	log.Printf("Seeded %d cars", len(cars))

	notifySvc := service.NewNotifyService(cfg)
	bookingSvc := service.NewBookingService(store, notifySvc)
	authSvc := service.NewAdminAuthService(cfg)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(bookingSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := api.NewRouter(bookingHandler, adminHandler, authHandler, cfg.JWTSecret)

	jobSvc := service.NewJobService(bookingSvc, notifySvc)
	c := cron.New()
	if _, err := c.AddFunc(cfg.UtilizationCron, func() {
		if err := jobSvc.ReportFleetUtilization(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule utilization job: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	handler := handlers.LoggingHandler(log.Writer(), cors(r))

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}

// openStore picks Postgres when DATABASE_URL is set, otherwise the
// in-memory store.
func openStore(cfg config.Config) repository.Store {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		return repository.NewMemoryStore()
	}

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	repo := repository.NewBookingRepository(database)
	if err := repo.Init(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	return repo
}
