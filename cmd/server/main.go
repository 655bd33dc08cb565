package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "auth_mode", cfg.Auth.Mode)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	revenueSvc := service.NewRevenueService(store.RevenueRepository)
	carSvc := service.NewCarService(store.CarRepository, store.ReservationRepository)
	clientSvc := service.NewClientService(
		store.UserRepository,
		store.BranchRepository,
		store.RentRepository,
		store.ReturnalRepository,
		store.ReservationRepository,
		store,
	)
	employeeSvc := service.NewEmployeeService(
		store.UserRepository,
		store.BranchRepository,
		store.RentRepository,
		store.ReturnalRepository,
		store,
	)
	branchSvc := service.NewBranchService(
		store.BranchRepository,
		store.CompanyRepository,
		store.RevenueRepository,
		store,
	)
	companySvc := service.NewCompanyService(store.CompanyRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.CarRepository,
		store.BranchRepository,
		store.UserRepository,
		store.RentRepository,
		revenueSvc,
		store,
		emailSvc,
	)
	rentSvc := service.NewRentService(
		store.RentRepository,
		store.ReservationRepository,
		store.UserRepository,
	)
	returnalSvc := service.NewReturnalService(
		store.ReturnalRepository,
		store.ReservationRepository,
		store.CarRepository,
		store.UserRepository,
		revenueSvc,
		store,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)

	// Set up HTTP server
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, store.UserRepository, cfg.Auth.Mode)
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:         authMiddleware,
		AuthSvc:      authSvc,
		Cars:         carSvc,
		Clients:      clientSvc,
		Employees:    employeeSvc,
		Branches:     branchSvc,
		Companies:    companySvc,
		Reservations: reservationSvc,
		Rents:        rentSvc,
		Returnals:    returnalSvc,
		Revenues:     revenueSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
