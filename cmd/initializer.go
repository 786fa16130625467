package main

import (
	"database/sql"
	"log"
	"time"

	"deudasBack/internal/config"
	"deudasBack/internal/handlers"
	"deudasBack/internal/repositories"
	"deudasBack/internal/services"
	"deudasBack/utils"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	db         *sql.DB
	signingKey string

	userRepo *repositories.UserRepository
	debtRepo *repositories.DebtRepository

	userHandler     *handlers.UserHandler
	debtHandler     *handlers.DebtHandler
	scheduleHandler *handlers.ScheduleHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger, cfg config.Config) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	debtRepo := repositories.DebtRepository{DB: db}

	var cache services.Cache
	if cfg.Redis.Address != "" {
		cache = repositories.NewDueCache(cfg.Redis.Address)
	}

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatalf("token manager: %v", err)
	}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		AccessTTL:    time.Duration(cfg.JWT.AccessTTLMin) * time.Minute,
		RefreshTTL:   time.Duration(cfg.JWT.RefreshTTLHours) * time.Hour,
	}
	debtService := &services.DebtService{DebtRepo: &debtRepo, Cache: cache}
	scheduleService := &services.ScheduleService{DebtRepo: &debtRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	debtHandler := &handlers.DebtHandler{Service: debtService}
	scheduleHandler := &handlers.ScheduleHandler{Service: scheduleService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		signingKey:      cfg.JWT.SigningKey,
		userRepo:        &userRepo,
		debtRepo:        &debtRepo,
		userHandler:     userHandler,
		debtHandler:     debtHandler,
		scheduleHandler: scheduleHandler,
	}
}
