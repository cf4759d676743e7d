package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jsho982045/orelse2/internal/config"
	"github.com/jsho982045/orelse2/internal/db"
	"github.com/jsho982045/orelse2/internal/repository"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/jsho982045/orelse2/internal/service/payment"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	SubscriptionService *service.SubscriptionService
	PaymentService      payment.Provider
	GoalService         *service.GoalService
	SuggestionService   *service.SuggestionService
	VoteService         *service.VoteService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	subscriptionRepository := repository.NewSubscriptionRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	suggestionRepository := repository.NewSuggestionRepository(database)
	voteRepository := repository.NewVoteRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository)

	// Initialize payment provider based on config
	paymentProvider, err := payment.NewProvider(cfg, subscriptionService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %v", err)
	}

	authService := service.NewAuthService(
		userRepository,
		subscriptionService,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	goalService := service.NewGoalService(goalRepository, suggestionRepository, userRepository, subscriptionService)
	suggestionService := service.NewSuggestionService(suggestionRepository, goalRepository)
	voteService := service.NewVoteService(voteRepository, suggestionRepository, goalRepository)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		AuthService:         authService,
		EmailService:        emailService,
		SubscriptionService: subscriptionService,
		PaymentService:      paymentProvider,
		GoalService:         goalService,
		SuggestionService:   suggestionService,
		VoteService:         voteService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
