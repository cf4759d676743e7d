package routes

import (
	"net/http"

	"github.com/jsho982045/orelse2/internal/app"
	"github.com/jsho982045/orelse2/internal/handler"
	"github.com/jsho982045/orelse2/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	goal := handler.NewGoalHandler(app.GoalService)
	suggestion := handler.NewSuggestionHandler(app.SuggestionService)
	vote := handler.NewVoteHandler(app.VoteService)
	billing := handler.NewBillingHandler(app.SubscriptionService, app.PaymentService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("GET /auth/google", rateLimiter(auth.GoogleAuth))
	mux.HandleFunc("GET /auth/google/callback", rateLimiter(auth.GoogleCallback))
	mux.HandleFunc("GET /auth/me", middleware.RequireAuth(auth.Me))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Goals
	mux.HandleFunc("GET /goals", goal.PublicGoals)
	mux.HandleFunc("GET /goal/{goalId}", goal.Detail)
	mux.HandleFunc("GET /my-goals", middleware.RequireAuth(goal.MyGoals))
	mux.HandleFunc("POST /goal", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("PATCH /goal/{goalId}", middleware.RequireAuth(goal.MarkComplete))

	// Suggestions and votes
	mux.HandleFunc("POST /suggestions", middleware.RequireAuth(suggestion.Create))
	mux.HandleFunc("POST /votes", middleware.RequireAuth(vote.Cast))

	// Billing
	mux.HandleFunc("GET /billing/subscription", middleware.RequireAuth(billing.Subscription))
	mux.HandleFunc("POST /billing/checkout", middleware.RequireAuth(billing.CreateCheckout))
	mux.HandleFunc("GET /billing/portal", middleware.RequireAuth(billing.CustomerPortal))

	// Payment provider webhook (works with both Polar and Stripe)
	mux.HandleFunc("POST /webhooks/payment", billing.Webhook)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)
}
