package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsho982045/orelse2/internal/ctxkeys"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/jsho982045/orelse2/internal/service/payment"
	"github.com/jsho982045/orelse2/internal/validation"
)

type billingHandler struct {
	subscriptionService *service.SubscriptionService
	paymentService      payment.Provider
}

func NewBillingHandler(subscriptionService *service.SubscriptionService, paymentService payment.Provider) *billingHandler {
	return &billingHandler{
		subscriptionService: subscriptionService,
		paymentService:      paymentService,
	}
}

// Subscription returns the caller's subscription
func (h *billingHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sub, err := h.subscriptionService.Subscription(user.ID)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respondError(w, http.StatusNotFound, "subscription not found")
			return
		}
		slog.Error("failed to load subscription", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"subscription": sub})
}

func (h *billingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Plan     string `json:"plan"`
		Interval string `json:"interval"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Plan != model.SubscriptionPlanSupporter {
		respondIssues(w, []validation.Issue{{Path: "plan", Message: "plan must be supporter"}})
		return
	}

	interval := req.Interval
	if interval == "" {
		interval = model.SubscriptionIntervalMonthly
	}
	if interval != model.SubscriptionIntervalMonthly && interval != model.SubscriptionIntervalYearly {
		respondIssues(w, []validation.Issue{{Path: "interval", Message: "interval must be monthly or yearly"}})
		return
	}

	checkoutURL, err := h.paymentService.CreateCheckoutURL(user.ID, req.Plan, interval, user.Email, user.Name)
	if err != nil {
		slog.Error("failed to create checkout", "error", err, "user_id", user.ID, "plan_id", req.Plan, "provider", h.paymentService.Name())
		respondError(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	slog.Info("checkout created", "user_id", user.ID, "provider", h.paymentService.Name())
	respondJSON(w, http.StatusOK, map[string]string{"checkoutUrl": checkoutURL})
}

func (h *billingHandler) CustomerPortal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	portalURL, err := h.paymentService.CustomerPortalURL(user.ID)
	if err != nil {
		slog.Error("failed to get customer portal", "error", err, "user_id", user.ID, "provider", h.paymentService.Name())
		respondError(w, http.StatusInternalServerError, "failed to access customer portal")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"portalUrl": portalURL})
}

func (h *billingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read webhook payload", "error", err)
		respondError(w, http.StatusBadRequest, "failed to read payload")
		return
	}
	defer func() {
		closeErr := r.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close request body", "error", closeErr)
		}
	}()

	err = h.paymentService.HandleWebhook(payload, r.Header)
	if err != nil {
		slog.Error("failed to handle webhook", "error", err, "provider", h.paymentService.Name())
		respondError(w, http.StatusBadRequest, "failed to process webhook")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}
