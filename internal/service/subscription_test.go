package service_test

import (
	"testing"

	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFreeSubscription(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo)

	sub, err := svc.CreateFreeSubscription("user-1")
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionPlanFree, sub.PlanID)
	assert.Equal(t, model.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, "none", sub.Provider)

	stored, err := svc.Subscription("user-1")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, stored.ID)
}

func TestActiveGoalLimit(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo)

	t.Run("free plan", func(t *testing.T) {
		subRepo.addPlan("free-user", model.SubscriptionPlanFree)
		limit, err := svc.ActiveGoalLimit("free-user")
		require.NoError(t, err)
		assert.Equal(t, 3, limit)
	})

	t.Run("supporter plan is unlimited", func(t *testing.T) {
		subRepo.addPlan("paid-user", model.SubscriptionPlanSupporter)
		limit, err := svc.ActiveGoalLimit("paid-user")
		require.NoError(t, err)
		assert.Equal(t, -1, limit)
	})

	t.Run("missing subscription falls back to free", func(t *testing.T) {
		limit, err := svc.ActiveGoalLimit("no-row-user")
		require.NoError(t, err)
		assert.Equal(t, 3, limit)
	})

	t.Run("cancelled supporter reverts to free limit", func(t *testing.T) {
		sub := subRepo.addPlan("lapsed-user", model.SubscriptionPlanSupporter)
		sub.Status = model.SubscriptionStatusCancelled
		limit, err := svc.ActiveGoalLimit("lapsed-user")
		require.NoError(t, err)
		assert.Equal(t, 3, limit)
	})
}

func TestDowngradeToFree(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo)

	sub := subRepo.addPlan("user-1", model.SubscriptionPlanSupporter)
	subID := "sub_123"
	amount := 500
	interval := model.SubscriptionIntervalMonthly
	sub.ProviderSubscriptionID = &subID
	sub.Amount = &amount
	sub.Interval = &interval

	require.NoError(t, svc.DowngradeToFree(sub))

	stored, err := svc.Subscription("user-1")
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionPlanFree, stored.PlanID)
	assert.Equal(t, model.SubscriptionStatusActive, stored.Status)
	assert.Nil(t, stored.ProviderSubscriptionID)
	assert.Nil(t, stored.Amount)
	assert.Nil(t, stored.Interval)
}
