package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type SubscriptionService struct {
	subRepo repository.SubscriptionRepository
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo}
}

// CreateFreeSubscription gives a new user the free plan. Every user has
// exactly one subscription row from signup on.
func (s *SubscriptionService) CreateFreeSubscription(userID string) (*model.Subscription, error) {
	now := time.Now()
	sub := &model.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    model.SubscriptionPlanFree,
		Status:    model.SubscriptionStatusActive,
		Provider:  "none",
		Currency:  "usd",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.subRepo.Create(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create free subscription: %w", err)
	}

	return sub, nil
}

func (s *SubscriptionService) Subscription(userID string) (*model.Subscription, error) {
	sub, err := s.subRepo.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// ActiveGoalLimit resolves how many concurrently active goals the user may
// have. A missing subscription row falls back to the free limit.
func (s *SubscriptionService) ActiveGoalLimit(userID string) (int, error) {
	sub, err := s.subRepo.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			free := &model.Subscription{PlanID: model.SubscriptionPlanFree, Status: model.SubscriptionStatusActive}
			return free.ActiveGoalLimit(), nil
		}
		return 0, err
	}
	return sub.ActiveGoalLimit(), nil
}

func (s *SubscriptionService) ByProviderSubscriptionID(providerSubID string) (*model.Subscription, error) {
	sub, err := s.subRepo.ByProviderSubscriptionID(providerSubID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) ByProviderCustomerID(providerCustomerID string) (*model.Subscription, error) {
	sub, err := s.subRepo.ByProviderCustomerID(providerCustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) UpdateSubscription(sub *model.Subscription) error {
	sub.UpdatedAt = time.Now()
	err := s.subRepo.Update(sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

// DowngradeToFree resets the user's subscription to the free plan after a
// paid subscription is cancelled or revoked at the provider.
func (s *SubscriptionService) DowngradeToFree(sub *model.Subscription) error {
	sub.PlanID = model.SubscriptionPlanFree
	sub.Status = model.SubscriptionStatusActive
	sub.ProviderSubscriptionID = nil
	sub.CurrentPeriodEnd = nil
	sub.Amount = nil
	sub.Interval = nil
	return s.UpdateSubscription(sub)
}
