package service_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
)

// In-memory fakes implementing the repository interfaces.

type fakeGoalRepo struct {
	goals map[string]*model.Goal
	err   error
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*model.Goal)}
}

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	if r.err != nil {
		return r.err
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) ByID(goalID string) (*model.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	goal, ok := r.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) PublicGoals(limit int) ([]*model.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	var goals []*model.Goal
	for _, goal := range r.goals {
		if goal.IsPublic && len(goals) < limit {
			copied := *goal
			goals = append(goals, &copied)
		}
	}
	return goals, nil
}

func (r *fakeGoalRepo) ByAuthor(authorID string) ([]*model.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	var goals []*model.Goal
	for _, goal := range r.goals {
		if goal.AuthorID == authorID {
			copied := *goal
			goals = append(goals, &copied)
		}
	}
	return goals, nil
}

func (r *fakeGoalRepo) CountActiveByAuthor(authorID string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	count := 0
	for _, goal := range r.goals {
		if goal.AuthorID == authorID && goal.Status == model.GoalStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeGoalRepo) UpdateStatus(goalID, status string) error {
	if r.err != nil {
		return r.err
	}
	goal, ok := r.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	goal.Status = status
	return nil
}

func (r *fakeGoalRepo) add(authorID, status string, deadline time.Time, isPublic bool) *model.Goal {
	goal := &model.Goal{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		Description: "run a marathon",
		Deadline:    deadline,
		IsPublic:    isPublic,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	r.goals[goal.ID] = goal
	return goal
}

type fakeSuggestionRepo struct {
	suggestions map[string]*model.ElseAction
	err         error
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: make(map[string]*model.ElseAction)}
}

func (r *fakeSuggestionRepo) Create(suggestion *model.ElseAction) error {
	if r.err != nil {
		return r.err
	}
	copied := *suggestion
	r.suggestions[suggestion.ID] = &copied
	return nil
}

func (r *fakeSuggestionRepo) ByID(suggestionID string) (*model.ElseAction, error) {
	if r.err != nil {
		return nil, r.err
	}
	suggestion, ok := r.suggestions[suggestionID]
	if !ok {
		return nil, repository.ErrSuggestionNotFound
	}
	copied := *suggestion
	return &copied, nil
}

func (r *fakeSuggestionRepo) ByGoal(goalID string) ([]*model.ElseAction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var suggestions []*model.ElseAction
	for _, suggestion := range r.suggestions {
		if suggestion.GoalID == goalID {
			copied := *suggestion
			suggestions = append(suggestions, &copied)
		}
	}
	model.SortSuggestions(suggestions)
	return suggestions, nil
}

func (r *fakeSuggestionRepo) add(goalID, suggesterID string, voteCount int, createdAt time.Time) *model.ElseAction {
	suggestion := &model.ElseAction{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		SuggesterID: suggesterID,
		Suggestion:  "sing karaoke in the office",
		VoteCount:   voteCount,
		CreatedAt:   createdAt,
	}
	r.suggestions[suggestion.ID] = suggestion
	return suggestion
}

type fakeVoteRepo struct {
	sugRepo *fakeSuggestionRepo
	votes   map[string]bool
	err     error
}

func newFakeVoteRepo(sugRepo *fakeSuggestionRepo) *fakeVoteRepo {
	return &fakeVoteRepo{sugRepo: sugRepo, votes: make(map[string]bool)}
}

func (r *fakeVoteRepo) Cast(userID, elseActionID string, castAt time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	key := userID + "|" + elseActionID
	if r.votes[key] {
		return 0, repository.ErrDuplicateVote
	}
	suggestion, ok := r.sugRepo.suggestions[elseActionID]
	if !ok {
		return 0, repository.ErrSuggestionNotFound
	}
	r.votes[key] = true
	suggestion.VoteCount++
	return suggestion.VoteCount, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if r.err != nil {
		return r.err
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) add(email string) *model.User {
	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Now(),
	}
	r.users[user.ID] = user
	return user
}

type fakeSubscriptionRepo struct {
	subs map[string]*model.Subscription
	err  error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*model.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(sub *model.Subscription) error {
	if r.err != nil {
		return r.err
	}
	copied := *sub
	r.subs[sub.UserID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) ByUserID(userID string) (*model.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}
	sub, ok := r.subs[userID]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) ByProviderSubscriptionID(providerSubID string) (*model.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, sub := range r.subs {
		if sub.ProviderSubscriptionID != nil && *sub.ProviderSubscriptionID == providerSubID {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, repository.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) ByProviderCustomerID(providerCustomerID string) (*model.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, sub := range r.subs {
		if sub.ProviderCustomerID != nil && *sub.ProviderCustomerID == providerCustomerID {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, repository.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) Update(sub *model.Subscription) error {
	if r.err != nil {
		return r.err
	}
	copied := *sub
	r.subs[sub.UserID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) addPlan(userID, planID string) *model.Subscription {
	sub := &model.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    planID,
		Status:    model.SubscriptionStatusActive,
		Provider:  "none",
		Currency:  "usd",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.subs[userID] = sub
	return sub
}
