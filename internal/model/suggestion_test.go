package model_test

import (
	"testing"
	"time"

	"github.com/jsho982045/orelse2/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSortSuggestions(t *testing.T) {
	t1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	t.Run("vote count descending", func(t *testing.T) {
		suggestions := []*model.ElseAction{
			{ID: "a", VoteCount: 3, CreatedAt: t1},
			{ID: "b", VoteCount: 5, CreatedAt: t2},
			{ID: "c", VoteCount: 1, CreatedAt: t3},
		}
		model.SortSuggestions(suggestions)
		assert.Equal(t, "b", suggestions[0].ID)
		assert.Equal(t, "a", suggestions[1].ID)
		assert.Equal(t, "c", suggestions[2].ID)
	})

	t.Run("ties broken by earliest creation", func(t *testing.T) {
		suggestions := []*model.ElseAction{
			{ID: "later", VoteCount: 4, CreatedAt: t3},
			{ID: "earlier", VoteCount: 4, CreatedAt: t1},
			{ID: "middle", VoteCount: 4, CreatedAt: t2},
		}
		model.SortSuggestions(suggestions)
		assert.Equal(t, "earlier", suggestions[0].ID)
		assert.Equal(t, "middle", suggestions[1].ID)
		assert.Equal(t, "later", suggestions[2].ID)
	})
}

func TestChooseConsequence(t *testing.T) {
	t1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	t.Run("no suggestions means no winner", func(t *testing.T) {
		assert.Nil(t, model.ChooseConsequence(nil))
		assert.Nil(t, model.ChooseConsequence([]*model.ElseAction{}))
	})

	t.Run("highest vote count wins", func(t *testing.T) {
		suggestions := []*model.ElseAction{
			{ID: "a", VoteCount: 3, CreatedAt: t1},
			{ID: "b", VoteCount: 5, CreatedAt: t2},
		}
		winner := model.ChooseConsequence(suggestions)
		assert.Equal(t, "b", winner.ID)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		suggestions := []*model.ElseAction{
			{ID: "a", VoteCount: 1, CreatedAt: t1},
			{ID: "b", VoteCount: 2, CreatedAt: t2},
		}
		model.ChooseConsequence(suggestions)
		assert.Equal(t, "a", suggestions[0].ID)
	})
}
